package commands

import (
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"

	sealbox "github.com/sealbox/sealbox-go"
)

// encrypt: stdin plaintext in, hybrid packet JSON out.
func encryptCmd() *cobra.Command {
	var pubFile string

	cmd := &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt stdin into a hybrid packet",
		Long: `Reads plaintext from stdin, encrypts it for the given public key, and
writes the packet JSON to stdout. Only the holder of the matching private
key can open the packet.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pubPEM, err := os.ReadFile(pubFile)
			if err != nil {
				return err
			}
			plaintext, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}

			packet, err := sealbox.EncryptHybrid(string(pubPEM), string(plaintext))
			if err != nil {
				return err
			}

			log.WithField("plaintext_bytes", len(plaintext)).Debug("hybrid packet built")

			return json.NewEncoder(cmd.OutOrStdout()).Encode(packet)
		},
	}

	cmd.Flags().StringVar(&pubFile, "pub", "", "public key PEM file")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
