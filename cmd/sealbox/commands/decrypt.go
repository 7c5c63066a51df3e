package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	sealbox "github.com/sealbox/sealbox-go"
)

// decrypt: hybrid packet JSON in, plaintext out. The private key comes
// from the environment, never from a flag.
func decryptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt a hybrid packet from stdin",
		Long: `Reads packet JSON from stdin and writes the plaintext to stdout. The
private key is read from the ` + sealbox.PrivateKeyEnvVar + ` environment
variable; use --env-file to load it from a dotenv file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			packet, err := sealbox.ParseHybridPacket(data)
			if err != nil {
				return err
			}

			srv := sealbox.NewServer(sealbox.WithServerLogger(log))
			plaintext, err := srv.DecryptHybrid(packet)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), plaintext)
			return nil
		},
	}
}
