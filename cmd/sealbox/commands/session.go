package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	sealbox "github.com/sealbox/sealbox-go"
)

// session: run both halves of a session exchange in one process, printing
// each artifact as it is produced.
func sessionCmd() *cobra.Command {
	var (
		pubFile string
		message string
	)

	cmd := &cobra.Command{
		Use:   "session",
		Short: "Walk through a full session exchange",
		Long: `Ensures a session key for the given public key, encrypts a message under
it, then replays the server side: unwrap the session key with the private
key from the environment and decrypt the packet. Prints each artifact.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			pubPEM, err := os.ReadFile(pubFile)
			if err != nil {
				return err
			}

			client := sealbox.NewClient(
				sealbox.WithClientLogger(log),
				sealbox.WithSessionStore(sealbox.NewSessionStore(sealbox.WithSessionLogger(log))),
			)

			sk, err := client.EnsureSessionKey(string(pubPEM))
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			enc := json.NewEncoder(out)

			fmt.Fprintln(out, "session key:")
			if err := enc.Encode(sk); err != nil {
				return err
			}

			packet, err := client.EncryptWithSession(message)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "session packet:")
			if err := enc.Encode(packet); err != nil {
				return err
			}

			srv := sealbox.NewServer(sealbox.WithServerLogger(log))
			plaintext, err := srv.DecryptWithWrapped(sk.WrappedKeyB64, packet)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "server decrypted: %s\n", plaintext)

			response, err := srv.EncryptWithWrapped(sk.WrappedKeyB64, `{"ack":true}`)
			if err != nil {
				return err
			}
			roundTrip, err := client.DecryptWithSession(response)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "client decrypted response: %s\n", roundTrip)
			return nil
		},
	}

	cmd.Flags().StringVar(&pubFile, "pub", "", "public key PEM file")
	cmd.Flags().StringVar(&message, "message", "ping", "message to encrypt")
	_ = cmd.MarkFlagRequired("pub")
	return cmd
}
