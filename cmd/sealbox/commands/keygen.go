package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sealbox/sealbox-go/internal/crypto"
	"github.com/sealbox/sealbox-go/internal/pemutil"
)

func keygenCmd() *cobra.Command {
	var (
		bits int
		out  string
	)

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate an RSA keypair as PEM files",
		RunE: func(cmd *cobra.Command, args []string) error {
			pub, priv, err := crypto.GenerateKeyPair(bits)
			if err != nil {
				return err
			}

			if err := os.MkdirAll(out, 0o700); err != nil {
				return err
			}
			pubPath := filepath.Join(out, "public.pem")
			privPath := filepath.Join(out, "private.pem")

			if err := os.WriteFile(pubPath, []byte(pub), 0o644); err != nil {
				return err
			}
			if err := os.WriteFile(privPath, []byte(priv), 0o600); err != nil {
				return err
			}

			log.WithField("bits", bits).Debug("keypair generated")

			fmt.Fprintf(cmd.OutOrStdout(), "Public key:  %s\nPrivate key: %s\nFingerprint: %s\n",
				pubPath, privPath, crypto.Fingerprint([]byte(pemutil.Normalize(pub))))
			return nil
		},
	}

	cmd.Flags().IntVar(&bits, "bits", 2048, "RSA key size in bits")
	cmd.Flags().StringVar(&out, "out", ".", "output directory")
	return cmd
}
