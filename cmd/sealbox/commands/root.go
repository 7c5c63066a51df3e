package commands

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	envFile string
	verbose bool

	log = logrus.New()
)

func Execute() error {
	root := &cobra.Command{
		Use:   "sealbox",
		Short: "Hybrid RSA/AES encryption for string payloads",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())
			if verbose {
				log.SetLevel(logrus.DebugLevel)
			}
			if envFile != "" {
				if err := godotenv.Load(envFile); err != nil {
					return fmt.Errorf("loading %s: %w", envFile, err)
				}
				log.WithField("path", envFile).Debug("environment file loaded")
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&envFile, "env-file", "", "load environment variables from this file")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(keygenCmd(), encryptCmd(), decryptCmd(), sessionCmd())
	return root.Execute()
}
