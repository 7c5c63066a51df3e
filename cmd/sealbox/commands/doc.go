// Package commands defines the sealbox CLI.
//
// Commands
//
//   - keygen   Generate an RSA keypair as PEM files
//   - encrypt  Encrypt stdin into a hybrid packet for a public key
//   - decrypt  Decrypt a hybrid packet from stdin with the private key
//   - session  Walk through a full session exchange
//
// # Implementation
//
// The root command loads an optional dotenv file and configures logging
// before any subcommand runs. Private key material only ever enters through
// the environment; no command accepts it as a flag or argument.
package commands
