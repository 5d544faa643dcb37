// Package commands defines the ecsign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - digest       Print the SHA-256 digest of text, files or stdin
//   - keygen       Generate and store a named P-256 key pair
//   - sign         Sign data with a stored key
//   - verify       Verify a signature with a stored key or a PEM public key
//   - export       Print a stored key as PEM (SPKI, or PKCS8 with --private)
//   - fingerprint  Print the fingerprint of a stored key
//   - list         List stored keys
//   - delete       Remove a stored key
//
// # Implementation
//
// The root command loads configuration through viper, builds a zerolog
// logger carried on the command context, and constructs the key store and
// key service before any subcommand runs.
package commands
