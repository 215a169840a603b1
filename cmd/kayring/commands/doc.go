// Package commands defines the kayring CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - set    Encrypt and store a private key under a name
//   - get    Decrypt and print a stored private key
//   - list   Print the names of all stored keys
//   - clone  Duplicate a stored key without decrypting it
//
// # Implementation
//
// The root command resolves the keystore directory (flag, KAYRING_DIR, or
// ~/.kayring) and builds the dependency graph before any subcommand runs.
// Passwords and values resolve flag-first, then environment, then an
// interactive prompt; --silent suppresses all prompting and output so the
// tool can run unattended.
package commands
