// Package keyring implements the set, get, list and clone operations over a
// backing keystore.
//
// It owns the policy rules: create-if-absent versus force-overwrite, fresh
// salt and nonce on every set, and clone as byte-exact duplication without
// decryption. Key derivation and sealing are delegated to internal/crypto;
// persistence to the domain.Keystore.
package keyring
