// Package crypto exposes the minimal primitives used by kayring.
//
// Contents
//
//   - Password-based key derivation via PBKDF2-HMAC-SHA256 (DeriveKey)
//   - Authenticated encryption via AES-256-GCM (Seal, Open)
//   - Fresh random salts and nonces (NewSalt, NewNonce)
//
// # Notes
//
// Passwords are NFC-normalized before derivation so that the same password
// typed on different platforms derives the same key. Callers should treat
// derived keys and plaintexts as sensitive and wipe them when practical to
// reduce lifetime in memory.
package crypto
