package domain

// Record is one named secret as held in a keystore: the KDF parameters
// needed to re-derive its key plus the sealed payload. The name itself is
// the keystore's lookup key and is not part of the record.
type Record struct {
	// Salt is the per-record KDF salt, generated fresh on every set.
	Salt []byte
	// Iterations is the PBKDF2 round count the record was sealed with.
	// Stored so that get reproduces the same key even if the default
	// changes between runs.
	Iterations uint32
	// Nonce is the AEAD nonce, generated fresh on every encryption.
	Nonce []byte
	// Ciphertext is the sealed secret including the authentication tag.
	Ciphertext []byte
}
