package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"

	"github.com/Kiruse/kayring/internal/domain"
)

const (
	// NonceBytes is the GCM nonce length.
	NonceBytes = 12
	// TagBytes is the GCM authentication tag length.
	TagBytes = 16
)

// NewSalt returns a fresh random KDF salt.
func NewSalt() ([]byte, error) {
	salt := make([]byte, SaltBytes)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	return salt, nil
}

// NewNonce returns a fresh random AEAD nonce. Nonces must never be reused
// under the same key; callers generate one per Seal and persist it.
func NewNonce() ([]byte, error) {
	nonce := make([]byte, NonceBytes)
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}
	return nonce, nil
}

// Seal encrypts plaintext under key and nonce with AES-256-GCM and returns
// the ciphertext with the authentication tag appended.
func Seal(key, nonce, plaintext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	return aead.Seal(nil, nonce, plaintext, nil), nil
}

// Open decrypts ciphertext (tag included) under key and nonce. Any
// authentication failure surfaces as ErrDecryptionFailed; a wrong key and a
// tampered ciphertext are not distinguished.
func Open(key, nonce, ciphertext []byte) ([]byte, error) {
	aead, err := newAEAD(key, nonce)
	if err != nil {
		return nil, err
	}
	pt, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, domain.ErrDecryptionFailed
	}
	return pt, nil
}

func newAEAD(key, nonce []byte) (cipher.AEAD, error) {
	if len(key) != KeyBytes {
		return nil, fmt.Errorf("%w: key must be %d bytes", domain.ErrInvalidParameter, KeyBytes)
	}
	if len(nonce) != NonceBytes {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", domain.ErrInvalidParameter, NonceBytes)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
