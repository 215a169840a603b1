package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
	"golang.org/x/text/unicode/norm"

	"github.com/Kiruse/kayring/internal/domain"
)

const (
	// KeyBytes is the derived key length (AES-256).
	KeyBytes = 32
	// SaltBytes is the per-record KDF salt length.
	SaltBytes = 16

	// DefaultIterations is the PBKDF2 round count used when the caller does
	// not specify one.
	DefaultIterations = 100_000
	// MinIterations is the floor below which derivation refuses to run.
	MinIterations = 1000
)

// DeriveKey derives a KeyBytes-long symmetric key from password, salt and
// an iteration count via PBKDF2-HMAC-SHA256. The password is NFC-normalized
// first; the empty password is a legal input.
//
// Deterministic: identical inputs always yield the identical key.
func DeriveKey(password string, salt []byte, iterations uint32) ([]byte, error) {
	if len(salt) == 0 {
		return nil, fmt.Errorf("%w: empty salt", domain.ErrInvalidParameter)
	}
	if iterations < MinIterations {
		return nil, fmt.Errorf("%w: iteration count %d below minimum %d",
			domain.ErrInvalidParameter, iterations, MinIterations)
	}
	normalized := norm.NFC.String(password)
	return pbkdf2.Key([]byte(normalized), salt, int(iterations), KeyBytes, sha256.New), nil
}
