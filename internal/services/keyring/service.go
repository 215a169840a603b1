package keyring

import (
	"fmt"

	"github.com/Kiruse/kayring/internal/crypto"
	"github.com/Kiruse/kayring/internal/domain"
	"github.com/Kiruse/kayring/internal/util/memzero"
)

// Service orchestrates key derivation, sealing and the keystore to
// implement the keyring operations. One CLI invocation performs at most one
// operation; there is no cross-request state.
type Service struct {
	store domain.Keystore
}

// New returns a keyring service backed by the given keystore.
func New(store domain.Keystore) *Service { return &Service{store: store} }

// Set seals value under a key derived from password and persists it as a
// new record named name. A fresh salt and nonce are generated on every
// call, including forced overwrites. iterations of 0 selects the default
// round count.
//
// Without force, an existing record is never touched: the call fails with
// ErrAlreadyExists. A nil value fails with ErrMissingValue.
func (s *Service) Set(name string, value []byte, password string, iterations uint32, force bool) error {
	if value == nil {
		return domain.ErrMissingValue
	}
	if iterations == 0 {
		iterations = crypto.DefaultIterations
	}

	// Fail before any expensive derivation. The write mode below enforces
	// the same policy again at persist time.
	if !force {
		taken, err := s.store.Exists(name)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, name)
		}
	}

	salt, err := crypto.NewSalt()
	if err != nil {
		return err
	}
	nonce, err := crypto.NewNonce()
	if err != nil {
		return err
	}

	key, err := crypto.DeriveKey(password, salt, iterations)
	if err != nil {
		return err
	}
	defer memzero.Zero(key)

	ct, err := crypto.Seal(key, nonce, value)
	if err != nil {
		return err
	}

	rec := domain.Record{
		Salt:       salt,
		Iterations: iterations,
		Nonce:      nonce,
		Ciphertext: ct,
	}
	mode := domain.CreateOnly
	if force {
		mode = domain.Overwrite
	}
	return s.store.Write(name, rec, mode)
}

// Get loads the record named name, re-derives its key from password and the
// stored KDF parameters, and returns the decrypted value. The caller owns
// the returned plaintext and should wipe it after use.
//
// A failed tag verification surfaces as ErrDecryptionFailed whether the
// password is wrong or the record was corrupted.
func (s *Service) Get(name, password string) ([]byte, error) {
	rec, err := s.store.Load(name)
	if err != nil {
		return nil, err
	}

	key, err := crypto.DeriveKey(password, rec.Salt, rec.Iterations)
	if err != nil {
		return nil, err
	}
	defer memzero.Zero(key)

	return crypto.Open(key, rec.Nonce, rec.Ciphertext)
}

// List returns the names of all stored records, sorted. No password is
// required and nothing is decrypted.
func (s *Service) List() ([]string, error) {
	return s.store.List()
}

// Clone duplicates the record named from under the name to, byte-for-byte.
// No decryption or re-encryption occurs, so the clone decrypts under
// exactly the password used for the original. Without force an existing
// target fails with ErrAlreadyExists and is left untouched.
func (s *Service) Clone(from, to string, force bool) error {
	if from == to {
		return fmt.Errorf("%w: cannot clone %s onto itself", domain.ErrInvalidParameter, from)
	}
	mode := domain.CreateOnly
	if force {
		mode = domain.Overwrite
	}
	return s.store.Copy(from, to, mode)
}

// Compile-time assertion that Service implements domain.Keyring.
var _ domain.Keyring = (*Service)(nil)
