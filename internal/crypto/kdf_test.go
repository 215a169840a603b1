package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Kiruse/kayring/internal/crypto"
	"github.com/Kiruse/kayring/internal/domain"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	salt := bytes.Repeat([]byte{7}, crypto.SaltBytes)

	k1, err := crypto.DeriveKey("hunter2", salt, crypto.MinIterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	k2, err := crypto.DeriveKey("hunter2", salt, crypto.MinIterations)
	if err != nil {
		t.Fatalf("derive: %v", err)
	}
	if !bytes.Equal(k1, k2) {
		t.Fatal("same inputs derived different keys")
	}
	if len(k1) != crypto.KeyBytes {
		t.Fatalf("key length = %d, want %d", len(k1), crypto.KeyBytes)
	}
}

func TestDeriveKey_SaltMatters(t *testing.T) {
	salt1 := bytes.Repeat([]byte{1}, crypto.SaltBytes)
	salt2 := bytes.Repeat([]byte{2}, crypto.SaltBytes)

	k1, _ := crypto.DeriveKey("pw", salt1, crypto.MinIterations)
	k2, _ := crypto.DeriveKey("pw", salt2, crypto.MinIterations)
	if bytes.Equal(k1, k2) {
		t.Fatal("different salts derived the same key")
	}
}

// The same password typed in composed and decomposed Unicode form must
// derive the same key.
func TestDeriveKey_NormalizesPassword(t *testing.T) {
	salt := bytes.Repeat([]byte{3}, crypto.SaltBytes)

	composed := "café"          // é as a single code point
	decomposed := "café"       // e + combining acute

	k1, _ := crypto.DeriveKey(composed, salt, crypto.MinIterations)
	k2, _ := crypto.DeriveKey(decomposed, salt, crypto.MinIterations)
	if !bytes.Equal(k1, k2) {
		t.Fatal("NFC-equivalent passwords derived different keys")
	}
}

func TestDeriveKey_EmptyPasswordIsLegal(t *testing.T) {
	salt := bytes.Repeat([]byte{4}, crypto.SaltBytes)

	if _, err := crypto.DeriveKey("", salt, crypto.MinIterations); err != nil {
		t.Fatalf("empty password should be a legal input, got %v", err)
	}
}

func TestDeriveKey_RejectsBadInputs(t *testing.T) {
	salt := bytes.Repeat([]byte{5}, crypto.SaltBytes)

	if _, err := crypto.DeriveKey("pw", nil, crypto.MinIterations); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("empty salt: got %v, want ErrInvalidParameter", err)
	}
	if _, err := crypto.DeriveKey("pw", salt, crypto.MinIterations-1); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("low iterations: got %v, want ErrInvalidParameter", err)
	}
}
