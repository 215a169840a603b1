package crypto_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/Kiruse/kayring/internal/crypto"
	"github.com/Kiruse/kayring/internal/domain"
)

func testKey(b byte) []byte { return bytes.Repeat([]byte{b}, crypto.KeyBytes) }

func TestSealOpen_RoundTrip(t *testing.T) {
	key := testKey(1)
	nonce, err := crypto.NewNonce()
	if err != nil {
		t.Fatalf("nonce: %v", err)
	}
	plaintext := []byte("attack at dawn")

	ct, err := crypto.Seal(key, nonce, plaintext)
	if err != nil {
		t.Fatalf("seal: %v", err)
	}
	if bytes.Contains(ct, plaintext) {
		t.Fatal("ciphertext contains the plaintext")
	}

	got, err := crypto.Open(key, nonce, ct)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if !bytes.Equal(got, plaintext) {
		t.Fatalf("round trip mismatch: got %q", got)
	}
}

func TestOpen_WrongKeyFails(t *testing.T) {
	nonce, _ := crypto.NewNonce()
	ct, err := crypto.Seal(testKey(1), nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	if _, err := crypto.Open(testKey(2), nonce, ct); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("got %v, want ErrDecryptionFailed", err)
	}
}

func TestOpen_TamperedCiphertextFails(t *testing.T) {
	key := testKey(1)
	nonce, _ := crypto.NewNonce()
	ct, err := crypto.Seal(key, nonce, []byte("secret"))
	if err != nil {
		t.Fatalf("seal: %v", err)
	}

	ct[0] ^= 0xff
	if _, err := crypto.Open(key, nonce, ct); !errors.Is(err, domain.ErrDecryptionFailed) {
		t.Fatalf("got %v, want ErrDecryptionFailed", err)
	}
}

func TestSeal_RejectsBadSizes(t *testing.T) {
	nonce, _ := crypto.NewNonce()

	if _, err := crypto.Seal([]byte("short"), nonce, []byte("x")); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("short key: got %v, want ErrInvalidParameter", err)
	}
	if _, err := crypto.Seal(testKey(1), []byte("short"), []byte("x")); !errors.Is(err, domain.ErrInvalidParameter) {
		t.Fatalf("short nonce: got %v, want ErrInvalidParameter", err)
	}
}

func TestNewSaltNonce_Unique(t *testing.T) {
	s1, err := crypto.NewSalt()
	if err != nil {
		t.Fatalf("salt: %v", err)
	}
	s2, _ := crypto.NewSalt()
	if bytes.Equal(s1, s2) {
		t.Fatal("two salts came out identical")
	}

	n1, _ := crypto.NewNonce()
	n2, _ := crypto.NewNonce()
	if bytes.Equal(n1, n2) {
		t.Fatal("two nonces came out identical")
	}
}
