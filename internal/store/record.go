package store

import (
	"encoding/binary"
	"fmt"

	"github.com/Kiruse/kayring/internal/crypto"
	"github.com/Kiruse/kayring/internal/domain"
)

const (
	// recordVersion is the current on-disk record format.
	//
	// Layout, in order:
	//
	//	[1]  version
	//	[4]  iteration count, big endian
	//	[16] KDF salt
	//	[12] AEAD nonce
	//	[..] ciphertext + tag
	recordVersion = 1

	headerBytes = 1 + 4 + crypto.SaltBytes + crypto.NonceBytes
)

// MarshalRecord encodes rec into its persisted byte form. Encoding is
// positional, so an unchanged record round-trips byte-identically.
func MarshalRecord(rec domain.Record) ([]byte, error) {
	if len(rec.Salt) != crypto.SaltBytes {
		return nil, fmt.Errorf("%w: salt must be %d bytes", domain.ErrInvalidParameter, crypto.SaltBytes)
	}
	if len(rec.Nonce) != crypto.NonceBytes {
		return nil, fmt.Errorf("%w: nonce must be %d bytes", domain.ErrInvalidParameter, crypto.NonceBytes)
	}
	if len(rec.Ciphertext) < crypto.TagBytes {
		return nil, fmt.Errorf("%w: ciphertext shorter than its tag", domain.ErrInvalidParameter)
	}

	b := make([]byte, 0, headerBytes+len(rec.Ciphertext))
	b = append(b, recordVersion)
	b = binary.BigEndian.AppendUint32(b, rec.Iterations)
	b = append(b, rec.Salt...)
	b = append(b, rec.Nonce...)
	b = append(b, rec.Ciphertext...)
	return b, nil
}

// UnmarshalRecord decodes a persisted record. It fails with ErrCorruptRecord
// when the version is unknown or the remaining bytes cannot hold the
// declared fields.
func UnmarshalRecord(b []byte) (domain.Record, error) {
	if len(b) == 0 {
		return domain.Record{}, fmt.Errorf("%w: empty file", domain.ErrCorruptRecord)
	}
	if b[0] != recordVersion {
		return domain.Record{}, fmt.Errorf("%w: unknown version %d", domain.ErrCorruptRecord, b[0])
	}
	if len(b) < headerBytes+crypto.TagBytes {
		return domain.Record{}, fmt.Errorf("%w: truncated record", domain.ErrCorruptRecord)
	}

	rec := domain.Record{
		Iterations: binary.BigEndian.Uint32(b[1:5]),
		Salt:       append([]byte(nil), b[5:5+crypto.SaltBytes]...),
		Nonce:      append([]byte(nil), b[5+crypto.SaltBytes:headerBytes]...),
		Ciphertext: append([]byte(nil), b[headerBytes:]...),
	}
	return rec, nil
}
