package domain

import "errors"

var (
	// ErrInvalidParameter is returned for malformed inputs to the core, such
	// as an empty KDF salt or an iteration count below the safe floor.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrAlreadyExists is returned when set or clone would collide with an
	// existing keystore and force was not given.
	ErrAlreadyExists = errors.New("keystore already exists")

	// ErrMissingValue is returned by set when no value was provided and
	// prompting is unavailable.
	ErrMissingValue = errors.New("value is required")

	// ErrNotFound is returned when no keystore exists under the given name.
	ErrNotFound = errors.New("no keystore found")

	// ErrDecryptionFailed is returned when the authentication tag does not
	// verify. A wrong password and a corrupted keystore are deliberately
	// indistinguishable here.
	ErrDecryptionFailed = errors.New("decryption failed: wrong password or corrupted keystore")

	// ErrCorruptRecord is returned when an on-disk record does not parse as
	// any known keystore format.
	ErrCorruptRecord = errors.New("malformed keystore record")
)
