package domain

// WriteMode selects the collision policy for a keystore write.
type WriteMode int

const (
	// CreateOnly fails with ErrAlreadyExists if the name is taken.
	CreateOnly WriteMode = iota
	// Overwrite replaces any existing record unconditionally.
	Overwrite
)

// Keystore maps names to persisted records. Implementations are the sole
// writers of their backing state; writes are atomic per record.
type Keystore interface {
	// Exists reports whether a record is present under name.
	Exists(name string) (bool, error)

	// Load returns the record stored under name, or ErrNotFound.
	Load(name string) (Record, error)

	// List returns all record names, sorted. The slice is regenerated on
	// each call.
	List() ([]string, error)

	// Write persists rec under name according to mode.
	Write(name string, rec Record, mode WriteMode) error

	// Copy duplicates the record under from byte-for-byte to the name to,
	// without parsing or re-encrypting it. Returns ErrNotFound if from is
	// absent; mode governs collisions on to.
	Copy(from, to string, mode WriteMode) error
}

// Keyring is the service surface the CLI drives. All inputs arrive
// validated and concrete; a missing password is the empty string.
type Keyring interface {
	Set(name string, value []byte, password string, iterations uint32, force bool) error
	Get(name, password string) ([]byte, error)
	List() ([]string, error)
	Clone(from, to string, force bool) error
}
