package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Kiruse/kayring/internal/domain"
)

// FileStore keeps one file per named secret under a root directory. The
// record name is the filename. Writes go through a temp file and an atomic
// rename; no coordination with concurrent external writers is attempted.
type FileStore struct {
	dir string
}

// NewFileStore returns a FileStore rooted at dir. The directory is created
// lazily on first write.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Exists reports whether a record file is present under name.
func (s *FileStore) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Load reads and decodes the record stored under name.
func (s *FileStore) Load(name string) (domain.Record, error) {
	b, err := s.loadRaw(name)
	if err != nil {
		return domain.Record{}, err
	}
	return UnmarshalRecord(b)
}

// List returns the names of all records in the directory, sorted. A missing
// directory is an empty keystore, not an error.
func (s *FileStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading keystore directory %s: %w", s.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") || strings.Contains(name, tmpMarker) {
			continue
		}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// Write encodes rec and persists it under name according to mode.
func (s *FileStore) Write(name string, rec domain.Record, mode domain.WriteMode) error {
	b, err := MarshalRecord(rec)
	if err != nil {
		return err
	}
	return s.writeRaw(name, b, mode)
}

// Copy duplicates the record under from byte-for-byte to the name to. The
// bytes are never parsed or re-encrypted, so the copy decrypts under
// exactly the password of the original.
func (s *FileStore) Copy(from, to string, mode domain.WriteMode) error {
	b, err := s.loadRaw(from)
	if err != nil {
		return err
	}
	return s.writeRaw(to, b, mode)
}

func (s *FileStore) loadRaw(name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w for %s", domain.ErrNotFound, name)
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *FileStore) writeRaw(name string, b []byte, mode domain.WriteMode) error {
	if err := validateName(name); err != nil {
		return err
	}
	if mode == domain.CreateOnly {
		taken, err := s.Exists(name)
		if err != nil {
			return err
		}
		if taken {
			return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, name)
		}
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return fmt.Errorf("creating keystore directory %s: %w", s.dir, err)
	}
	return writeFile(filepath.Join(s.dir, name), b, 0o600)
}

// validateName rejects names that would escape the keystore directory or
// collide with its bookkeeping files.
func validateName(name string) error {
	switch {
	case name == "" || name == "." || name == "..":
		return fmt.Errorf("%w: invalid name %q", domain.ErrInvalidParameter, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: name %q must not contain path separators", domain.ErrInvalidParameter, name)
	case strings.HasPrefix(name, "."), strings.Contains(name, tmpMarker):
		return fmt.Errorf("%w: reserved name %q", domain.ErrInvalidParameter, name)
	}
	return nil
}

// Compile-time assertion that FileStore implements domain.Keystore.
var _ domain.Keystore = (*FileStore)(nil)
