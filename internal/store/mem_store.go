package store

import (
	"fmt"
	"sort"

	"github.com/Kiruse/kayring/internal/domain"
)

// MemStore is an in-memory Keystore. It holds the same encoded bytes a
// FileStore would persist, so codec behavior is identical; service tests
// use it in place of a real directory.
type MemStore struct {
	records map[string][]byte
}

// NewMemStore returns an empty in-memory keystore.
func NewMemStore() *MemStore { return &MemStore{records: make(map[string][]byte)} }

func (s *MemStore) Exists(name string) (bool, error) {
	if err := validateName(name); err != nil {
		return false, err
	}
	_, ok := s.records[name]
	return ok, nil
}

func (s *MemStore) Load(name string) (domain.Record, error) {
	b, err := s.loadRaw(name)
	if err != nil {
		return domain.Record{}, err
	}
	return UnmarshalRecord(b)
}

func (s *MemStore) List() ([]string, error) {
	names := make([]string, 0, len(s.records))
	for name := range s.records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

func (s *MemStore) Write(name string, rec domain.Record, mode domain.WriteMode) error {
	b, err := MarshalRecord(rec)
	if err != nil {
		return err
	}
	return s.writeRaw(name, b, mode)
}

func (s *MemStore) Copy(from, to string, mode domain.WriteMode) error {
	b, err := s.loadRaw(from)
	if err != nil {
		return err
	}
	return s.writeRaw(to, b, mode)
}

func (s *MemStore) loadRaw(name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	b, ok := s.records[name]
	if !ok {
		return nil, fmt.Errorf("%w for %s", domain.ErrNotFound, name)
	}
	return append([]byte(nil), b...), nil
}

func (s *MemStore) writeRaw(name string, b []byte, mode domain.WriteMode) error {
	if err := validateName(name); err != nil {
		return err
	}
	if _, taken := s.records[name]; taken && mode == domain.CreateOnly {
		return fmt.Errorf("%w: %s", domain.ErrAlreadyExists, name)
	}
	s.records[name] = append([]byte(nil), b...)
	return nil
}

// Compile-time assertion that MemStore implements domain.Keystore.
var _ domain.Keystore = (*MemStore)(nil)
