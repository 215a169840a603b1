// Package store provides persistence for kayring records.
//
// It contains the binary record codec and two implementations of the
// domain.Keystore contract: FileStore, which keeps one file per named
// secret under a root directory and replaces files atomically, and
// MemStore, an in-memory keystore for tests.
package store
