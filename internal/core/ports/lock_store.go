package ports

import "go.trai.ch/jx/internal/core/domain"

// LockStore persists lock files.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock_store.go -destination=mocks/mock_lock_store.go -package=mocks
type LockStore interface {
	// Load reads the lock file at path.
	// A missing file yields an empty lock file; a malformed file yields domain.ErrCorruptLockfile.
	Load(path string) (*domain.Lockfile, error)

	// Save atomically writes l to path.
	Save(l *domain.Lockfile, path string) error
}
