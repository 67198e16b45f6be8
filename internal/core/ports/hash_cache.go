package ports

// HashCache remembers which source contents were last compiled successfully.
// Records live in a scratch directory and are keyed by source basename.
//
//go:generate go run go.uber.org/mock/mockgen -source=hash_cache.go -destination=mocks/mock_hash_cache.go -package=mocks
type HashCache interface {
	// Digest returns the hex digest of info, the separator and the file content.
	Digest(path, info string) (string, error)

	// IsUnchanged reports whether the record in scratchDir matches the current digest.
	// A missing record is reported as changed.
	IsUnchanged(scratchDir, path, info string) (bool, error)

	// Persist overwrites the record in scratchDir with the current digest.
	Persist(scratchDir, path, info string) error
}
