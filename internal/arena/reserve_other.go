//go:build !unix

package arena

// reserve allocates the reservation as a regular byte slice. The slice is
// never reallocated, preserving the fixed-address guarantee of the unix
// mmap backend.
func reserve(limit int64) ([]byte, func() error, error) {
	return make([]byte, limit), func() error { return nil }, nil
}
