//go:build unix

package arena

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// reserve maps limit bytes of anonymous private memory. The mapping address
// is fixed for its lifetime and pages are committed lazily on first touch,
// so large reservations are cheap until used.
func reserve(limit int64) ([]byte, func() error, error) {
	if limit > int64(^uint(0)>>1) {
		return nil, nil, fmt.Errorf("reservation too large to map (%d bytes)", limit)
	}
	buf, err := unix.Mmap(-1, 0, int(limit),
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() error {
		err := unix.Munmap(buf)
		if errors.Is(err, unix.EINVAL) {
			// Treat double-unmap as no-op for callers.
			return nil
		}
		return err
	}
	return buf, cleanup, nil
}
