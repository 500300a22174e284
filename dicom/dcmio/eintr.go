package dcmio

import (
	"errors"
	"syscall"
)

// isEINTR reports whether err represents an interrupted system call, which
// File.Read retries transparently per the POSIX read(2) convention.
func isEINTR(err error) bool {
	return errors.Is(err, syscall.EINTR)
}
