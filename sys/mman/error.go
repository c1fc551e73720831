package mman

import "syscall"

// Error records a memory-management system call that failed and the error
// code the kernel reported for it. No interpretation of the code happens
// here; callers match it with errors.Is against the unix.E* values.
type Error struct {
	Call  string
	Errno syscall.Errno
}

func (e *Error) Error() string {
	return "mman: " + e.Call + ": " + e.Errno.Error()
}

func (e *Error) Unwrap() error { return e.Errno }

func errnoErr(call string, errno syscall.Errno) error {
	return &Error{Call: call, Errno: errno}
}

// wrapErr converts the error form returned by the x/sys/unix helpers, which
// is already a bare errno, into an *Error.
func wrapErr(call string, err error) error {
	if errno, ok := err.(syscall.Errno); ok {
		return errnoErr(call, errno)
	}
	return err
}
