//go:build darwin || freebsd

package mman

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ShmOpen opens, and with unix.O_CREAT creates, the POSIX shared-memory
// object called name, returning a file descriptor suitable for Mmap with
// MapShared. flag takes unix.O_RDONLY or unix.O_RDWR, optionally combined
// with unix.O_CREAT, unix.O_EXCL and unix.O_TRUNC; mode takes the
// permission bits applied on creation. Use unix.Ftruncate to size a newly
// created object before mapping it.
func ShmOpen(name string, flag int, mode uint32) (int, error) {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return -1, wrapErr("shm_open", err)
	}
	fd, _, errno := syscall.Syscall(syscall.SYS_SHM_OPEN, uintptr(unsafe.Pointer(p)), uintptr(flag), uintptr(mode))
	if errno != 0 {
		return -1, errnoErr("shm_open", errno)
	}
	return int(fd), nil
}

// ShmUnlink removes the shared-memory object called name. Open descriptors
// and live mappings keep working; the object itself is reclaimed once the
// last reference goes away, like an unlinked file.
func ShmUnlink(name string) error {
	p, err := unix.BytePtrFromString(name)
	if err != nil {
		return wrapErr("shm_unlink", err)
	}
	if _, _, errno := syscall.Syscall(syscall.SYS_SHM_UNLINK, uintptr(unsafe.Pointer(p)), 0, 0); errno != 0 {
		return errnoErr("shm_unlink", errno)
	}
	return nil
}
