package mman

import (
	"strings"
	"syscall"

	"golang.org/x/sys/unix"
)

// Linux has no shm_open system call; glibc implements POSIX shared-memory
// objects as files on the tmpfs mounted at /dev/shm. This does the same:
// leading slashes are stripped, the rest must be one non-empty path
// component, and the file is opened with O_NOFOLLOW|O_CLOEXEC added.
const shmDir = "/dev/shm/"

func shmPath(name string) (string, syscall.Errno) {
	name = strings.TrimLeft(name, "/")
	if name == "" || name == "." || name == ".." || strings.ContainsRune(name, '/') {
		return "", syscall.EINVAL
	}
	if len(name) > unix.NAME_MAX {
		return "", syscall.ENAMETOOLONG
	}
	return shmDir + name, 0
}

// ShmOpen opens, and with unix.O_CREAT creates, the POSIX shared-memory
// object called name, returning a file descriptor suitable for Mmap with
// MapShared. flag takes unix.O_RDONLY or unix.O_RDWR, optionally combined
// with unix.O_CREAT, unix.O_EXCL and unix.O_TRUNC; mode takes the
// permission bits applied on creation. Use unix.Ftruncate to size a newly
// created object before mapping it.
func ShmOpen(name string, flag int, mode uint32) (int, error) {
	path, errno := shmPath(name)
	if errno != 0 {
		return -1, errnoErr("shm_open", errno)
	}
	fd, err := unix.Open(path, flag|unix.O_NOFOLLOW|unix.O_CLOEXEC, mode)
	if err != nil {
		return -1, wrapErr("shm_open", err)
	}
	return fd, nil
}

// ShmUnlink removes the shared-memory object called name. Open descriptors
// and live mappings keep working; the object itself is reclaimed once the
// last reference goes away, like an unlinked file.
func ShmUnlink(name string) error {
	path, errno := shmPath(name)
	if errno != 0 {
		return errnoErr("shm_unlink", errno)
	}
	if err := unix.Unlink(path); err != nil {
		return wrapErr("shm_unlink", err)
	}
	return nil
}
