//go:build darwin || freebsd || (linux && !386 && !arm)

package mman

import "syscall"

func mmapTrap(addr, length, prot, flags, fd uintptr, offset int64) (uintptr, syscall.Errno) {
	p, _, errno := syscall.Syscall6(syscall.SYS_MMAP, addr, length, prot, flags, fd, uintptr(offset))
	return p, errno
}
