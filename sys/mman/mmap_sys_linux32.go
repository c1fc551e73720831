//go:build linux && (386 || arm)

package mman

import "syscall"

// 32-bit Linux has no six-register mmap system call; mmap2 takes the file
// offset in 4096-byte units regardless of the page size.
func mmapTrap(addr, length, prot, flags, fd uintptr, offset int64) (uintptr, syscall.Errno) {
	page := uintptr(offset / 4096)
	if offset != int64(page)*4096 {
		return 0, syscall.EINVAL
	}
	p, _, errno := syscall.Syscall6(syscall.SYS_MMAP2, addr, length, prot, flags, fd, page)
	return p, errno
}
