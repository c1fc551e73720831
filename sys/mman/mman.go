//go:build darwin || freebsd || linux

package mman

import (
	"syscall"
	"unsafe"
)

// Mlock locks the pages of [addr, addr+length) into memory, preventing
// them from being paged out. addr and length are passed to the kernel
// uninterpreted; the caller must ensure they describe a valid range.
func Mlock(addr unsafe.Pointer, length uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_MLOCK, uintptr(addr), length, 0); errno != 0 {
		return errnoErr("mlock", errno)
	}
	return nil
}

// Munlock unlocks pages previously locked with Mlock.
func Munlock(addr unsafe.Pointer, length uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_MUNLOCK, uintptr(addr), length, 0); errno != 0 {
		return errnoErr("munlock", errno)
	}
	return nil
}

// Mmap maps length bytes at offset into the file referenced by fd, or
// anonymous memory when flags contains MapAnon and fd is -1. addr is a
// placement hint unless flags contains MapFixed; pass nil to let the
// kernel choose.
//
// The returned address is raw: no Go object tracks it, the runtime and
// garbage collector know nothing about it, and the caller owns the region
// until a matching Munmap. A mapping over an address range the caller does
// not control (MapFixed) silently replaces whatever was there, including
// runtime-owned memory.
func Mmap(addr unsafe.Pointer, length uintptr, prot ProtFlags, flags MapFlags, fd int, offset int64) (uintptr, error) {
	p, errno := mmapTrap(uintptr(addr), length, uintptr(prot), uintptr(flags), uintptr(fd), offset)
	if errno != 0 {
		return 0, errnoErr("mmap", errno)
	}
	return p, nil
}

// Munmap removes the mapping of [addr, addr+length). Accessing the range
// afterward faults. The range is passed to the kernel uninterpreted; an
// unaligned addr is rejected by the kernel, but a wrong-but-valid range
// will happily unmap memory the rest of the process still relies on.
func Munmap(addr unsafe.Pointer, length uintptr) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_MUNMAP, uintptr(addr), length, 0); errno != 0 {
		return errnoErr("munmap", errno)
	}
	return nil
}

// Madvise tells the kernel how [addr, addr+length) is expected to be
// accessed. The hint affects paging behavior only, never correctness.
func Madvise(addr unsafe.Pointer, length uintptr, advise MmapAdvise) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_MADVISE, uintptr(addr), length, uintptr(advise)); errno != 0 {
		return errnoErr("madvise", errno)
	}
	return nil
}

// Msync flushes changes made to the mapped range [addr, addr+length) back
// to the backing store. With MsSync the call blocks until the write
// completes.
func Msync(addr unsafe.Pointer, length uintptr, flags MsFlags) error {
	if _, _, errno := syscall.Syscall(syscall.SYS_MSYNC, uintptr(addr), length, uintptr(flags)); errno != 0 {
		return errnoErr("msync", errno)
	}
	return nil
}
