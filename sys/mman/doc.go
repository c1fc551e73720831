// Package mman provides typed access to the POSIX memory-management
// primitives: mmap(2), munmap(2), mlock(2), munlock(2), madvise(2),
// msync(2), and POSIX shared-memory objects via shm_open(3) and
// shm_unlink(3).
//
// # Overview
//
// The package is a thin call-through layer. Flag sets (ProtFlags, MapFlags,
// MsFlags) and the MmapAdvise enum carry the exact native constant values
// for the compiling platform, and each wrapper issues its system call
// exactly once, converting a failure into an *Error that records the errno
// the kernel reported.
//
// # Usage
//
//	length := uintptr(os.Getpagesize())
//	addr, err := mman.Mmap(nil, length,
//		mman.ProtRead|mman.ProtWrite,
//		mman.MapPrivate|mman.MapAnon, -1, 0)
//	if err != nil { ... }
//
//	buf := unsafe.Slice((*byte)(unsafe.Pointer(addr)), length)
//	copy(buf, payload)
//
//	_ = mman.Msync(unsafe.Pointer(addr), length, mman.MsSync)
//	_ = mman.Munmap(unsafe.Pointer(addr), length)
//
// # Platform Support
//
// Flags and advisory values that exist only on some operating systems are
// declared in per-platform files, so a constant that the target platform
// does not define is simply absent from the package on that platform rather
// than mapped to zero or rejected at run time. Linux, macOS and FreeBSD
// carry their full native vocabularies.
//
// # Safety
//
// Mmap, Munmap, Mlock, Munlock, Madvise and Msync take an uninterpreted
// address and length and pass them straight to the kernel; nothing is
// bounds-checked or alignment-checked here, and a bad range can corrupt or
// crash the process. The unsafe.Pointer parameter makes that opt-in visible
// at the call site. Callers own every mapping they create: each successful
// Mmap must eventually be paired with a Munmap, and nothing in this package
// does that for them. ShmOpen and ShmUnlink only handle descriptors and
// names and are safe to call directly.
//
// # Errors
//
// Every failure is an *Error wrapping the captured syscall.Errno, so
// callers can match codes with errors.Is(err, unix.ENOENT) and decide any
// higher-level interpretation (including EINTR retries) themselves.
package mman
