package mman

import "golang.org/x/sys/unix"

const (
	// ProtGrowsDown applies the protection down to the beginning of a
	// mapping that grows downward.
	ProtGrowsDown ProtFlags = unix.PROT_GROWSDOWN
	// ProtGrowsUp applies the protection up to the end of a mapping that
	// grows upward.
	ProtGrowsUp ProtFlags = unix.PROT_GROWSUP
)

const (
	// MapAnonymous is the Linux spelling of MapAnon.
	MapAnonymous MapFlags = unix.MAP_ANONYMOUS
	// MapGrowsDown marks a stack mapping that extends downward in memory.
	MapGrowsDown MapFlags = unix.MAP_GROWSDOWN
	// MapDenyWrite is a compatibility flag. Ignored by the kernel.
	MapDenyWrite MapFlags = unix.MAP_DENYWRITE
	// MapExecutable is a compatibility flag. Ignored by the kernel.
	MapExecutable MapFlags = unix.MAP_EXECUTABLE
	// MapLocked locks the mapped region into memory as mlock(2) would.
	MapLocked MapFlags = unix.MAP_LOCKED
	// MapNoReserve does not reserve swap space for the mapping.
	MapNoReserve MapFlags = unix.MAP_NORESERVE
	// MapPopulate populates the page tables for the mapping up front.
	MapPopulate MapFlags = unix.MAP_POPULATE
	// MapNonblock suppresses read-ahead. Only meaningful with MapPopulate.
	MapNonblock MapFlags = unix.MAP_NONBLOCK
	// MapStack marks a region suitable for a process or thread stack.
	MapStack MapFlags = unix.MAP_STACK
	// MapHugeTLB allocates the mapping from huge pages.
	MapHugeTLB MapFlags = unix.MAP_HUGETLB
)

func init() {
	protFlagNames[unix.PROT_GROWSDOWN] = "PROT_GROWSDOWN"
	protFlagNames[unix.PROT_GROWSUP] = "PROT_GROWSUP"

	mapFlagNames[unix.MAP_GROWSDOWN] = "MAP_GROWSDOWN"
	mapFlagNames[unix.MAP_DENYWRITE] = "MAP_DENYWRITE"
	mapFlagNames[unix.MAP_EXECUTABLE] = "MAP_EXECUTABLE"
	mapFlagNames[unix.MAP_LOCKED] = "MAP_LOCKED"
	mapFlagNames[unix.MAP_NORESERVE] = "MAP_NORESERVE"
	mapFlagNames[unix.MAP_POPULATE] = "MAP_POPULATE"
	mapFlagNames[unix.MAP_NONBLOCK] = "MAP_NONBLOCK"
	mapFlagNames[unix.MAP_STACK] = "MAP_STACK"
	mapFlagNames[unix.MAP_HUGETLB] = "MAP_HUGETLB"
}
