package mman

import "golang.org/x/sys/unix"

const (
	// MapNoReserve does not reserve swap space for the mapping.
	MapNoReserve MapFlags = unix.MAP_NORESERVE
	// MapNoCache keeps pages of this mapping out of the kernel page cache.
	MapNoCache MapFlags = unix.MAP_NOCACHE
	// MapJIT maps a region where pages may be simultaneously writable and
	// executable under the hardened runtime.
	MapJIT MapFlags = unix.MAP_JIT
)

const (
	// MsKillPages invalidates the pages but leaves them mapped.
	MsKillPages MsFlags = unix.MS_KILLPAGES
	// MsDeactivate deactivates the pages but leaves them mapped.
	MsDeactivate MsFlags = unix.MS_DEACTIVATE
)

func init() {
	mapFlagNames[unix.MAP_NORESERVE] = "MAP_NORESERVE"
	mapFlagNames[unix.MAP_NOCACHE] = "MAP_NOCACHE"
	mapFlagNames[unix.MAP_JIT] = "MAP_JIT"

	msFlagNames[unix.MS_KILLPAGES] = "MS_KILLPAGES"
	msFlagNames[unix.MS_DEACTIVATE] = "MS_DEACTIVATE"
}
