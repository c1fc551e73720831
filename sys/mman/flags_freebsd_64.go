//go:build freebsd && (amd64 || arm64 || riscv64)

package mman

import "golang.org/x/sys/unix"

// Map32Bit puts the mapping into the first 2GB of the process address
// space. 64-bit only.
const Map32Bit MapFlags = unix.MAP_32BIT

func init() {
	mapFlagNames[unix.MAP_32BIT] = "MAP_32BIT"
}
