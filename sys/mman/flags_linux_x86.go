//go:build linux && (386 || amd64)

package mman

import "golang.org/x/sys/unix"

// Map32Bit puts the mapping into the first 2GB of the process address
// space. x86 only.
const Map32Bit MapFlags = unix.MAP_32BIT

func init() {
	mapFlagNames[unix.MAP_32BIT] = "MAP_32BIT"
}
