//go:build darwin || freebsd || linux

package mman

import (
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// ProtFlags describes the desired memory protection of a mapping. Values
// combine with the usual bitwise operators; the zero value is ProtNone.
type ProtFlags int

const (
	// ProtNone: pages cannot be accessed.
	ProtNone ProtFlags = unix.PROT_NONE
	// ProtRead: pages can be read.
	ProtRead ProtFlags = unix.PROT_READ
	// ProtWrite: pages can be written.
	ProtWrite ProtFlags = unix.PROT_WRITE
	// ProtExec: pages can be executed.
	ProtExec ProtFlags = unix.PROT_EXEC
)

// MapFlags carries the additional parameters for Mmap. The zero value is
// the empty set.
type MapFlags int

const (
	// MapFile is a compatibility flag. Ignored by the kernel.
	MapFile MapFlags = unix.MAP_FILE
	// MapShared shares the mapping with all other processes mapping the
	// same region. Mutually exclusive with MapPrivate by convention only;
	// combining both is passed through and the kernel's reaction is
	// platform-defined.
	MapShared MapFlags = unix.MAP_SHARED
	// MapPrivate creates a private copy-on-write mapping. Mutually
	// exclusive with MapShared by convention only.
	MapPrivate MapFlags = unix.MAP_PRIVATE
	// MapFixed places the mapping at exactly the address given to Mmap.
	MapFixed MapFlags = unix.MAP_FIXED
	// MapAnon maps anonymous memory not backed by any file. Pass fd -1.
	MapAnon MapFlags = unix.MAP_ANON
)

// MsFlags selects how Msync flushes a mapped range. The zero value is the
// empty set.
type MsFlags int

const (
	// MsAsync schedules the update but returns immediately.
	MsAsync MsFlags = unix.MS_ASYNC
	// MsInvalidate invalidates all cached copies of the range.
	MsInvalidate MsFlags = unix.MS_INVALIDATE
	// MsSync performs the update and waits for it to complete.
	MsSync MsFlags = unix.MS_SYNC
)

// Union returns the set of flags present in f, o, or both.
func (f ProtFlags) Union(o ProtFlags) ProtFlags { return f | o }

// Intersect returns the set of flags present in both f and o.
func (f ProtFlags) Intersect(o ProtFlags) ProtFlags { return f & o }

// Contains reports whether every flag in o is present in f.
func (f ProtFlags) Contains(o ProtFlags) bool { return f&o == o }

func (f ProtFlags) String() string { return flagString(int(f), protFlagNames) }

// Union returns the set of flags present in f, o, or both.
func (f MapFlags) Union(o MapFlags) MapFlags { return f | o }

// Intersect returns the set of flags present in both f and o.
func (f MapFlags) Intersect(o MapFlags) MapFlags { return f & o }

// Contains reports whether every flag in o is present in f.
func (f MapFlags) Contains(o MapFlags) bool { return f&o == o }

func (f MapFlags) String() string { return flagString(int(f), mapFlagNames) }

// Union returns the set of flags present in f, o, or both.
func (f MsFlags) Union(o MsFlags) MsFlags { return f | o }

// Intersect returns the set of flags present in both f and o.
func (f MsFlags) Intersect(o MsFlags) MsFlags { return f & o }

// Contains reports whether every flag in o is present in f.
func (f MsFlags) Contains(o MsFlags) bool { return f&o == o }

func (f MsFlags) String() string { return flagString(int(f), msFlagNames) }

// Name tables for String. Per-platform files add their members in init;
// zero-valued compatibility flags (MAP_FILE) are never printed.
var (
	protFlagNames = map[int]string{
		unix.PROT_READ:  "PROT_READ",
		unix.PROT_WRITE: "PROT_WRITE",
		unix.PROT_EXEC:  "PROT_EXEC",
	}
	mapFlagNames = map[int]string{
		unix.MAP_SHARED:  "MAP_SHARED",
		unix.MAP_PRIVATE: "MAP_PRIVATE",
		unix.MAP_FIXED:   "MAP_FIXED",
		unix.MAP_ANON:    "MAP_ANON",
	}
	msFlagNames = map[int]string{
		unix.MS_ASYNC:      "MS_ASYNC",
		unix.MS_INVALIDATE: "MS_INVALIDATE",
		unix.MS_SYNC:       "MS_SYNC",
	}
)

func flagString(v int, names map[int]string) string {
	if v == 0 {
		return "0"
	}
	var parts []string
	for bit := 0; bit < strconv.IntSize-1; bit++ {
		m := 1 << bit
		if v&m == 0 {
			continue
		}
		if name, ok := names[m]; ok {
			parts = append(parts, name)
		} else {
			parts = append(parts, "0x"+strconv.FormatUint(uint64(m), 16))
		}
	}
	return strings.Join(parts, "|")
}
