//go:build darwin || freebsd || linux

package mman

import (
	"strconv"

	"golang.org/x/sys/unix"
)

// MmapAdvise tells the kernel how a mapped range is expected to be used so
// it can tune paging behavior. Advisory values are mutually exclusive per
// Madvise call and do not combine bitwise.
type MmapAdvise int

const (
	// AdviseNormal: no further special treatment. This is the default.
	AdviseNormal MmapAdvise = unix.MADV_NORMAL
	// AdviseRandom: expect random page references.
	AdviseRandom MmapAdvise = unix.MADV_RANDOM
	// AdviseSequential: expect sequential page references.
	AdviseSequential MmapAdvise = unix.MADV_SEQUENTIAL
	// AdviseWillNeed: expect access in the near future.
	AdviseWillNeed MmapAdvise = unix.MADV_WILLNEED
	// AdviseDontNeed: do not expect access in the near future.
	AdviseDontNeed MmapAdvise = unix.MADV_DONTNEED
	// AdviseFree: the pages are no longer needed and may be freed lazily.
	AdviseFree MmapAdvise = unix.MADV_FREE
)

func (a MmapAdvise) String() string {
	if name, ok := adviseNames[a]; ok {
		return name
	}
	return "MmapAdvise(" + strconv.Itoa(int(a)) + ")"
}

var adviseNames = map[MmapAdvise]string{
	AdviseNormal:     "MADV_NORMAL",
	AdviseRandom:     "MADV_RANDOM",
	AdviseSequential: "MADV_SEQUENTIAL",
	AdviseWillNeed:   "MADV_WILLNEED",
	AdviseDontNeed:   "MADV_DONTNEED",
	AdviseFree:       "MADV_FREE",
}
