package mman

import "golang.org/x/sys/unix"

const (
	// AdviseZeroWiredPages zeroes any wired pages in the range when it is
	// deallocated.
	AdviseZeroWiredPages MmapAdvise = unix.MADV_ZERO_WIRED_PAGES
	// AdviseFreeReusable marks the pages reusable and zeroes them lazily.
	AdviseFreeReusable MmapAdvise = unix.MADV_FREE_REUSABLE
	// AdviseFreeReuse reclaims pages previously marked reusable.
	AdviseFreeReuse MmapAdvise = unix.MADV_FREE_REUSE
	// AdviseCanReuse asks whether the range can be reused.
	AdviseCanReuse MmapAdvise = unix.MADV_CAN_REUSE
)

func init() {
	for a, name := range map[MmapAdvise]string{
		AdviseZeroWiredPages: "MADV_ZERO_WIRED_PAGES",
		AdviseFreeReusable:   "MADV_FREE_REUSABLE",
		AdviseFreeReuse:      "MADV_FREE_REUSE",
		AdviseCanReuse:       "MADV_CAN_REUSE",
	} {
		adviseNames[a] = name
	}
}
