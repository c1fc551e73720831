package mman

import "golang.org/x/sys/unix"

const (
	// AdviseNoSync asks the system not to flush the range to disk unless
	// it must.
	AdviseNoSync MmapAdvise = unix.MADV_NOSYNC
	// AdviseAutoSync undoes AdviseNoSync for pages dirtied afterward.
	AdviseAutoSync MmapAdvise = unix.MADV_AUTOSYNC
	// AdviseNoCore excludes the range from core files.
	AdviseNoCore MmapAdvise = unix.MADV_NOCORE
	// AdviseCore includes the range in core files again.
	AdviseCore MmapAdvise = unix.MADV_CORE
	// AdviseProtect protects the process from being killed when swap space
	// is exhausted.
	AdviseProtect MmapAdvise = unix.MADV_PROTECT
)

func init() {
	for a, name := range map[MmapAdvise]string{
		AdviseNoSync:   "MADV_NOSYNC",
		AdviseAutoSync: "MADV_AUTOSYNC",
		AdviseNoCore:   "MADV_NOCORE",
		AdviseCore:     "MADV_CORE",
		AdviseProtect:  "MADV_PROTECT",
	} {
		adviseNames[a] = name
	}
}
