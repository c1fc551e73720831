package mman

import "golang.org/x/sys/unix"

const (
	// AdviseRemove frees the given range of pages and its backing store.
	AdviseRemove MmapAdvise = unix.MADV_REMOVE
	// AdviseDontFork keeps the pages out of the child after a fork(2).
	AdviseDontFork MmapAdvise = unix.MADV_DONTFORK
	// AdviseDoFork undoes AdviseDontFork.
	AdviseDoFork MmapAdvise = unix.MADV_DOFORK
	// AdviseHWPoison poisons the pages; later references are treated like
	// hardware memory corruption.
	AdviseHWPoison MmapAdvise = unix.MADV_HWPOISON
	// AdviseMergeable enables kernel samepage merging for the pages.
	AdviseMergeable MmapAdvise = unix.MADV_MERGEABLE
	// AdviseUnmergeable undoes AdviseMergeable.
	AdviseUnmergeable MmapAdvise = unix.MADV_UNMERGEABLE
	// AdviseSoftOffline preserves the memory of each page while offlining
	// the original page. x/sys does not carry this constant for Linux, so
	// the ABI value from asm-generic/mman-common.h is spelled out.
	AdviseSoftOffline MmapAdvise = 0x65
	// AdviseHugepage enables transparent huge pages for the range.
	AdviseHugepage MmapAdvise = unix.MADV_HUGEPAGE
	// AdviseNoHugepage undoes AdviseHugepage.
	AdviseNoHugepage MmapAdvise = unix.MADV_NOHUGEPAGE
	// AdviseDontDump excludes the range from core dumps.
	AdviseDontDump MmapAdvise = unix.MADV_DONTDUMP
	// AdviseDoDump undoes AdviseDontDump.
	AdviseDoDump MmapAdvise = unix.MADV_DODUMP
)

func init() {
	for a, name := range map[MmapAdvise]string{
		AdviseRemove:      "MADV_REMOVE",
		AdviseDontFork:    "MADV_DONTFORK",
		AdviseDoFork:      "MADV_DOFORK",
		AdviseHWPoison:    "MADV_HWPOISON",
		AdviseMergeable:   "MADV_MERGEABLE",
		AdviseUnmergeable: "MADV_UNMERGEABLE",
		AdviseSoftOffline: "MADV_SOFT_OFFLINE",
		AdviseHugepage:    "MADV_HUGEPAGE",
		AdviseNoHugepage:  "MADV_NOHUGEPAGE",
		AdviseDontDump:    "MADV_DONTDUMP",
		AdviseDoDump:      "MADV_DODUMP",
	} {
		adviseNames[a] = name
	}
}
