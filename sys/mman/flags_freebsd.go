package mman

import "golang.org/x/sys/unix"

const (
	// MapAnonymous is the modern spelling of MapAnon.
	MapAnonymous MapFlags = unix.MAP_ANONYMOUS
	// MapNoSync flushes dirtied pages to disk only when necessary.
	MapNoSync MapFlags = unix.MAP_NOSYNC
	// MapHasSemaphore marks a region that may contain semaphores.
	MapHasSemaphore MapFlags = unix.MAP_HASSEMAPHORE
	// MapStack marks a region that grows down like a stack.
	MapStack MapFlags = unix.MAP_STACK
)

func init() {
	mapFlagNames[unix.MAP_NOSYNC] = "MAP_NOSYNC"
	mapFlagNames[unix.MAP_HASSEMAPHORE] = "MAP_HASSEMAPHORE"
	mapFlagNames[unix.MAP_STACK] = "MAP_STACK"
}
