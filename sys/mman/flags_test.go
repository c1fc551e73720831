//go:build darwin || freebsd || linux

package mman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func TestProtFlags_RoundTrip(t *testing.T) {
	for _, f := range []ProtFlags{ProtNone, ProtRead, ProtWrite, ProtExec} {
		assert.Equal(t, f, ProtFlags(int(f)))
	}

	// Bit patterns match the native constants exactly.
	assert.Equal(t, unix.PROT_READ, int(ProtRead))
	assert.Equal(t, unix.PROT_WRITE, int(ProtWrite))
	assert.Equal(t, unix.PROT_EXEC, int(ProtExec))
	assert.Equal(t, unix.PROT_NONE, int(ProtNone))
}

func TestMapFlags_RoundTrip(t *testing.T) {
	for _, f := range []MapFlags{MapFile, MapShared, MapPrivate, MapFixed, MapAnon} {
		assert.Equal(t, f, MapFlags(int(f)))
	}

	assert.Equal(t, unix.MAP_SHARED, int(MapShared))
	assert.Equal(t, unix.MAP_PRIVATE, int(MapPrivate))
	assert.Equal(t, unix.MAP_FIXED, int(MapFixed))
	assert.Equal(t, unix.MAP_ANON, int(MapAnon))
}

func TestMsFlags_RoundTrip(t *testing.T) {
	assert.Equal(t, unix.MS_ASYNC, int(MsAsync))
	assert.Equal(t, unix.MS_INVALIDATE, int(MsInvalidate))
	assert.Equal(t, unix.MS_SYNC, int(MsSync))
}

func TestMmapAdvise_RoundTrip(t *testing.T) {
	for _, a := range []MmapAdvise{
		AdviseNormal, AdviseRandom, AdviseSequential,
		AdviseWillNeed, AdviseDontNeed, AdviseFree,
	} {
		assert.Equal(t, a, MmapAdvise(int(a)))
	}

	assert.Equal(t, unix.MADV_NORMAL, int(AdviseNormal))
	assert.Equal(t, unix.MADV_FREE, int(AdviseFree))
}

func TestFlags_SetLaws(t *testing.T) {
	a := ProtRead | ProtWrite
	b := ProtExec

	// Union is idempotent and commutative.
	assert.Equal(t, a, a.Union(a))
	assert.Equal(t, a.Union(b), b.Union(a))

	// Intersection with the empty set is empty.
	assert.Equal(t, ProtFlags(0), a.Intersect(0))
	assert.Equal(t, MapFlags(0), (MapShared | MapAnon).Intersect(0))
	assert.Equal(t, MsFlags(0), (MsAsync | MsInvalidate).Intersect(0))

	// Membership.
	require.True(t, a.Contains(ProtRead))
	require.True(t, a.Contains(a))
	require.False(t, a.Contains(ProtExec))
	require.True(t, (MapPrivate | MapAnon).Contains(MapAnon))
	require.False(t, MapPrivate.Contains(MapShared))
}

func TestFlags_ZeroValue(t *testing.T) {
	var prot ProtFlags
	var flags MapFlags

	assert.Equal(t, ProtNone, prot)
	assert.Equal(t, MapFlags(0), flags)
	assert.Equal(t, flags, flags.Union(0))
}

func TestFlags_String(t *testing.T) {
	assert.Equal(t, "0", MapFlags(0).String())
	assert.Equal(t, "PROT_READ", ProtRead.String())
	assert.Equal(t, "PROT_READ|PROT_WRITE", (ProtRead | ProtWrite).String())
	assert.Equal(t, "MAP_SHARED|MAP_FIXED", (MapShared | MapFixed).String())
	assert.Equal(t, "MS_SYNC", MsSync.String())

	assert.Equal(t, "MADV_RANDOM", AdviseRandom.String())
	assert.Equal(t, "MADV_NORMAL", AdviseNormal.String())
	assert.Equal(t, "MmapAdvise(1234)", MmapAdvise(1234).String())
}
