package mman

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/unix"
)

func TestFlags_DarwinMembers(t *testing.T) {
	assert.Equal(t, unix.MAP_NORESERVE, int(MapNoReserve))
	assert.Equal(t, unix.MAP_NOCACHE, int(MapNoCache))
	assert.Equal(t, unix.MAP_JIT, int(MapJIT))

	assert.Equal(t, unix.MS_KILLPAGES, int(MsKillPages))
	assert.Equal(t, unix.MS_DEACTIVATE, int(MsDeactivate))
	assert.Equal(t, "MS_KILLPAGES|MS_DEACTIVATE", (MsKillPages | MsDeactivate).String())

	assert.Equal(t, unix.MADV_ZERO_WIRED_PAGES, int(AdviseZeroWiredPages))
	assert.Equal(t, unix.MADV_CAN_REUSE, int(AdviseCanReuse))
}
