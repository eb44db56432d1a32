package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryCountsPerKind(t *testing.T) {
	r := New(true)

	r.Acquire("Buffer", 0x1000)
	r.Acquire("Buffer", 0x1000)
	r.Acquire("Texture", 0x2000)

	require.Equal(t, 2, r.References(0x1000))
	require.Equal(t, 2, r.LiveObjects())
	require.Equal(t, Statistics{Live: 2, Acquired: 2}, r.Statistics()["Buffer"])

	r.Release("Buffer", 0x1000)
	r.Release("Buffer", 0x1000)

	require.Equal(t, 0, r.References(0x1000))
	require.Equal(t, 1, r.LiveObjects())
	require.Equal(t, Statistics{Live: 0, Acquired: 2, Released: 2}, r.Statistics()["Buffer"])
	require.Equal(t, Statistics{Live: 1, Acquired: 3, Released: 2}, r.Total())
	require.Equal(t, []string{"Buffer", "Texture"}, r.Kinds())
}

func TestRegistryIgnoresNilHandles(t *testing.T) {
	r := New(false)
	r.Acquire("Buffer", 0)
	r.Release("Buffer", 0)

	require.Equal(t, 0, r.LiveObjects())
	require.Empty(t, r.Statistics())
}

func TestRegistryLeaks(t *testing.T) {
	r := New(true)
	r.Acquire("Shader", 0x3000)
	r.Acquire("Fence", 0x1000)
	r.Acquire("Fence", 0x1000)

	leaks := r.Leaks()
	require.Len(t, leaks, 2)
	require.Equal(t, "Fence", leaks[0].Kind)
	require.Equal(t, uintptr(0x1000), leaks[0].Handle)
	require.Equal(t, 2, leaks[0].References)
	require.Equal(t, "Shader", leaks[1].Kind)
	if TracksLeaks {
		require.NotEmpty(t, leaks[0].Trace)
	} else {
		require.Empty(t, leaks[0].Trace)
	}
}

func TestRegistryConcurrentUse(t *testing.T) {
	r := New(true)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(handle uintptr) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				r.Acquire("Buffer", handle)
				r.Release("Buffer", handle)
			}
		}(uintptr(0x100 * (i + 1)))
	}
	wg.Wait()

	require.Equal(t, 0, r.LiveObjects())
	require.Equal(t, Statistics{Acquired: 400, Released: 400}, r.Statistics()["Buffer"])
}
