package memutils

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestCheckPow2(t *testing.T) {
	require.NoError(t, CheckPow2(1, "one"))
	require.NoError(t, CheckPow2(uint32(256), "alignment"))

	err := CheckPow2(12, "alignment")
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrNotPowerOfTwo))
	require.Contains(t, err.Error(), "alignment is 12")

	require.Error(t, CheckPow2(0, "zero"))
}

func TestAlign(t *testing.T) {
	require.Equal(t, uint64(256), AlignUp(uint64(1), 256))
	require.Equal(t, uint64(256), AlignUp(uint64(256), 256))
	require.Equal(t, uint64(512), AlignUp(uint64(257), 256))
}

func TestDivRoundUp(t *testing.T) {
	require.Equal(t, uint32(2), DivRoundUp(uint32(5), 4))
	require.Equal(t, uint32(1), DivRoundUp(uint32(4), 4))
	require.Equal(t, uint32(0), DivRoundUp(uint32(0), 4))
}
