package diligent

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/constraints"
)

func requireRoundTrip[E constraints.Integer, N constraints.Integer](t *testing.T, table []enumEntry[N], first int, fromNative func(N) E, toNative func(E) N) {
	t.Helper()

	names := make(map[string]int, len(table))
	for i := first; i < len(table); i++ {
		value := E(i)
		require.Equal(t, value, fromNative(toNative(value)), "entry %d (%s)", i, table[i].name)

		name := table[i].name
		require.NotEmpty(t, name, "entry %d has no name", i)
		previous, duplicate := names[name]
		require.False(t, duplicate, "entries %d and %d are both named %s", previous, i, name)
		names[name] = i
	}
}

func TestEnumText(t *testing.T) {
	text, err := TexFormatRGBA8Unorm.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "RGBA8Unorm", string(text))

	var format TextureFormat
	require.NoError(t, format.UnmarshalText([]byte("BC7UnormSRGB")))
	require.Equal(t, TexFormatBC7UnormSRGB, format)

	require.Error(t, format.UnmarshalText([]byte("NotAFormat")))
	require.Equal(t, TexFormatBC7UnormSRGB, format)

	_, err = TextureFormat(-1).MarshalText()
	require.Error(t, err)
}

func TestEnumStringOutOfRange(t *testing.T) {
	require.Equal(t, "Vulkan", RenderDeviceTypeVulkan.String())
	require.Equal(t, "diligent.RenderDeviceType(99)", RenderDeviceType(99).String())
}

func TestEnumToNativePanicsOnInvalidValue(t *testing.T) {
	require.Panics(t, func() {
		_ = RenderDeviceType(99).native()
	})
}

func TestTextureFormatBlockHeight(t *testing.T) {
	require.Equal(t, uint32(1), TexFormatRGBA8Unorm.blockHeight())
	require.Equal(t, uint32(4), TexFormatBC1Unorm.blockHeight())
	require.Equal(t, uint32(4), TexFormatBC5Snorm.blockHeight())
	require.Equal(t, uint32(1), TexFormatBGRA8Unorm.blockHeight())
	require.Equal(t, uint32(4), TexFormatBC7Unorm.blockHeight())
	require.Equal(t, uint32(4), TexFormatETC2RGBA8UnormSRGB.blockHeight())
}
