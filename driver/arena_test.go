package driver

import (
	"testing"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
)

func TestArenaCString(t *testing.T) {
	arena := NewArena()
	defer arena.Release()

	require.Nil(t, arena.CString(""))

	str := arena.CString("Constants")
	require.Equal(t, "Constants", GoString(str))
	require.Equal(t, byte(0), *(*byte)(unsafe.Add(unsafe.Pointer(str), len("Constants"))))
}

func TestArenaCStringArray(t *testing.T) {
	arena := NewArena()
	defer arena.Release()

	require.Nil(t, arena.CStringArray(nil))

	arr := arena.CStringArray([]string{"VK_LAYER_KHRONOS_validation", "VK_LAYER_LUNARG_monitor"})
	strs := unsafe.Slice(arr, 2)
	require.Equal(t, "VK_LAYER_KHRONOS_validation", GoString(strs[0]))
	require.Equal(t, "VK_LAYER_LUNARG_monitor", GoString(strs[1]))
}

func TestArenaMarshalSlice(t *testing.T) {
	arena := NewArena()
	defer arena.Release()

	type named struct {
		name  string
		index uint32
	}

	entries, count := MarshalSlice(arena, []named{{"g_Texture", 0}, {"g_Sampler", 3}}, func(arena *Arena, in *named) ResourceMappingEntry {
		return ResourceMappingEntry{Name: arena.CString(in.name), ArrayIndex: in.index}
	})
	require.Equal(t, uint32(2), count)

	out := GoSlice(entries, count)
	require.Equal(t, "g_Texture", GoString(out[0].Name))
	require.Equal(t, "g_Sampler", GoString(out[1].Name))
	require.Equal(t, uint32(3), out[1].ArrayIndex)

	none, count := MarshalSlice(arena, []named(nil), func(*Arena, *named) ResourceMappingEntry {
		t.Fatal("conversion called for an empty slice")
		return ResourceMappingEntry{}
	})
	require.Nil(t, none)
	require.Equal(t, uint32(0), count)
}

func TestArenaHandleArray(t *testing.T) {
	arena := NewArena()
	defer arena.Release()

	objs := []Object{ObjectFromHandle(0x1000), nil, ObjectFromHandle(0x3000)}
	handles := GoSlice(HandleArray(arena, objs), 3)
	require.Equal(t, []Handle{0x1000, 0, 0x3000}, handles)
}

func TestFromHandleNil(t *testing.T) {
	require.Nil(t, ObjectFromHandle(0))
	require.Nil(t, BufferFromHandle(0))
	require.Nil(t, TextureViewFromHandle(0))
	require.Nil(t, DeviceContextFromHandle(0))
	require.Nil(t, EngineFactoryVkFromHandle(0))
}

func TestPortKeepsHandle(t *testing.T) {
	buffer := BufferFromHandle(0x2000)

	vk := Port(buffer, BufferVkFromHandle)
	require.Equal(t, Handle(0x2000), vk.Handle())

	var missing Buffer
	require.Nil(t, Port(missing, BufferVkFromHandle))
}

func TestContextCount(t *testing.T) {
	require.Equal(t, 1, contextCount(&EngineCreateInfo{}))
	require.Equal(t, 3, contextCount(&EngineCreateInfo{NumImmediateContexts: 1, NumDeferredContexts: 2}))
	require.Equal(t, 2, contextCount(&EngineCreateInfo{NumImmediateContexts: 2}))
}

func TestAPIInfoVerify(t *testing.T) {
	info := &APIInfo{APIVersion: APIVersion}
	require.NoError(t, info.Verify())

	info.BufferDescSize = uint64(unsafe.Sizeof(BufferDesc{}))
	info.TextureDescSize = uint64(unsafe.Sizeof(TextureDesc{}))
	require.NoError(t, info.Verify())

	info.TextureDescSize += 8
	err := info.Verify()
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrAPIMismatch))
	require.Contains(t, err.Error(), "TextureDesc")

	err = (&APIInfo{APIVersion: APIVersion - 1}).Verify()
	require.True(t, errors.Is(err, ErrAPIMismatch))

	var missing *APIInfo
	require.True(t, errors.Is(missing.Verify(), ErrAPIMismatch))
}
