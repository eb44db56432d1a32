package diligent

import (
	"bytes"
	"sync/atomic"
	"unsafe"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/diligent/driver"
	"github.com/vkngwrapper/diligent/internal/memutils"
)

// MappedMemory is CPU-visible memory of a mapped buffer or texture subresource. It is
// only valid until the token that produced it is unmapped.
type MappedMemory interface {
	Pointer() unsafe.Pointer
	Size() uint64
}

// MappedSlice views mapped memory as a slice of T. The slice is only valid until the
// token is unmapped. Trailing bytes that do not fill a whole T are not included.
func MappedSlice[T any](m MappedMemory) ([]T, error) {
	var zero T
	elemSize := uint64(unsafe.Sizeof(zero))
	if elemSize == 0 {
		return nil, errors.New("cannot view mapped memory as a zero-sized type")
	}

	p := m.Pointer()
	if p == nil {
		return nil, errors.Wrap(ErrMapFailed, "memory is not mapped")
	}
	if uintptr(p)%unsafe.Alignof(zero) != 0 {
		return nil, errors.Newf("mapped memory at %#x is not aligned to %d bytes", uintptr(p), unsafe.Alignof(zero))
	}

	return unsafe.Slice((*T)(p), m.Size()/elemSize), nil
}

type bufferMapping struct {
	ctx      *DeviceContext
	buffer   *Buffer
	mapType  MapType
	data     unsafe.Pointer
	size     uint64
	unmapped atomic.Bool
}

func (m *bufferMapping) init(ctx *DeviceContext, buffer *Buffer, mapType MapType, flags MapFlags) error {
	ctx.logger.Debug("DeviceContext::MapBuffer")

	data := ctx.drv.MapBuffer(buffer.Driver(), mapType.native(), flags.native())
	if data == nil {
		return errors.Wrapf(ErrMapFailed, "MapBuffer(%s, %s)", buffer.Name(), mapType)
	}

	m.ctx = ctx
	m.buffer = buffer
	m.mapType = mapType
	m.data = data
	m.size = buffer.Desc().Size
	return nil
}

// Unmap releases the mapping. Only the first call reaches the engine, so Unmap may be
// deferred right after the token is created.
func (m *bufferMapping) Unmap() {
	if !m.unmapped.CompareAndSwap(false, true) {
		return
	}

	m.ctx.logger.Debug("DeviceContext::UnmapBuffer")
	m.ctx.drv.UnmapBuffer(m.buffer.Driver(), m.mapType.native())
}

func (m *bufferMapping) Unmapped() bool {
	return m.unmapped.Load()
}

// Pointer is the start of the mapped range, or nil once unmapped.
func (m *bufferMapping) Pointer() unsafe.Pointer {
	if m.unmapped.Load() {
		return nil
	}
	return m.data
}

// Size is the size of the buffer in bytes.
func (m *bufferMapping) Size() uint64 {
	return m.size
}

func (m *bufferMapping) view() []byte {
	if m.unmapped.Load() {
		return nil
	}
	return unsafe.Slice((*byte)(m.data), m.size)
}

// BufferMapReadToken is a buffer mapped with MapRead.
type BufferMapReadToken struct {
	bufferMapping
}

func NewBufferMapReadToken(ctx *DeviceContext, buffer *Buffer, flags MapFlags) (*BufferMapReadToken, error) {
	t := &BufferMapReadToken{}
	if err := t.init(ctx, buffer, MapRead, flags); err != nil {
		return nil, err
	}
	return t, nil
}

// Bytes copies the buffer contents. It returns nil once the token is unmapped.
func (t *BufferMapReadToken) Bytes() []byte {
	return bytes.Clone(t.view())
}

// BufferMapWriteToken is a buffer mapped with MapWrite.
type BufferMapWriteToken struct {
	bufferMapping
}

func NewBufferMapWriteToken(ctx *DeviceContext, buffer *Buffer, flags MapFlags) (*BufferMapWriteToken, error) {
	t := &BufferMapWriteToken{}
	if err := t.init(ctx, buffer, MapWrite, flags); err != nil {
		return nil, err
	}
	return t, nil
}

// Bytes is the mapped memory, len(Bytes()) == Size(). It must not be read: with
// MapFlagDiscard its contents are undefined.
func (t *BufferMapWriteToken) Bytes() []byte {
	return t.view()
}

// BufferMapReadWriteToken is a buffer mapped with MapReadWrite.
type BufferMapReadWriteToken struct {
	bufferMapping
}

func NewBufferMapReadWriteToken(ctx *DeviceContext, buffer *Buffer, flags MapFlags) (*BufferMapReadWriteToken, error) {
	t := &BufferMapReadWriteToken{}
	if err := t.init(ctx, buffer, MapReadWrite, flags); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *BufferMapReadWriteToken) Bytes() []byte {
	return t.view()
}

// WithBufferMapRead maps buffer for reading for the duration of fn.
func WithBufferMapRead(ctx *DeviceContext, buffer *Buffer, flags MapFlags, fn func(data []byte) error) error {
	token, err := NewBufferMapReadToken(ctx, buffer, flags)
	if err != nil {
		return err
	}
	defer token.Unmap()

	return fn(token.view())
}

// WithBufferMapWrite maps buffer for writing for the duration of fn.
func WithBufferMapWrite(ctx *DeviceContext, buffer *Buffer, flags MapFlags, fn func(data []byte) error) error {
	token, err := NewBufferMapWriteToken(ctx, buffer, flags)
	if err != nil {
		return err
	}
	defer token.Unmap()

	return fn(token.Bytes())
}

func WithBufferMapReadWrite(ctx *DeviceContext, buffer *Buffer, flags MapFlags, fn func(data []byte) error) error {
	token, err := NewBufferMapReadWriteToken(ctx, buffer, flags)
	if err != nil {
		return err
	}
	defer token.Unmap()

	return fn(token.Bytes())
}

type textureMapping struct {
	ctx        *DeviceContext
	texture    *Texture
	mipLevel   uint32
	arraySlice uint32
	mapped     driver.MappedTextureSubresource
	size       uint64
	unmapped   atomic.Bool
}

func (m *textureMapping) init(ctx *DeviceContext, texture *Texture, mipLevel, arraySlice uint32, mapType MapType, flags MapFlags, region *Box) error {
	ctx.logger.Debug("DeviceContext::MapTextureSubresource")

	arena := driver.NewArena()
	defer arena.Release()

	mapped := ctx.drv.MapTextureSubresource(texture.Driver(), mipLevel, arraySlice, mapType.native(), flags.native(), region.marshal(arena))
	if mapped.Data == nil {
		return errors.Wrapf(ErrMapFailed, "MapTextureSubresource(%s, mip %d, slice %d, %s)", texture.Name(), mipLevel, arraySlice, mapType)
	}

	m.ctx = ctx
	m.texture = texture
	m.mipLevel = mipLevel
	m.arraySlice = arraySlice
	m.mapped = mapped
	m.size = mappedRegionSize(texture.Desc(), mipLevel, region, mapped.Stride, mapped.DepthStride)
	return nil
}

// mappedRegionSize is the number of bytes spanned by a mapped region: every row of
// texel blocks of the last depth slice plus a full depth stride for each slice before
// it.
func mappedRegionSize(desc TextureDesc, mipLevel uint32, region *Box, stride, depthStride uint64) uint64 {
	var height, depth uint32
	if region != nil {
		height = region.Height()
		depth = region.Depth()
	} else {
		height = max(desc.Height>>mipLevel, 1)
		depth = 1
		if desc.Type == ResourceDimTex3D {
			depth = max(desc.ArraySizeOrDepth>>mipLevel, 1)
		}
	}

	rows := uint64(memutils.DivRoundUp(height, desc.Format.blockHeight()))
	return uint64(depth-1)*depthStride + rows*stride
}

// blockHeight is the number of texel rows stored in one row of the format's blocks.
func (f TextureFormat) blockHeight() uint32 {
	switch {
	case f >= TexFormatBC1Typeless && f <= TexFormatBC5Snorm,
		f >= TexFormatBC6HTypeless && f <= TexFormatETC2RGBA8UnormSRGB:
		return 4
	default:
		return 1
	}
}

func (m *textureMapping) Unmap() {
	if !m.unmapped.CompareAndSwap(false, true) {
		return
	}

	m.ctx.logger.Debug("DeviceContext::UnmapTextureSubresource")
	m.ctx.drv.UnmapTextureSubresource(m.texture.Driver(), m.mipLevel, m.arraySlice)
}

func (m *textureMapping) Unmapped() bool {
	return m.unmapped.Load()
}

func (m *textureMapping) Pointer() unsafe.Pointer {
	if m.unmapped.Load() {
		return nil
	}
	return m.mapped.Data
}

// Stride is the distance in bytes between rows of texel blocks.
func (m *textureMapping) Stride() uint64 {
	return m.mapped.Stride
}

// DepthStride is the distance in bytes between depth slices.
func (m *textureMapping) DepthStride() uint64 {
	return m.mapped.DepthStride
}

// Size is the number of bytes spanned by the mapped region.
func (m *textureMapping) Size() uint64 {
	return m.size
}

func (m *textureMapping) view() []byte {
	if m.unmapped.Load() {
		return nil
	}
	return unsafe.Slice((*byte)(m.mapped.Data), m.size)
}

// TextureSubresourceReadMapToken is a texture subresource mapped with MapRead.
type TextureSubresourceReadMapToken struct {
	textureMapping
}

func NewTextureSubresourceReadMapToken(ctx *DeviceContext, texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceReadMapToken, error) {
	t := &TextureSubresourceReadMapToken{}
	if err := t.init(ctx, texture, mipLevel, arraySlice, MapRead, flags, region); err != nil {
		return nil, err
	}
	return t, nil
}

// Bytes copies the mapped region, rows Stride() bytes apart.
func (t *TextureSubresourceReadMapToken) Bytes() []byte {
	return bytes.Clone(t.view())
}

// TextureSubresourceWriteMapToken is a texture subresource mapped with MapWrite.
type TextureSubresourceWriteMapToken struct {
	textureMapping
}

func NewTextureSubresourceWriteMapToken(ctx *DeviceContext, texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceWriteMapToken, error) {
	t := &TextureSubresourceWriteMapToken{}
	if err := t.init(ctx, texture, mipLevel, arraySlice, MapWrite, flags, region); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TextureSubresourceWriteMapToken) Bytes() []byte {
	return t.view()
}

// TextureSubresourceReadWriteMapToken is a texture subresource mapped with MapReadWrite.
type TextureSubresourceReadWriteMapToken struct {
	textureMapping
}

func NewTextureSubresourceReadWriteMapToken(ctx *DeviceContext, texture *Texture, mipLevel, arraySlice uint32, flags MapFlags, region *Box) (*TextureSubresourceReadWriteMapToken, error) {
	t := &TextureSubresourceReadWriteMapToken{}
	if err := t.init(ctx, texture, mipLevel, arraySlice, MapReadWrite, flags, region); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *TextureSubresourceReadWriteMapToken) Bytes() []byte {
	return t.view()
}

// ScopedQueryToken brackets commands with BeginQuery and EndQuery.
type ScopedQueryToken struct {
	ctx   *DeviceContext
	query *Query
	ended atomic.Bool
}

func NewScopedQueryToken(ctx *DeviceContext, query *Query) *ScopedQueryToken {
	ctx.BeginQuery(query)
	return &ScopedQueryToken{ctx: ctx, query: query}
}

// End ends the query. Only the first call reaches the engine.
func (t *ScopedQueryToken) End() {
	if t.ended.CompareAndSwap(false, true) {
		t.ctx.EndQuery(t.query)
	}
}

// TimestampQueryToken measures GPU time between its creation and End with a pair of
// timestamp queries.
type TimestampQueryToken struct {
	ctx   *DeviceContext
	start *Query
	end   *Query
	ended atomic.Bool
}

func NewTimestampQueryToken(ctx *DeviceContext, start, end *Query) *TimestampQueryToken {
	ctx.EndQuery(start)
	return &TimestampQueryToken{ctx: ctx, start: start, end: end}
}

func (t *TimestampQueryToken) End() {
	if t.ended.CompareAndSwap(false, true) {
		t.ctx.EndQuery(t.end)
	}
}

// Elapsed returns the time between the two timestamps in seconds once both queries are
// available. It reports false while either is pending.
func (t *TimestampQueryToken) Elapsed() (float64, bool) {
	startData, ok := t.start.Data(false)
	if !ok {
		return 0, false
	}
	endData, ok := t.end.Data(false)
	if !ok {
		return 0, false
	}

	start, startOK := startData.(QueryDataTimestamp)
	end, endOK := endData.(QueryDataTimestamp)
	if !startOK || !endOK || end.Frequency == 0 {
		return 0, false
	}

	return float64(end.Counter-start.Counter) / float64(end.Frequency), true
}
