package mocks

import (
	"sync/atomic"

	"github.com/vkngwrapper/diligent/driver"
	"go.uber.org/mock/gomock"
)

var nextHandle atomic.Uintptr

func init() {
	nextHandle.Store(0x10000)
}

// NewFakeHandle returns a unique, non-zero native handle for a mock object.
func NewFakeHandle() driver.Handle {
	return driver.Handle(nextHandle.Add(0x100))
}

func EasyMockObject(ctrl *gomock.Controller) *MockObject {
	mock := NewMockObject(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceObject(ctrl *gomock.Controller) *MockDeviceObject {
	mock := NewMockDeviceObject(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDataBlob(ctrl *gomock.Controller) *MockDataBlob {
	mock := NewMockDataBlob(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockShaderSourceInputStreamFactory(ctrl *gomock.Controller) *MockShaderSourceInputStreamFactory {
	mock := NewMockShaderSourceInputStreamFactory(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockCommandList(ctrl *gomock.Controller) *MockCommandList {
	mock := NewMockCommandList(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockPipelineStateCache(ctrl *gomock.Controller) *MockPipelineStateCache {
	mock := NewMockPipelineStateCache(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBuffer(ctrl *gomock.Controller) *MockBuffer {
	mock := NewMockBuffer(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferView(ctrl *gomock.Controller) *MockBufferView {
	mock := NewMockBufferView(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTexture(ctrl *gomock.Controller) *MockTexture {
	mock := NewMockTexture(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureView(ctrl *gomock.Controller) *MockTextureView {
	mock := NewMockTextureView(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSampler(ctrl *gomock.Controller) *MockSampler {
	mock := NewMockSampler(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockFence(ctrl *gomock.Controller) *MockFence {
	mock := NewMockFence(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockQuery(ctrl *gomock.Controller) *MockQuery {
	mock := NewMockQuery(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceMemory(ctrl *gomock.Controller) *MockDeviceMemory {
	mock := NewMockDeviceMemory(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockResourceMapping(ctrl *gomock.Controller) *MockResourceMapping {
	mock := NewMockResourceMapping(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockShader(ctrl *gomock.Controller) *MockShader {
	mock := NewMockShader(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockShaderResourceVariable(ctrl *gomock.Controller) *MockShaderResourceVariable {
	mock := NewMockShaderResourceVariable(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockPipelineResourceSignature(ctrl *gomock.Controller) *MockPipelineResourceSignature {
	mock := NewMockPipelineResourceSignature(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockPipelineState(ctrl *gomock.Controller) *MockPipelineState {
	mock := NewMockPipelineState(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockShaderResourceBinding(ctrl *gomock.Controller) *MockShaderResourceBinding {
	mock := NewMockShaderResourceBinding(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderPass(ctrl *gomock.Controller) *MockRenderPass {
	mock := NewMockRenderPass(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockFramebuffer(ctrl *gomock.Controller) *MockFramebuffer {
	mock := NewMockFramebuffer(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBottomLevelAS(ctrl *gomock.Controller) *MockBottomLevelAS {
	mock := NewMockBottomLevelAS(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTopLevelAS(ctrl *gomock.Controller) *MockTopLevelAS {
	mock := NewMockTopLevelAS(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockShaderBindingTable(ctrl *gomock.Controller) *MockShaderBindingTable {
	mock := NewMockShaderBindingTable(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderDevice(ctrl *gomock.Controller) *MockRenderDevice {
	mock := NewMockRenderDevice(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceContext(ctrl *gomock.Controller) *MockDeviceContext {
	mock := NewMockDeviceContext(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSwapChain(ctrl *gomock.Controller) *MockSwapChain {
	mock := NewMockSwapChain(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockEngineFactory(ctrl *gomock.Controller) *MockEngineFactory {
	mock := NewMockEngineFactory(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferVk(ctrl *gomock.Controller) *MockBufferVk {
	mock := NewMockBufferVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferViewVk(ctrl *gomock.Controller) *MockBufferViewVk {
	mock := NewMockBufferViewVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureVk(ctrl *gomock.Controller) *MockTextureVk {
	mock := NewMockTextureVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureViewVk(ctrl *gomock.Controller) *MockTextureViewVk {
	mock := NewMockTextureViewVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSamplerVk(ctrl *gomock.Controller) *MockSamplerVk {
	mock := NewMockSamplerVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockFenceVk(ctrl *gomock.Controller) *MockFenceVk {
	mock := NewMockFenceVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSwapChainVk(ctrl *gomock.Controller) *MockSwapChainVk {
	mock := NewMockSwapChainVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderDeviceVk(ctrl *gomock.Controller) *MockRenderDeviceVk {
	mock := NewMockRenderDeviceVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceContextVk(ctrl *gomock.Controller) *MockDeviceContextVk {
	mock := NewMockDeviceContextVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockEngineFactoryVk(ctrl *gomock.Controller) *MockEngineFactoryVk {
	mock := NewMockEngineFactoryVk(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferGL(ctrl *gomock.Controller) *MockBufferGL {
	mock := NewMockBufferGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureGL(ctrl *gomock.Controller) *MockTextureGL {
	mock := NewMockTextureGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderDeviceGL(ctrl *gomock.Controller) *MockRenderDeviceGL {
	mock := NewMockRenderDeviceGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceContextGL(ctrl *gomock.Controller) *MockDeviceContextGL {
	mock := NewMockDeviceContextGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSwapChainGL(ctrl *gomock.Controller) *MockSwapChainGL {
	mock := NewMockSwapChainGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockEngineFactoryOpenGL(ctrl *gomock.Controller) *MockEngineFactoryOpenGL {
	mock := NewMockEngineFactoryOpenGL(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferD3D12(ctrl *gomock.Controller) *MockBufferD3D12 {
	mock := NewMockBufferD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureD3D12(ctrl *gomock.Controller) *MockTextureD3D12 {
	mock := NewMockTextureD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderDeviceD3D12(ctrl *gomock.Controller) *MockRenderDeviceD3D12 {
	mock := NewMockRenderDeviceD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceContextD3D12(ctrl *gomock.Controller) *MockDeviceContextD3D12 {
	mock := NewMockDeviceContextD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSwapChainD3D12(ctrl *gomock.Controller) *MockSwapChainD3D12 {
	mock := NewMockSwapChainD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockEngineFactoryD3D12(ctrl *gomock.Controller) *MockEngineFactoryD3D12 {
	mock := NewMockEngineFactoryD3D12(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockBufferD3D11(ctrl *gomock.Controller) *MockBufferD3D11 {
	mock := NewMockBufferD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockTextureD3D11(ctrl *gomock.Controller) *MockTextureD3D11 {
	mock := NewMockTextureD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockRenderDeviceD3D11(ctrl *gomock.Controller) *MockRenderDeviceD3D11 {
	mock := NewMockRenderDeviceD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockDeviceContextD3D11(ctrl *gomock.Controller) *MockDeviceContextD3D11 {
	mock := NewMockDeviceContextD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockSwapChainD3D11(ctrl *gomock.Controller) *MockSwapChainD3D11 {
	mock := NewMockSwapChainD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}

func EasyMockEngineFactoryD3D11(ctrl *gomock.Controller) *MockEngineFactoryD3D11 {
	mock := NewMockEngineFactoryD3D11(ctrl)
	mock.EXPECT().Handle().Return(NewFakeHandle()).AnyTimes()
	return mock
}
