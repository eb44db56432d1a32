package diligent

import (
	"github.com/vkngwrapper/diligent/driver"
	"golang.org/x/exp/slog"
)

// SwapChain presents rendered frames to a window.
type SwapChain struct {
	object
	drv driver.SwapChain
}

func wrapSwapChain(native driver.SwapChain, logger *slog.Logger) *SwapChain {
	s := &SwapChain{drv: native}
	s.adopt(native, "SwapChain", logger)
	return s
}

// SwapChainFromDriver wraps a driver swap chain, taking over the reference the caller
// holds.
func SwapChainFromDriver(native driver.SwapChain, logger *slog.Logger) *SwapChain {
	return fromOwned(native, loggerOrDiscard(logger), wrapSwapChain)
}

func (s *SwapChain) Driver() driver.SwapChain {
	if s == nil {
		return nil
	}
	return s.drv
}

func (s *SwapChain) Ref() *SwapChain {
	return fromBorrowed(s.drv, s.logger, wrapSwapChain)
}

// Present shows the current back buffer. syncInterval 0 presents immediately, 1
// waits for the next vertical blank.
func (s *SwapChain) Present(syncInterval uint32) {
	s.drv.Present(syncInterval)
}

func (s *SwapChain) Desc() SwapChainDesc {
	return swapChainDescFromNative(s.drv.GetDesc())
}

// Resize recreates the back buffers after the window changed size. It reports whether
// the swap chain was actually recreated.
func (s *SwapChain) Resize(newWidth, newHeight uint32, newTransform SurfaceTransform) bool {
	s.logger.Debug("SwapChain::Resize")
	return s.drv.Resize(newWidth, newHeight, newTransform.native())
}

func (s *SwapChain) SetFullscreenMode(mode DisplayModeAttribs) {
	s.logger.Debug("SwapChain::SetFullscreenMode")

	arena := driver.NewArena()
	defer arena.Release()

	s.drv.SetFullscreenMode(mode.marshal(arena))
}

func (s *SwapChain) SetWindowedMode() {
	s.logger.Debug("SwapChain::SetWindowedMode")
	s.drv.SetWindowedMode()
}

func (s *SwapChain) SetMaximumFrameLatency(maxLatency uint32) {
	s.drv.SetMaximumFrameLatency(maxLatency)
}

// CurrentBackBufferRTV returns a new reference to the render target view of the back
// buffer the next frame is drawn to.
func (s *SwapChain) CurrentBackBufferRTV() *TextureView {
	return fromBorrowed(s.drv.GetCurrentBackBufferRTV(), s.logger, wrapTextureView)
}

// DepthBufferDSV returns a new reference to the depth buffer view, or nil when the
// swap chain was created without a depth buffer.
func (s *SwapChain) DepthBufferDSV() *TextureView {
	return fromBorrowed(s.drv.GetDepthBufferDSV(), s.logger, wrapTextureView)
}
