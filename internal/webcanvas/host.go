//go:build js && wasm

// Package webcanvas runs particle fields on HTML canvases.
//
// A [Host] binds one field to one <canvas>. Frames run on
// requestAnimationFrame; the pending frame is cancelled while the page is
// hidden and when the host is closed, and every registered callback is
// released on Close.
package webcanvas

import (
	"syscall/js"

	"go.uber.org/zap"

	"github.com/san-kum/particlefield/internal/particle"
)

type Host struct {
	field     *particle.Field
	surface   *Surface
	container js.Value
	log       *zap.Logger

	onFrame      js.Func
	onResize     js.Func
	onVisibility js.Func
	frameID      js.Value
	scheduled    bool
	started      bool
	closed       bool
}

// NewHost binds field to canvas. The canvas is sized to container, or to
// the window when container is undefined. A canvas without a 2D context
// yields a host whose Start and Close do nothing.
func NewHost(canvas, container js.Value, field *particle.Field, log *zap.Logger) *Host {
	if log == nil {
		log = zap.NewNop()
	}
	h := &Host{
		field:     field,
		surface:   NewSurface(canvas),
		container: container,
		log:       log,
	}
	if h.surface == nil {
		log.Debug("canvas has no 2d context, skipping")
	}
	return h
}

func (h *Host) Start() {
	if h.surface == nil || h.closed || h.started {
		return
	}
	h.started = true

	h.onFrame = js.FuncOf(func(js.Value, []js.Value) any {
		h.scheduled = false
		if h.closed {
			return nil
		}
		if h.hasContainer() {
			// Cards can change size without the window doing so.
			h.resize()
		}
		h.field.Frame(h.surface)
		h.schedule()
		return nil
	})
	h.onResize = js.FuncOf(func(js.Value, []js.Value) any {
		h.resize()
		return nil
	})
	h.onVisibility = js.FuncOf(func(js.Value, []js.Value) any {
		if js.Global().Get("document").Get("hidden").Bool() {
			h.cancel()
			return nil
		}
		h.schedule()
		return nil
	})

	js.Global().Call("addEventListener", "resize", h.onResize)
	js.Global().Get("document").Call("addEventListener", "visibilitychange", h.onVisibility)

	b := h.measure()
	h.surface.SetSize(b.Width, b.Height)
	h.field.Mount(b)
	h.log.Debug("canvas host started", zap.Float64("width", h.field.Bounds().Width), zap.Float64("height", h.field.Bounds().Height))
	h.schedule()
}

func (h *Host) hasContainer() bool {
	return !h.container.IsUndefined() && !h.container.IsNull()
}

func (h *Host) measure() particle.Bounds {
	if !h.hasContainer() {
		win := js.Global()
		return particle.Bounds{Width: win.Get("innerWidth").Float(), Height: win.Get("innerHeight").Float()}
	}
	rect := h.container.Call("getBoundingClientRect")
	return particle.Bounds{Width: rect.Get("width").Float(), Height: rect.Get("height").Float()}
}

// resize applies the measured size to the canvas and field. Setting the
// canvas size clears it, so an unchanged size is left alone.
func (h *Host) resize() {
	b := h.measure()
	if b == h.field.Bounds() {
		return
	}
	h.surface.SetSize(b.Width, b.Height)
	h.field.Resize(b)
}

func (h *Host) schedule() {
	if h.scheduled || h.closed {
		return
	}
	h.frameID = js.Global().Call("requestAnimationFrame", h.onFrame)
	h.scheduled = true
}

func (h *Host) cancel() {
	if !h.scheduled {
		return
	}
	js.Global().Call("cancelAnimationFrame", h.frameID)
	h.scheduled = false
}

// Close cancels the pending frame, removes listeners, releases callbacks
// and disposes the field.
func (h *Host) Close() {
	if h.surface == nil || h.closed {
		return
	}
	h.cancel()
	h.closed = true
	defer h.field.Dispose()
	if !h.started {
		return
	}

	js.Global().Call("removeEventListener", "resize", h.onResize)
	js.Global().Get("document").Call("removeEventListener", "visibilitychange", h.onVisibility)
	h.onFrame.Release()
	h.onResize.Release()
	h.onVisibility.Release()

	h.log.Debug("canvas host closed", zap.Uint64("frames", h.field.Ticks()))
}
