// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.

// Package sdldisplay presents the displayed frame buffer of a display.Memory
// device in an SDL window.
//
// SDL must only be used from the main thread. The functions in this package
// must therefore only be called from the goroutine that called NewWindow(),
// and that goroutine should be the main goroutine.
package sdldisplay

import (
	"runtime"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/display"
	"github.com/ps2homebrew/gslib/logger"
)

// Error is the curated error pattern for errors from SDL.
const Error = "sdldisplay: %v"

const pixelDepth = 4

// Window is an SDL window showing the display source of a display.Memory
// device.
type Window struct {
	dev *display.Memory

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// size of the texture. the texture is recreated if the size of the
	// displayed frame changes
	width  int32
	height int32

	scale int32
}

// NewWindow is the preferred method of initialisation for the Window type.
// The window is not shown until the first call to Service().
func NewWindow(dev *display.Memory, title string, scale int) (*Window, error) {
	runtime.LockOSThread()

	if scale < 1 {
		scale = 1
	}

	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(Error, err)
	}

	win := &Window{
		dev:   dev,
		scale: int32(scale),
	}

	win.window, err = sdl.CreateWindow(title,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		0, 0,
		uint32(sdl.WINDOW_HIDDEN))
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(Error, err)
	}

	win.renderer, err = sdl.CreateRenderer(win.window, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		win.Destroy()
		return nil, curated.Errorf(Error, err)
	}

	logger.Logf(logger.Allow, "sdldisplay", "window created (scale %d)", scale)

	return win, nil
}

// Destroy the window and shutdown SDL.
func (win *Window) Destroy() {
	if win.texture != nil {
		_ = win.texture.Destroy()
		win.texture = nil
	}
	if win.renderer != nil {
		_ = win.renderer.Destroy()
		win.renderer = nil
	}
	if win.window != nil {
		_ = win.window.Destroy()
		win.window = nil
	}
	sdl.Quit()
}

func (win *Window) resize(w int32, h int32) error {
	if win.texture != nil && w == win.width && h == win.height {
		return nil
	}

	if win.texture != nil {
		_ = win.texture.Destroy()
		win.texture = nil
	}

	var err error
	win.texture, err = win.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		w, h)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	win.width = w
	win.height = h
	win.window.SetSize(w*win.scale, h*win.scale)
	win.window.Show()

	return nil
}

// Service handles pending SDL events and presents the displayed frame.
// Returns false if the window has been closed.
func (win *Window) Service() (bool, error) {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false, nil
		case *sdl.KeyboardEvent:
			if ev.Type == sdl.KEYDOWN && ev.Keysym.Scancode == sdl.SCANCODE_ESCAPE {
				return false, nil
			}
		}
	}

	img, err := win.dev.Displayed()
	if err != nil {
		// nothing to show yet
		return true, nil
	}

	err = win.resize(int32(img.Bounds().Dx()), int32(img.Bounds().Dy()))
	if err != nil {
		return false, err
	}

	pixels, pitch, err := win.texture.Lock(nil)
	if err != nil {
		return false, curated.Errorf(Error, err)
	}
	rowBytes := img.Bounds().Dx() * pixelDepth
	for y := 0; y < img.Bounds().Dy(); y++ {
		copy(pixels[y*pitch:y*pitch+rowBytes], img.Pix[y*img.Stride:y*img.Stride+rowBytes])
	}
	win.texture.Unlock()

	err = win.renderer.Clear()
	if err != nil {
		return false, curated.Errorf(Error, err)
	}
	err = win.renderer.Copy(win.texture, nil, nil)
	if err != nil {
		return false, curated.Errorf(Error, err)
	}
	win.renderer.Present()

	return true, nil
}
