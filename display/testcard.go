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

package display

import (
	"fmt"
	"image"
	"image/color"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

// colour bars drawn by TestCard
var bars = []color.RGBA{
	colornames.White,
	colornames.Yellow,
	colornames.Cyan,
	colornames.Lime,
	colornames.Magenta,
	colornames.Red,
	colornames.Blue,
}

// background colour changes every frame so that tearing and repeated frames
// are visible
var backgrounds = []color.RGBA{
	colornames.Black,
	colornames.Darkslategray,
	colornames.Midnightblue,
	colornames.Darkred,
}

// TestCard draws a numbered test card into the image. A marker moves along
// the bottom of the card with each frame.
func TestCard(img *image.RGBA, frame int) {
	if img == nil {
		return
	}

	dc := gg.NewContextForRGBA(img)
	w := float64(img.Bounds().Dx())
	h := float64(img.Bounds().Dy())

	dc.SetColor(backgrounds[frame%len(backgrounds)])
	dc.Clear()

	bw := w / float64(len(bars))
	for i, c := range bars {
		dc.SetColor(c)
		dc.DrawRectangle(float64(i)*bw, 0, bw, h*0.6)
		dc.Fill()
	}

	// marker
	const markerSize = 8.0
	x := float64((frame*4)%int(max(w-markerSize, 1)))
	dc.SetColor(colornames.Orange)
	dc.DrawRectangle(x, h-markerSize*2, markerSize, markerSize)
	dc.Fill()

	dc.SetFontFace(basicfont.Face7x13)
	dc.SetColor(colornames.White)
	dc.DrawStringAnchored(fmt.Sprintf("frame %d", frame), w/2, h*0.75, 0.5, 0.5)
}
