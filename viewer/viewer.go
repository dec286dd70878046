// seehuhn.de/go/gauge - instrument cluster gauge renderer
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package viewer shows rendered gauges in a desktop window.
package viewer

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/pkg/errors"
)

// Page is one image shown by the viewer.
type Page struct {
	Title string
	Image image.Image
}

// Show opens a window displaying the given pages and blocks until the
// window is closed or Escape is pressed. The arrow keys and the space bar
// switch between pages. The longer side of the window is maxSize pixels;
// images are scaled to fit.
//
// Show can only be called once per process.
func Show(pages []Page, maxSize int) error {
	if len(pages) == 0 {
		return nil
	}
	for i, p := range pages {
		if p.Image == nil || p.Image.Bounds().Empty() {
			return errors.Errorf("page %d has no image", i+1)
		}
	}

	b := pages[0].Image.Bounds()
	w, h := fitWindow(b.Dx(), b.Dy(), maxSize)

	g := &viewGame{pages: pages, imgs: make([]*ebiten.Image, len(pages))}
	ebiten.SetWindowTitle(g.title())
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(30)

	err := ebiten.RunGame(g)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

type viewGame struct {
	pages   []Page
	imgs    []*ebiten.Image
	current int
}

func (g *viewGame) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	next := g.current
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyRight), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		next++
	case inpututil.IsKeyJustPressed(ebiten.KeyLeft):
		next--
	}
	next = (next + len(g.pages)) % len(g.pages)
	if next != g.current {
		g.current = next
		ebiten.SetWindowTitle(g.title())
	}
	return nil
}

func (g *viewGame) Draw(screen *ebiten.Image) {
	img := g.imgs[g.current]
	if img == nil {
		img = ebiten.NewImageFromImage(g.pages[g.current].Image)
		g.imgs[g.current] = img
	}
	screen.DrawImage(img, nil)
}

func (g *viewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	b := g.pages[g.current].Image.Bounds()
	return b.Dx(), b.Dy()
}

func (g *viewGame) title() string {
	title := g.pages[g.current].Title
	if len(g.pages) > 1 {
		title = fmt.Sprintf("%s (%d/%d)", title, g.current+1, len(g.pages))
	}
	return title
}

// fitWindow scales an image size down so that neither side exceeds
// maxSize, keeping the aspect ratio. Small images are not enlarged.
func fitWindow(w, h, maxSize int) (int, int) {
	if maxSize <= 0 || (w <= maxSize && h <= maxSize) {
		return w, h
	}
	if w >= h {
		return maxSize, max(1, h*maxSize/w)
	}
	return max(1, w*maxSize/h), maxSize
}
