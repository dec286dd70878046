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

package gauge

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
)

// pngHeaderSize is the length of the PNG signature plus the IHDR chunk,
// which the encoder always writes first.
const pngHeaderSize = 8 + 4 + 4 + 13 + 4

// Encode writes img to w in PNG format. The file records the resolution
// dpi, so that the image prints at its intended size.
func Encode(w io.Writer, img image.Image, dpi float64) error {
	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		return errors.Wrap(err, "encoding PNG")
	}
	data := buf.Bytes()

	if _, err := w.Write(data[:pngHeaderSize]); err != nil {
		return err
	}
	if dpi > 0 {
		if _, err := w.Write(physChunk(dpi)); err != nil {
			return err
		}
	}
	_, err := w.Write(data[pngHeaderSize:])
	return err
}

// physChunk returns a pHYs chunk giving the pixel density in pixels per
// meter.
func physChunk(dpi float64) []byte {
	ppm := uint32(math.Round(dpi / 0.0254))

	chunk := make([]byte, 4+4+9+4)
	binary.BigEndian.PutUint32(chunk[0:], 9)
	copy(chunk[4:], "pHYs")
	binary.BigEndian.PutUint32(chunk[8:], ppm)
	binary.BigEndian.PutUint32(chunk[12:], ppm)
	chunk[16] = 1 // unit is the meter
	binary.BigEndian.PutUint32(chunk[17:], crc32.ChecksumIEEE(chunk[4:17]))
	return chunk
}

// Save writes img to the named file as a PNG image and returns the number
// of bytes written.
func Save(img image.Image, fname string, dpi float64) (int64, error) {
	buf := &bytes.Buffer{}
	if err := Encode(buf, img, dpi); err != nil {
		return 0, err
	}
	if err := os.WriteFile(fname, buf.Bytes(), 0o644); err != nil {
		return 0, errors.Wrap(err, "saving gauge")
	}
	return int64(buf.Len()), nil
}
