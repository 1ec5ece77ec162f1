// This file is part of Resdl.
//
// Resdl is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Resdl is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Resdl.  If not, see <https://www.gnu.org/licenses/>.


// Package digest produces a cryptographic hash of rendered frames. The hash
// can be used to compare the output of subsequent runs. If a new hash differs
// from a previously recorded value then something has changed.
//
// The hash of each frame is chained with the hash of the previous frame, so
// the final hash represents the entire sequence of frames.
package digest

import (
	"crypto/sha1"
	"fmt"
	"image"
)

// Digest implementations should return a cryptographic hash in response to a
// Hash() request. Generation of the hash achieved via another interface.
type Digest interface {
	Hash() string
	ResetDigest()
}

const pixelDepth = 3

// Video is an implementation of Digest for a sequence of images.
type Video struct {
	digest [sha1.Size]byte
	pixels []byte
	frames int
}

// NewVideo is the preferred method of initialisation for the Video type.
func NewVideo() *Video {
	return &Video{}
}

// Hash implements the Digest interface.
func (dig *Video) Hash() string {
	return fmt.Sprintf("%x", dig.digest)
}

// ResetDigest implements the Digest interface.
func (dig *Video) ResetDigest() {
	clear(dig.digest[:])
	dig.frames = 0
}

// Frames returns the number of frames in the digest.
func (dig *Video) Frames() int {
	return dig.frames
}

// Frame adds the image to the digest. The alpha channel of the image is
// ignored.
func (dig *Video) Frame(img image.Image) {
	bnd := img.Bounds()

	// the head of the pixel data is the previous digest
	l := len(dig.digest) + bnd.Dx()*bnd.Dy()*pixelDepth
	if cap(dig.pixels) < l {
		dig.pixels = make([]byte, l)
	}
	dig.pixels = dig.pixels[:l]

	i := copy(dig.pixels, dig.digest[:])
	for y := bnd.Min.Y; y < bnd.Max.Y; y++ {
		for x := bnd.Min.X; x < bnd.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			dig.pixels[i] = byte(r >> 8)
			dig.pixels[i+1] = byte(g >> 8)
			dig.pixels[i+2] = byte(b >> 8)
			i += pixelDepth
		}
	}

	dig.digest = sha1.Sum(dig.pixels)
	dig.frames++
}
