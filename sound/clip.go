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


package sound

import (
	"encoding/binary"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/logger"
)

// Sentinal error patterns.
const (
	UnknownFormat = "sound: unknown audio format (%s)"
	DecodeError   = "sound: %s: %v"
)

const logTag = "sound"

// Clip is decoded PCM audio. Samples are signed 16bit values, interleaved
// when there is more than one channel.
type Clip struct {
	SampleRate int
	Channels   int
	Data       []int16
}

// Frames returns the number of sample frames in the clip. A frame is one
// sample for every channel.
func (c *Clip) Frames() int {
	if c.Channels == 0 {
		return 0
	}
	return len(c.Data) / c.Channels
}

// Duration returns the playing time of the clip.
func (c *Clip) Duration() time.Duration {
	if c.SampleRate == 0 {
		return 0
	}
	return time.Duration(c.Frames()) * time.Second / time.Duration(c.SampleRate)
}

// Bytes returns the clip data as little endian bytes, suitable for queuing
// to an AUDIO_S16LSB device.
func (c *Clip) Bytes() []byte {
	b := make([]byte, len(c.Data)*2)
	for i, s := range c.Data {
		binary.LittleEndian.PutUint16(b[i*2:], uint16(s))
	}
	return b
}

// Load decodes the named file. The decoder is chosen by the file extension.
func Load(filename string) (*Clip, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".wav", ".mp3":
	default:
		return nil, curated.Errorf(UnknownFormat, ext)
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(DecodeError, filepath.Base(filename), err)
	}
	defer f.Close()

	var clip *Clip
	if ext == ".wav" {
		clip, err = DecodeWAV(f)
	} else {
		clip, err = DecodeMP3(f)
	}
	if err != nil {
		return nil, err
	}

	logger.Logf(logger.Allow, logTag, "%s: %dHz, %d channels, %.02fs", filepath.Base(filename),
		clip.SampleRate, clip.Channels, clip.Duration().Seconds())

	return clip, nil
}

// DecodeWAV decodes WAV data. Samples of any bit depth are converted to
// 16bit.
func DecodeWAV(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return nil, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	// load all data at once
	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, curated.Errorf(DecodeError, "wav", err)
	}

	depth := int(dec.BitDepth)
	if buf.SourceBitDepth != 0 {
		depth = buf.SourceBitDepth
	}

	clip := &Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]int16, len(buf.Data)),
	}

	for i, v := range buf.Data {
		switch {
		case depth == 8:
			// 8bit wav data is unsigned
			clip.Data[i] = int16((v - 128) << 8)
		case depth > 16:
			clip.Data[i] = int16(v >> (depth - 16))
		default:
			clip.Data[i] = int16(v)
		}
	}

	return clip, nil
}

// mp3 data is always decoded as 16bit little endian with two channels
const (
	mp3Channels    = 2
	mp3BytesPerSet = 4
)

// DecodeMP3 decodes MP3 data.
func DecodeMP3(r io.Reader) (*Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return nil, curated.Errorf(DecodeError, "mp3", err)
	}

	clip := &Clip{
		SampleRate: dec.SampleRate(),
		Channels:   mp3Channels,
	}

	if l := dec.Length(); l > 0 {
		clip.Data = make([]int16, 0, l/2)
	}

	chunk := make([]byte, 4096)
	var carry []byte
	for {
		n, err := dec.Read(chunk)
		data := chunk[:n]
		if len(carry) > 0 {
			data = append(carry, data...)
			carry = nil
		}

		whole := len(data) - len(data)%mp3BytesPerSet
		for i := 0; i < whole; i += 2 {
			clip.Data = append(clip.Data, int16(binary.LittleEndian.Uint16(data[i:])))
		}
		if whole < len(data) {
			carry = append([]byte{}, data[whole:]...)
		}

		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, curated.Errorf(DecodeError, "mp3", err)
		}
	}

	return clip, nil
}
