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


package sound_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/sound"
	"github.com/resdl/resdl/test"
)

func writeWAV(t *testing.T, fn string, rate int, chans int, data []int) {
	t.Helper()

	f, err := os.Create(fn)
	test.DemandSuccess(t, err)

	enc := wav.NewEncoder(f, rate, 16, chans, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: chans, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	test.DemandSuccess(t, enc.Write(buf))
	test.DemandSuccess(t, enc.Close())
	test.DemandSuccess(t, f.Close())
}

func TestWAV(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "tone.wav")

	// 100ms of stereo audio at 8000Hz
	data := make([]int, 1600)
	for i := range data {
		if i%2 == 0 {
			data[i] = i * 10
		} else {
			data[i] = -i * 10
		}
	}
	writeWAV(t, fn, 8000, 2, data)

	clip, err := sound.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, clip.SampleRate, 8000)
	test.ExpectEquality(t, clip.Channels, 2)
	test.ExpectEquality(t, clip.Frames(), 800)
	test.ExpectEquality(t, clip.Duration(), 100*time.Millisecond)

	test.DemandEquality(t, len(clip.Data), len(data))
	for i := range data {
		if !test.ExpectEquality(t, int(clip.Data[i]), data[i], i) {
			break
		}
	}
}

func TestWAVUppercaseExtension(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "TONE.WAV")
	writeWAV(t, fn, 11025, 1, []int{0, 100, 200, 300})

	clip, err := sound.Load(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, clip.Channels, 1)
	test.ExpectEquality(t, clip.Frames(), 4)
}

func TestBadData(t *testing.T) {
	_, err := sound.Load("music.mid")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sound.UnknownFormat))

	_, err = sound.Load(filepath.Join(t.TempDir(), "missing.wav"))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sound.DecodeError))

	_, err = sound.DecodeWAV(bytes.NewReader([]byte("this is not a wav file at all")))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sound.DecodeError))

	_, err = sound.DecodeMP3(bytes.NewReader(nil))
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, sound.DecodeError))
}

func TestBytes(t *testing.T) {
	clip := &sound.Clip{SampleRate: 8000, Channels: 1, Data: []int16{1, -1, 0x1234}}
	test.ExpectSuccess(t, bytes.Equal(clip.Bytes(), []byte{0x01, 0x00, 0xff, 0xff, 0x34, 0x12}))

	empty := &sound.Clip{}
	test.ExpectEquality(t, empty.Frames(), 0)
	test.ExpectEquality(t, empty.Duration(), time.Duration(0))
}
