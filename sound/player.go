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
	"time"

	"github.com/resdl/resdl/curated"
	"github.com/resdl/resdl/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	DeviceError   = "sound: device: %v"
	FormatChanged = "sound: clip format (%dHz, %d channels) does not match device"
)

// the number of sample frames requested from the audio device in one go. the
// value is not critical
const bufferLength = 1024

// when looping, the clip is queued again when less than this amount of audio
// remains in the device queue
const loopThreshold = 250 * time.Millisecond

// Devices returns the names of the available playback devices.
func Devices() []string {
	n := sdl.GetNumAudioDevices(false)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		names = append(names, sdl.GetAudioDeviceName(i, false))
	}
	return names
}

// Player queues clips to an SDL audio device. The SDL audio subsystem must
// have been initialised before a Player is created.
type Player struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// clip being looped. nil if not looping
	loop      *Clip
	loopBytes []byte
}

// NewPlayer is the preferred method of initialisation for the Player type.
// An empty device name opens the default playback device. The device is
// opened paused.
func NewPlayer(device string, sampleRate int, channels int) (*Player, error) {
	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(channels),
		Samples:  bufferLength,
	}

	ply := &Player{}

	var err error
	ply.id, err = sdl.OpenAudioDevice(device, false, spec, &ply.spec, 0)
	if err != nil {
		return nil, curated.Errorf(DeviceError, err)
	}

	logger.Logf(logger.Allow, logTag, "audio device opened: %dHz, %d channels", ply.spec.Freq, ply.spec.Channels)

	return ply, nil
}

// Close the audio device.
func (ply *Player) Close() {
	sdl.CloseAudioDevice(ply.id)
}

// Pause playback.
func (ply *Player) Pause() {
	sdl.PauseAudioDevice(ply.id, true)
}

// Resume playback.
func (ply *Player) Resume() {
	sdl.PauseAudioDevice(ply.id, false)
}

// Playing returns true if the device is not paused or stopped.
func (ply *Player) Playing() bool {
	return sdl.GetAudioDeviceStatus(ply.id) == sdl.AUDIO_PLAYING
}

// Queued returns the amount of audio waiting to be played.
func (ply *Player) Queued() time.Duration {
	n := sdl.GetQueuedAudioSize(ply.id)
	bytesPerSecond := int(ply.spec.Freq) * int(ply.spec.Channels) * 2
	if bytesPerSecond == 0 {
		return 0
	}
	return time.Duration(n) * time.Second / time.Duration(bytesPerSecond)
}

// Clear any queued audio and stop looping.
func (ply *Player) Clear() {
	sdl.ClearQueuedAudio(ply.id)
	ply.loop = nil
	ply.loopBytes = nil
}

func (ply *Player) check(clip *Clip) error {
	if clip.SampleRate != int(ply.spec.Freq) || clip.Channels != int(ply.spec.Channels) {
		return curated.Errorf(FormatChanged, clip.SampleRate, clip.Channels)
	}
	return nil
}

// Queue the clip for playing once.
func (ply *Player) Queue(clip *Clip) error {
	if err := ply.check(clip); err != nil {
		return err
	}
	if err := sdl.QueueAudio(ply.id, clip.Bytes()); err != nil {
		return curated.Errorf(DeviceError, err)
	}
	return nil
}

// Loop the clip until Clear() is called. Update() must be called regularly
// for the loop to continue.
func (ply *Player) Loop(clip *Clip) error {
	if err := ply.Queue(clip); err != nil {
		return err
	}
	ply.loop = clip
	ply.loopBytes = clip.Bytes()
	return nil
}

// Update implements the engine.Updater interface. It keeps a looping clip
// queued.
func (ply *Player) Update(_ time.Duration) {
	if ply.loop == nil || ply.Queued() > loopThreshold {
		return
	}
	if err := sdl.QueueAudio(ply.id, ply.loopBytes); err != nil {
		logger.Logf(logger.Allow, logTag, "loop: %v", err)
		ply.loop = nil
		ply.loopBytes = nil
	}
}
