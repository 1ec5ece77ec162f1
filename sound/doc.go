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


// Package sound decodes audio files into PCM clips and plays them through an
// SDL audio device.
//
// Clips are decoded with Load(), which chooses the decoder from the filename
// extension. WAV files are decoded by go-audio/wav and MP3 files by go-mp3.
// In every case the decoded data is signed 16bit and interleaved, which is
// the format the Player queues to the audio device.
//
// The Player is deliberately simple. It does not mix. A clip is queued to the
// device and optionally looped, which is enough for background music.
package sound
