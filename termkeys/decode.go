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

package termkeys

import "github.com/resdl/resdl/input"

// list of ASCII codes for non-printable characters
const (
	keyCtrlC          = 3
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// ASCII code that follows keyEsc to introduce a cursor key sequence
const escCursor = '['

// list of ASCII code for characters that can follow escCursor
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
)

type event struct {
	key       input.Key
	interrupt bool
}

// decode a chunk of bytes as read from the terminal. an escape byte that does
// not start a cursor sequence is the escape key. the whole of an unrecognised
// control sequence is consumed and reported as the escape key
func decode(buf []byte) []event {
	var evs []event

	for i := 0; i < len(buf); i++ {
		b := buf[i]

		switch {
		case b >= 'a' && b <= 'z':
			evs = append(evs, event{key: input.KeyA + input.Key(b-'a')})
		case b >= 'A' && b <= 'Z':
			evs = append(evs, event{key: input.KeyA + input.Key(b-'A')})
		case b == '0':
			evs = append(evs, event{key: input.Key0})
		case b >= '1' && b <= '9':
			evs = append(evs, event{key: input.Key1 + input.Key(b-'1')})
		case b == ' ':
			evs = append(evs, event{key: input.KeySpace})
		case b == keyCarriageReturn || b == keyLineFeed:
			evs = append(evs, event{key: input.KeyReturn})
		case b == keyTab:
			evs = append(evs, event{key: input.KeyTab})
		case b == keyBackspace || b == keyDelete:
			evs = append(evs, event{key: input.KeyBackspace})
		case b == keyCtrlC:
			evs = append(evs, event{interrupt: true})
		case b == keyEsc:
			if i+1 < len(buf) && buf[i+1] == escCursor {
				// control sequence. parameter and intermediate bytes run up
				// to the final byte in the range 0x40 to 0x7e
				j := i + 2
				for j < len(buf) && (buf[j] < 0x40 || buf[j] > 0x7e) {
					j++
				}
				i = j

				k := input.KeyEscape
				if j < len(buf) {
					switch buf[j] {
					case cursorUp:
						k = input.KeyUp
					case cursorDown:
						k = input.KeyDown
					case cursorForward:
						k = input.KeyRight
					case cursorBackward:
						k = input.KeyLeft
					}
				}
				evs = append(evs, event{key: k})
				continue
			}
			evs = append(evs, event{key: input.KeyEscape})
		}
	}

	return evs
}
