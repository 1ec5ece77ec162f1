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

import (
	"errors"
	"io"
	"time"

	"github.com/pkg/term"
	"github.com/resdl/resdl/input"
	"github.com/resdl/resdl/logger"
)

// DefaultHold is the number of ticks a key is held for after its most recent
// byte. The value is long enough to bridge the gap between the first and
// second byte of a typical keyboard auto-repeat.
const DefaultHold = 30

// Keyboard implements the input.Keyboard and input.Poller interfaces.
type Keyboard struct {
	events chan event
	done   chan struct{}

	// number of ticks remaining for each held key
	held map[input.Key]int

	// the number of ticks a key is held for after its most recent byte
	Hold int

	interrupt func()

	tty *term.Term
}

// NewKeyboard is the preferred method of initialisation for the Keyboard type.
// Bytes are read from the reader in a separate goroutine until the reader
// returns an error or until Close() is called.
func NewKeyboard(r io.Reader) *Keyboard {
	kb := &Keyboard{
		events: make(chan event, 64),
		done:   make(chan struct{}),
		held:   make(map[input.Key]int),
		Hold:   DefaultHold,
	}
	go kb.read(r)
	return kb
}

// Open the terminal device in raw mode and create a Keyboard for it. The
// device is usually "/dev/tty". Close() should be called to restore the
// terminal.
func Open(device string) (*Keyboard, error) {
	tty, err := term.Open(device, term.RawMode)
	if err != nil {
		return nil, err
	}

	// a short read timeout means the reading goroutine notices Close()
	err = tty.SetReadTimeout(100 * time.Millisecond)
	if err != nil {
		_ = tty.Restore()
		_ = tty.Close()
		return nil, err
	}

	kb := NewKeyboard(tty)
	kb.tty = tty
	return kb, nil
}

// OnInterrupt sets the function that is called when CTRL-C is typed. In raw
// mode the terminal does not raise a signal for CTRL-C. The function is
// called by Poll().
func (kb *Keyboard) OnInterrupt(f func()) {
	kb.interrupt = f
}

func (kb *Keyboard) read(r io.Reader) {
	buf := make([]byte, 32)
	for {
		select {
		case <-kb.done:
			return
		default:
		}

		n, err := r.Read(buf)
		for _, ev := range decode(buf[:n]) {
			select {
			case kb.events <- ev:
			default:
				logger.Log(logger.Allow, "termkeys", "dropped key event")
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				logger.Logf(logger.Allow, "termkeys", "read: %v", err)
			}
			return
		}
	}
}

// Poll implements the input.Poller interface.
func (kb *Keyboard) Poll() {
	for k, n := range kb.held {
		if n <= 1 {
			delete(kb.held, k)
		} else {
			kb.held[k] = n - 1
		}
	}

	for {
		select {
		case ev := <-kb.events:
			if ev.interrupt {
				if kb.interrupt != nil {
					kb.interrupt()
				}
				continue
			}
			kb.held[ev.key] = kb.Hold
		default:
			return
		}
	}
}

// KeyDown implements the input.Keyboard interface.
func (kb *Keyboard) KeyDown(k input.Key) bool {
	return kb.held[k] > 0
}

// Close stops reading and restores the terminal if the keyboard was created
// by Open().
func (kb *Keyboard) Close() error {
	select {
	case <-kb.done:
		return nil
	default:
	}
	close(kb.done)

	if kb.tty == nil {
		return nil
	}
	err := kb.tty.Restore()
	if err != nil {
		return err
	}
	return kb.tty.Close()
}
