// This file is part of Trifade.
//
// Trifade is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Trifade is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Trifade.  If not, see <https://www.gnu.org/licenses/>.

package ledterm

import (
	"fmt"
	"io"
	"os"

	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/ledterm/ansi"
	"github.com/jetsetilly/trifade/logger"
	"golang.org/x/term"
)

// Display draws frames to a terminal and reads key presses.
type Display struct {
	in     *os.File
	out    io.Writer
	colour bool

	// non-nil if the input terminal was put into raw mode
	restore *term.State

	keys chan byte
}

// NewDisplay is the preferred method of initialisation for the Display type.
// Colour is used if the output is a terminal. If the input is a terminal it
// is put into raw mode and key presses are sent to the channel returned by
// Keys(). CleanUp() must be called before the program exits.
//
// The input argument can be nil in which case no key presses are read.
func NewDisplay(in *os.File, out io.Writer) (*Display, error) {
	dsp := &Display{
		in:  in,
		out: out,
	}

	if f, ok := out.(*os.File); ok {
		dsp.colour = term.IsTerminal(int(f.Fd()))
	}

	if in != nil && term.IsTerminal(int(in.Fd())) {
		var err error
		dsp.restore, err = term.MakeRaw(int(in.Fd()))
		if err != nil {
			return nil, curated.Errorf("ledterm: %v", err)
		}

		dsp.keys = make(chan byte, 16)
		go dsp.readKeys()

		logger.Log(logger.Allow, "ledterm", "terminal in raw mode")
	}

	if dsp.colour {
		fmt.Fprint(dsp.out, ansi.CursorHide)
	}

	return dsp, nil
}

// SetColour forces the use of colour on or off.
func (dsp *Display) SetColour(colour bool) {
	dsp.colour = colour
}

func (dsp *Display) readKeys() {
	b := make([]byte, 1)
	for {
		n, err := dsp.in.Read(b)
		if err != nil {
			close(dsp.keys)
			return
		}
		if n > 0 {
			dsp.keys <- b[0]
		}
	}
}

// Keys returns the channel on which key presses are sent. The channel is nil
// if the input is not a terminal.
func (dsp *Display) Keys() <-chan byte {
	return dsp.keys
}

// Draw the frame and a status string, replacing whatever was previously drawn
// on the line.
func (dsp *Display) Draw(fr Frame, status string) error {
	var err error
	if dsp.colour {
		_, err = fmt.Fprintf(dsp.out, "\r%s[%s] %s", ansi.ClearLine, fr.Render(true), status)
	} else {
		_, err = fmt.Fprintf(dsp.out, "\r[%s] %s", fr.Render(false), status)
	}
	if err != nil {
		return curated.Errorf("ledterm: %v", err)
	}
	return nil
}

// CleanUp restores the terminal to the state it was in before NewDisplay()
// was called.
func (dsp *Display) CleanUp() {
	if dsp.colour {
		fmt.Fprint(dsp.out, ansi.CursorShow)
	}
	fmt.Fprint(dsp.out, "\r\n")

	if dsp.restore != nil {
		err := term.Restore(int(dsp.in.Fd()), dsp.restore)
		if err != nil {
			logger.Log(logger.Allow, "ledterm", err)
		}
		dsp.restore = nil
	}
}
