// This file is part of gslib.
//
// gslib is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// gslib is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with gslib.  If not, see <https://www.gnu.org/licenses/>.

package console

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/term"
	"github.com/ps2homebrew/gslib/curated"
	"github.com/ps2homebrew/gslib/driver"
	xterm "golang.org/x/term"
)

// Error is the pattern used for all errors returned by the package.
const Error = "console: %v"

// the terminal device opened in raw mode
const ttyDevice = "/dev/tty"

// Console steps a driver one key at a time.
type Console struct {
	drv    *driver.Driver
	output io.Writer
}

// NewConsole is the preferred method of initialisation for the Console type.
func NewConsole(drv *driver.Driver, output io.Writer) *Console {
	return &Console{
		drv:    drv,
		output: output,
	}
}

// lines are terminated with carriage return and newline so that the output
// is correct when the terminal is in raw mode
func (con *Console) printf(format string, args ...interface{}) {
	fmt.Fprintf(con.output, format+"\r\n", args...)
}

func (con *Console) help() {
	con.printf("s: swap  c: complete  d: display  w: draw  r: reset textures  q: quit")
}

func (con *Console) state() {
	con.printf("%v (vram available %#x)", con.drv.State(), con.drv.VRAMAvailable())
}

// Key performs the operation for a single key. Returns false if the key ends
// the session. Unrecognised keys are ignored.
func (con *Console) Key(k byte) bool {
	switch k {
	case 's', 'S':
		con.drv.Swap()
	case 'c', 'C':
		con.drv.DrawBufferComplete()
	case 'd', 'D':
		con.drv.DisplayNextFrame()
	case 'w', 'W':
		con.drv.SetNextDrawBuffer()
	case 'r', 'R':
		con.drv.ResetTextures()
	case '?', 'h':
		con.help()
		return true
	case 'q', 'Q', keyInterrupt, keyEOT, keyEsc:
		return false
	default:
		return true
	}
	con.state()
	return true
}

// Step reads keys from input until the session is ended or the input is
// exhausted.
func (con *Console) Step(input io.Reader) error {
	con.help()
	con.state()

	b := make([]byte, 1)
	for {
		n, err := input.Read(b)
		if n > 0 && !con.Key(b[0]) {
			return nil
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return curated.Errorf(Error, err)
		}
	}
}

// Interactive returns true if the standard input is a terminal.
func Interactive() bool {
	return xterm.IsTerminal(int(os.Stdin.Fd()))
}

// Run steps the driver from the keyboard. If standard input is not a terminal
// then keys are read from standard input without changing any terminal
// settings.
func (con *Console) Run() error {
	if !Interactive() {
		return con.Step(os.Stdin)
	}

	tty, err := term.Open(ttyDevice, term.RawMode)
	if err != nil {
		return curated.Errorf(Error, err)
	}
	defer func() {
		_ = tty.Restore()
		_ = tty.Close()
	}()

	return con.Step(tty)
}
