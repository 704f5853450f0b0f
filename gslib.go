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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/modalflag"
	"github.com/ps2homebrew/gslib/version"
)

type stateReq = string

const (
	// main thread should end as soon as possible.
	//
	// takes optional int argument, indicating the status code.
	reqQuit stateReq = "QUIT"

	// reset interrupt signal handling. used when an alternative handler is
	// more appropriate. for example, the console puts the terminal into raw
	// mode and handles ctrl-c itself.
	//
	// takes no arguments.
	reqNoIntSig stateReq = "NOINTSIG"
)

type stateRequest struct {
	req  stateReq
	args interface{}
}

// WindowCreator is implemented by windows that must be serviced on the main
// thread.
type WindowCreator interface {
	// cleanup resources used by the window
	Destroy()

	// Service() should not pause or loop longer than necessary. It MUST ONLY
	// be called as part of a larger loop from the main thread. Returns false
	// if the window has been closed by the user.
	Service() (bool, error)
}

type mainSync struct {
	state   chan stateRequest
	creator chan func() (WindowCreator, error)

	// the result of creator will be returned on either of these two channels.
	creation      chan WindowCreator
	creationError chan error

	// closed when the window has been closed by the user or when the main
	// thread is ending
	windowClosed chan bool
}

func main() {
	sync := &mainSync{
		state:         make(chan stateRequest),
		creator:       make(chan func() (WindowCreator, error)),
		creation:      make(chan WindowCreator),
		creationError: make(chan error),
		windowClosed:  make(chan bool),
	}

	// the value to use with os.Exit(). can be changed with reqQuit
	// stateRequest
	exitVal := 0

	// default ctrl-c handler. can be turned off with reqNoIntSig request
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	// launch program as a go routine. further communication is through the
	// mainSync instance
	go launch(sync)

	var win WindowCreator

	closeWindow := func() {
		if win != nil {
			win.Destroy()
			win = nil
			close(sync.windowClosed)
		}
	}

	done := false
	for !done {
		select {
		case <-intChan:
			fmt.Println("\r")
			done = true

		case creator := <-sync.creator:
			var err error

			// only one window is supported
			closeWindow()

			win, err = creator()
			if err != nil {
				sync.creationError <- err
				win = nil
			} else {
				sync.creation <- win
			}

		case state := <-sync.state:
			switch state.req {
			case reqQuit:
				done = true
				if state.args != nil {
					if v, ok := state.args.(int); ok {
						exitVal = v
					} else {
						panic(fmt.Sprintf("cannot convert %s arguments into int", reqQuit))
					}
				}

			case reqNoIntSig:
				signal.Reset(os.Interrupt)
				if state.args != nil {
					panic(fmt.Sprintf("%s does not accept any arguments", reqNoIntSig))
				}
			}

		default:
			if win != nil {
				ok, err := win.Service()
				if err != nil {
					logger.Log(logger.Allow, "gslib", err)
				}
				if !ok || err != nil {
					closeWindow()
				}
			}
		}
	}

	if win != nil {
		win.Destroy()
	}

	fmt.Print("\r")
	os.Exit(exitVal)
}

func launch(sync *mainSync) {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("LAYOUT", "ALLOC", "RUN", "SCRIPT", "STEP", "MODES", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		sync.state <- stateRequest{req: reqQuit}
		return

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		sync.state <- stateRequest{req: reqQuit, args: 10}
		return
	}

	switch md.Mode() {
	case "LAYOUT":
		err = layoutMode(md)

	case "ALLOC":
		err = allocMode(md)

	case "RUN":
		err = runMode(md, sync)

	case "SCRIPT":
		err = scriptMode(md, sync)

	case "STEP":
		err = stepMode(md, sync)

	case "MODES":
		err = modesMode(md)

	case "VERSION":
		fmt.Fprintln(md.Output, version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		sync.state <- stateRequest{req: reqQuit, args: 20}
		return
	}

	sync.state <- stateRequest{req: reqQuit}
}

// parse a texture argument of the form WxH:PSM
func parseTexture(s string) (int, int, string, error) {
	dims, format, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, "", fmt.Errorf("texture should be of the form WxH:PSM (%s)", s)
	}

	ws, hs, ok := strings.Cut(strings.ToLower(dims), "x")
	if !ok {
		return 0, 0, "", fmt.Errorf("texture should be of the form WxH:PSM (%s)", s)
	}

	w, err := strconv.Atoi(ws)
	if err != nil {
		return 0, 0, "", fmt.Errorf("texture width is not a number (%s)", ws)
	}
	h, err := strconv.Atoi(hs)
	if err != nil {
		return 0, 0, "", fmt.Errorf("texture height is not a number (%s)", hs)
	}

	return w, h, format, nil
}
