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

//go:build statsview

package statsview

import (
	"fmt"
	"io"

	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"

	"github.com/ps2homebrew/gslib/logger"
)

// Address of the statistics server.
const Address = "localhost:12600"

const path = "/debug/statsview"

// charts are redrawn at this interval, in milliseconds. a sample every second
// is enough to see growth over a long run of frame swaps
const interval = 1000

// Launch starts the statistics server in the background and writes its URL
// to output. The returned function shuts the server down.
func Launch(output io.Writer) func() {
	viewer.SetConfiguration(viewer.WithAddr(Address), viewer.WithInterval(interval))
	mgr := statsview.New()
	go mgr.Start()

	logger.Logf(logger.Allow, "statsview", "listening on %s", Address)
	fmt.Fprintf(output, "runtime statistics at http://%s%s\n", Address, path)

	return func() {
		mgr.Stop()
		logger.Logf(logger.Allow, "statsview", "stopped")
	}
}

// Available returns true in builds with the statsview tag.
func Available() bool {
	return true
}
