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
	"context"
	"fmt"
	"image/color"
	"image/png"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/bradleyjkemp/memviz"

	"github.com/ps2homebrew/gslib/console"
	"github.com/ps2homebrew/gslib/display"
	"github.com/ps2homebrew/gslib/display/sdldisplay"
	"github.com/ps2homebrew/gslib/driver"
	"github.com/ps2homebrew/gslib/logger"
	"github.com/ps2homebrew/gslib/modalflag"
	"github.com/ps2homebrew/gslib/modes"
	"github.com/ps2homebrew/gslib/paths"
	"github.com/ps2homebrew/gslib/performance"
	"github.com/ps2homebrew/gslib/prefs"
	"github.com/ps2homebrew/gslib/psm"
	"github.com/ps2homebrew/gslib/ring"
	"github.com/ps2homebrew/gslib/script"
	"github.com/ps2homebrew/gslib/statsview"
	"github.com/ps2homebrew/gslib/vsync"
)

// display mode flags shared by all modes that create a driver. a zero value
// means that the value from the preferences file is used
type configFlags struct {
	width     *int
	height    *int
	buffers   *int
	psm       *string
	zbuffer   *string
	zpsm      *string
	mode      *string
	interlace *string

	prefs *string
	save  *bool
	log   *bool
}

func addConfigFlags(md *modalflag.Modes) *configFlags {
	return &configFlags{
		width:     md.AddInt("width", 0, "frame buffer width"),
		height:    md.AddInt("height", 0, "frame buffer height"),
		buffers:   md.AddInt("buffers", 0, "number of frame buffers"),
		psm:       md.AddString("psm", "", "frame buffer pixel storage mode"),
		zbuffer:   md.AddString("zbuffer", "", "enable depth buffer: true, false"),
		zpsm:      md.AddString("zpsm", "", "depth buffer pixel storage mode"),
		mode:      md.AddString("mode", "", "video mode: NTSC, PAL, VGA640_60, etc."),
		interlace: md.AddString("interlace", "", "interlace: NONINTERLACE, FRAME, FIELD"),
		prefs:     md.AddString("prefs", "", "preferences for this run only (eg. driver.buffers::3)"),
		save:      md.AddBool("save", false, "save display mode as the default"),
		log:       md.AddBool("log", false, "echo debugging log to stdout"),
	}
}

// config returns the display mode from the preferences file, modified by the
// command line. should be called after md.Parse()
func (cf *configFlags) config() (driver.Config, error) {
	if *cf.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *cf.prefs != "" {
		prefs.PushCommandLineStack(*cf.prefs)
		defer prefs.PopCommandLineStack()
	}

	p, err := driver.NewPreferences()
	if err != nil {
		return driver.Config{}, err
	}

	cfg, err := p.Config()
	if err != nil {
		return driver.Config{}, err
	}

	if *cf.width > 0 {
		cfg.Width = *cf.width
	}
	if *cf.height > 0 {
		cfg.Height = *cf.height
	}
	if *cf.buffers > 0 {
		cfg.Buffers = *cf.buffers
	}
	if *cf.psm != "" {
		cfg.PSM, err = psm.Parse(*cf.psm)
		if err != nil {
			return driver.Config{}, err
		}
	}
	if *cf.zbuffer != "" {
		cfg.ZBuffer, err = strconv.ParseBool(*cf.zbuffer)
		if err != nil {
			return driver.Config{}, fmt.Errorf("zbuffer flag should be true or false (%s)", *cf.zbuffer)
		}
	}
	if *cf.zpsm != "" {
		cfg.ZPSM, err = psm.Parse(*cf.zpsm)
		if err != nil {
			return driver.Config{}, err
		}
	}
	if *cf.mode != "" {
		cfg.Mode, err = modes.ParseMode(*cf.mode)
		if err != nil {
			return driver.Config{}, err
		}
	}
	if *cf.interlace != "" {
		cfg.Interlace, err = modes.ParseInterlace(*cf.interlace)
		if err != nil {
			return driver.Config{}, err
		}
	}

	if *cf.save {
		err = p.SetConfig(cfg)
		if err != nil {
			return driver.Config{}, err
		}
		err = p.Save()
		if err != nil {
			return driver.Config{}, err
		}
	}

	return cfg, nil
}

// newDriver creates a driver for the display device using the display mode
// from the flags
func (cf *configFlags) newDriver(disp ring.Display) (*driver.Driver, error) {
	cfg, err := cf.config()
	if err != nil {
		return nil, err
	}

	drv, err := driver.NewDriver(disp)
	if err != nil {
		return nil, err
	}

	err = drv.SetDisplayMode(cfg)
	if err != nil {
		return nil, err
	}

	return drv, nil
}

func layoutMode(md *modalflag.Modes) error {
	md.NewMode()

	cf := addConfigFlags(md)
	viz := md.AddBool("memviz", false, "write graphviz description of the layout")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	drv, err := cf.newDriver(nil)
	if err != nil {
		return err
	}

	lay := drv.Layout()
	fmt.Fprintln(md.Output, lay)
	fmt.Fprintf(md.Output, "  texture: %#x bytes available\n", drv.VRAMAvailable())
	fmt.Fprintln(md.Output, drv.Timing())

	if *viz {
		fn := paths.UniqueFilename("layout", "", "dot")
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		memviz.Map(f, &lay)
		err = f.Close()
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "layout written to %s\n", fn)
	}

	return nil
}

func allocMode(md *modalflag.Modes) error {
	md.NewMode()

	cf := addConfigFlags(md)

	md.AdditionalHelp(
		`Textures are specified as WxH:PSM. For example:

	64x64:PSMCT32 256x256:PSMT8`)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) == 0 {
		return fmt.Errorf("at least one texture required for %s mode", md)
	}

	drv, err := cf.newDriver(nil)
	if err != nil {
		return err
	}

	for _, arg := range md.RemainingArgs() {
		w, h, f, err := parseTexture(arg)
		if err != nil {
			return err
		}

		format, err := psm.Parse(f)
		if err != nil {
			return err
		}

		_, err = drv.Allocate(w, h, format)
		if err != nil {
			return err
		}
	}

	for _, a := range drv.Allocations() {
		fmt.Fprintln(md.Output, a)
	}
	fmt.Fprintf(md.Output, "%#x bytes available\n", drv.VRAMAvailable())

	return nil
}

func runMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addConfigFlags(md)
	window := md.AddBool("window", false, "show displayed frame buffer in a window")
	scale := md.AddInt("scale", 2, "window scaling")
	frames := md.AddInt("frames", 0, "number of frames to run for (0 runs until interrupted)")
	thumbnail := md.AddFloat64("thumbnail", 0.0, "save a scaled image of the last frame")
	profile := md.AddString("profile", "NONE", "write runtime profiles: NONE, CPU, MEM, BOTH")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	var prf performance.Profile
	switch strings.ToUpper(*profile) {
	case "NONE":
		prf = performance.ProfileNone
	case "CPU":
		prf = performance.ProfileCPU
	case "MEM":
		prf = performance.ProfileMem
	case "BOTH":
		prf = performance.ProfileCPU | performance.ProfileMem
	default:
		return fmt.Errorf("unknown profile type (%s)", *profile)
	}

	if stats != nil && *stats {
		stop := statsview.Launch(md.Output)
		defer stop()
	}

	mem := display.NewMemory()
	drv, err := cf.newDriver(mem)
	if err != nil {
		return err
	}

	err = performance.Run(paths.UniqueFilename("run", "", ""), prf, func() error {
		return rotate(md, sync, drv, mem, *window, *scale, *frames)
	})
	if err != nil {
		return err
	}

	if *thumbnail > 0.0 {
		img, err := mem.Thumbnail(*thumbnail)
		if err != nil {
			return err
		}

		fn := paths.UniqueFilename("frame", "", "png")
		f, err := os.Create(fn)
		if err != nil {
			return err
		}
		defer f.Close()

		err = png.Encode(f, img)
		if err != nil {
			return err
		}
		fmt.Fprintf(md.Output, "thumbnail written to %s\n", fn)
	}

	return nil
}

// rotate the frame buffers on every vsync, drawing a test card into each new
// draw buffer. returns after the requested number of frames or when the window
// has been closed
func rotate(md *modalflag.Modes, sync *mainSync, drv *driver.Driver, mem *display.Memory, window bool, scale int, frames int) error {
	ticker := vsync.NewTicker(drv.Timing().RefreshRate)
	defer ticker.Stop()

	done := make(chan bool, 1)

	// the test card is drawn before the swap in each vsync
	frame := 0
	renderID := ticker.Subscribe(func() {
		if img := mem.DrawImage(); img != nil {
			display.TestCard(img, frame)
		} else {
			mem.Fill(color.Gray{Y: uint8(frame)})
		}
		frame++
		if frames > 0 && frame >= frames {
			select {
			case done <- true:
			default:
			}
		}
	})
	swapID := drv.SwapOnVSync(ticker)

	if window {
		sync.creator <- func() (WindowCreator, error) {
			return sdldisplay.NewWindow(mem, fmt.Sprintf("gslib: %v", drv.Config()), scale)
		}

		select {
		case <-sync.creation:
		case err := <-sync.creationError:
			return err
		}
	}

	select {
	case <-done:
	case <-sync.windowClosed:
	}

	drv.DetachVSync(ticker, swapID)
	ticker.Unsubscribe(renderID)

	fmt.Fprintf(md.Output, "%d frames\n", ticker.Count())
	fmt.Fprintln(md.Output, drv.State())

	return nil
}

func scriptMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addConfigFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return fmt.Errorf("lua script required for %s mode", md)
	case 1:
		drv, err := cf.newDriver(display.NewMemory())
		if err != nil {
			return err
		}

		// the script is stopped with ctrl-c rather than the program
		sync.state <- stateRequest{req: reqNoIntSig}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		return script.RunFile(ctx, drv, md.GetArg(0), md.Output)
	default:
		return fmt.Errorf("too many arguments for %s mode", md)
	}
}

func stepMode(md *modalflag.Modes, sync *mainSync) error {
	md.NewMode()

	cf := addConfigFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("no additional arguments required for %s mode", md)
	}

	drv, err := cf.newDriver(nil)
	if err != nil {
		return err
	}

	// turn off fallback ctrl-c handling. the console handles ctrl-c itself
	sync.state <- stateRequest{req: reqNoIntSig}

	return console.NewConsole(drv, md.Output).Run()
}

func modesMode(md *modalflag.Modes) error {
	md.NewMode()

	width := md.AddInt("width", 640, "display width")
	height := md.AddInt("height", 448, "display height")
	interlace := md.AddString("interlace", "NONINTERLACE", "interlace: NONINTERLACE, FRAME, FIELD")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	il, err := modes.ParseInterlace(*interlace)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(md.Output, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MODE\tRATE\tDX\tDY\tMAGH\tMAGV\tDW\tDH\tDISPLAY1")
	for _, n := range modes.ModeList {
		m, err := modes.ParseMode(n)
		if err != nil {
			return err
		}

		tm, err := modes.Lookup(m, il, *width, *height)
		if err != nil {
			fmt.Fprintf(w, "%v\t%.2f\t%v\n", m, m.RefreshRate(), err)
			continue
		}

		fmt.Fprintf(w, "%v\t%.2f\t%d\t%d\t%d\t%d\t%d\t%d\t%#016x\n", m, tm.RefreshRate,
			tm.DX, tm.DY, tm.MAGH, tm.MAGV, tm.DW, tm.DH, tm.Display1())
	}

	return w.Flush()
}
