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

package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/trifade/analysis"
	"github.com/jetsetilly/trifade/config"
	"github.com/jetsetilly/trifade/curated"
	"github.com/jetsetilly/trifade/digest"
	"github.com/jetsetilly/trifade/environment"
	"github.com/jetsetilly/trifade/hardware"
	"github.com/jetsetilly/trifade/ledterm"
	"github.com/jetsetilly/trifade/logger"
	"github.com/jetsetilly/trifade/modalflag"
	"github.com/jetsetilly/trifade/paths"
	"github.com/jetsetilly/trifade/performance"
	"github.com/jetsetilly/trifade/playmode"
	"github.com/jetsetilly/trifade/regression"
	"github.com/jetsetilly/trifade/statsview"
	"github.com/jetsetilly/trifade/trace"
	"github.com/jetsetilly/trifade/version"
	"github.com/jetsetilly/trifade/wavwriter"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdin, os.Stdout))
}

// launch the mode selected by the arguments. returns the value to be used
// with os.Exit()
func launch(args []string, in *os.File, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.AddSubMode("RUN", "display the LEDs on the terminal")
	md.AddSubMode("TRACE", "write the pad states as text or as a value change dump")
	md.AddSubMode("WAV", "write the pad states to a WAV file")
	md.AddSubMode("STATS", "summarise the behaviour of the fader")
	md.AddSubMode("DIGEST", "print a fingerprint of the fader output")
	md.AddSubMode("PERFORMANCE", "measure the speed of the emulation")
	md.AddSubMode("PRESETS", "list the configuration presets")
	md.AddSubMode("STATE", "write a graphviz visualisation of the fader state")
	md.AddSubMode("REGRESS", "run or manage the regression database")
	md.AddSubMode("VERSION", "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0
	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, in, output)
	case "TRACE":
		err = traceMode(md, output)
	case "WAV":
		err = wav(md, output)
	case "STATS":
		err = stats(md, output)
	case "DIGEST":
		err = digestMode(md, output)
	case "PERFORMANCE":
		err = perform(md, output)
	case "PRESETS":
		err = presets(md, output)
	case "STATE":
		err = state(md, output)
	case "REGRESS":
		err = regress(md, in, output)
	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md, err)
		return exitModeError
	}

	return 0
}

// configFlags are the flags common to every mode that creates a fader
type configFlags struct {
	preset   *string
	filename *string
	pwm      *int
	div      *int
	log      *bool
}

func addConfigFlags(md *modalflag.Modes) configFlags {
	return configFlags{
		preset:   md.AddString("preset", "icebreaker", fmt.Sprintf("configuration preset: %s", strings.Join(config.PresetNames(), ", "))),
		filename: md.AddString("config", "", "load configuration from YAML file (overrides -preset)"),
		pwm:      md.AddInt("pwm", -1, "override PWM width"),
		div:      md.AddInt("div", -1, "override clock divider width"),
		log:      md.AddBool("log", false, "echo log to output"),
	}
}

// resolve the configuration flags after the mode has been parsed
func (cf configFlags) resolve(output io.Writer) (config.Config, error) {
	if *cf.log {
		logger.SetEcho(output)
	} else {
		logger.SetEcho(nil)
	}

	var cfg config.Config
	var err error

	if *cf.filename != "" {
		cfg, err = config.Load(*cf.filename)
	} else {
		cfg, err = config.Preset(*cf.preset)
	}
	if err != nil {
		return cfg, err
	}

	if *cf.pwm >= 0 {
		cfg.PWMWidth = *cf.pwm
	}
	if *cf.div >= 0 {
		cfg.DividerWidth = *cf.div
	}

	return cfg, cfg.Validate()
}

// parseMode parses the flags for a mode and checks that there are no
// unexpected arguments. returns false if the mode should end without error,
// which happens when help has been requested
func parseMode(md *modalflag.Modes) (bool, error) {
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return false, err
	}
	if len(md.RemainingArgs()) > 0 {
		return false, curated.Errorf("too many arguments for %s mode", md)
	}
	return true, nil
}

// openOutput creates the named file. if the filename is empty then the
// default writer is used instead. the returned function must be called when
// writing has finished
func openOutput(filename string, def io.Writer) (io.Writer, func() error, error) {
	if filename == "" {
		return def, func() error { return nil }, nil
	}
	f, err := os.Create(filename)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

func run(md *modalflag.Modes, in *os.File, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	rate := md.AddInt("rate", 0, "ticks per second (0 = speed of reference board)")
	fps := md.AddInt("fps", playmode.DefaultFPS, "display updates per second")
	ticks := md.AddUint64("ticks", 0, "stop after number of ticks (0 = run until quit)")
	noColour := md.AddBool("nocolour", false, "do not use colour even when output is a terminal")
	sv := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	if *sv {
		statsview.Launch(output, "")
	}

	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.MainEmulation), cfg)
	if err != nil {
		return err
	}

	dsp, err := ledterm.NewDisplay(in, output)
	if err != nil {
		return err
	}
	defer dsp.CleanUp()

	if *noColour {
		dsp.SetColour(false)
	}

	return playmode.Play(fdr, dsp, playmode.Options{
		Rate:  *rate,
		FPS:   *fps,
		Ticks: *ticks,
	})
}

func traceMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	ticks := md.AddInt("ticks", 10000, "number of ticks to trace")
	format := md.AddString("format", "text", "output format: text, vcd")
	out := md.AddString("out", "", "output file (default is standard output)")
	timescale := md.AddString("timescale", "", fmt.Sprintf("VCD timescale (default %q)", trace.DefaultTimescale))
	tickLength := md.AddUint64("ticklength", 1, "number of VCD timescale units per tick (ignored without -timescale)")

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	tr, err := trace.Capture(cfg, *ticks)
	if err != nil {
		return err
	}

	w, done, err := openOutput(*out, output)
	if err != nil {
		return err
	}

	switch strings.ToLower(*format) {
	case "text":
		err = trace.WriteText(w, tr.All())
	case "vcd":
		err = tr.WriteVCD(w, trace.VCDOptions{
			Timescale:  *timescale,
			TickLength: *tickLength,
		})
	default:
		err = curated.Errorf("unknown trace format: %s", *format)
	}

	if cerr := done(); err == nil {
		err = cerr
	}
	return err
}

func wav(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	ticks := md.AddInt("ticks", 100000, "number of ticks to write")
	every := md.AddInt("every", 1, "write every nth tick")
	out := md.AddString("out", "", "output file (default is a unique name in the current directory)")

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	tr, err := trace.Capture(cfg, *ticks)
	if err != nil {
		return err
	}

	if *out == "" {
		*out = paths.UniqueFilename("trifade", *cf.preset, "wav")
	}

	aw, err := wavwriter.New(environment.NewEnvironment(environment.MainEmulation), *out, *every)
	if err != nil {
		return err
	}

	for sig := range tr.All() {
		aw.AddBank(sig.Pads)
	}

	return aw.EndMixing()
}

// the longest sequencer cycle that STATS will summarise by default
const maxSummaryTicks = 1 << 32

func stats(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	ticks := md.AddInt("ticks", 0, "number of ticks to summarise (0 = one complete cycle of the sequencer)")

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	if *ticks == 0 {
		if cfg.CyclePeriod() > maxSummaryTicks {
			return curated.Errorf("sequencer cycle of %d ticks is too long to summarise (use -ticks)", cfg.CyclePeriod())
		}
		*ticks = cfg.CyclePeriod()
	}

	tr, err := trace.Capture(cfg, *ticks)
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s\n\n", cfg)
	return analysis.Summarise(tr.All()).Write(output)
}

func digestMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	ticks := md.AddInt("ticks", 10000, "number of ticks to fingerprint")
	signals := md.AddBool("signals", false, "include internal signals in the fingerprint")

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	tr, err := trace.Capture(cfg, *ticks)
	if err != nil {
		return err
	}

	if *signals {
		fmt.Fprintln(output, digest.OfSignals(tr.All()))
	} else {
		fmt.Fprintln(output, digest.OfPads(tr.All()))
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s lead time)")
	profile := md.AddString("profile", "none", "run performance check with profiling: CPU, MEM, TRACE, ALL (comma sep)")
	sv := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	if *sv {
		statsview.Launch(output, "")
	}

	return performance.Check(output, prf, cfg, *duration)
}

func presets(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	if ok, err := parseMode(md); !ok {
		return err
	}

	w := tabwriter.NewWriter(output, 0, 4, 2, ' ', 0)
	for _, p := range config.Presets() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", p.Name, p.Config, p.Description)
	}
	return w.Flush()
}

func state(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	ticks := md.AddInt("ticks", 0, "number of ticks to run before writing the state")
	out := md.AddString("out", "", "output file (default is standard output)")

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	fdr, err := hardware.NewFader(environment.NewEnvironment(environment.MainEmulation), cfg)
	if err != nil {
		return err
	}
	fdr.StepTicks(*ticks)

	w, done, err := openOutput(*out, output)
	if err != nil {
		return err
	}

	st := fdr.Snapshot()
	memviz.Map(w, &st)

	return done()
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	if ok, err := parseMode(md); !ok {
		return err
	}

	v, rev, _ := version.Version()
	fmt.Fprintf(output, "%s %s\n", version.ApplicationName, v)
	fmt.Fprintln(output, rev)
	return nil
}

// the regression database file in the resource directory
const regressionDB = "regression.db"

// dbPath returns the database file to use. an empty string means the default
// file in the resource directory
func dbPath(db string) (string, error) {
	if db != "" {
		return db, nil
	}
	return paths.MkResourceDir(regressionDB)
}

func regress(md *modalflag.Modes, in *os.File, output io.Writer) error {
	md.NewMode()
	md.AddSubMode("RUN", "run regression tests")
	md.AddSubMode("LIST", "list regression tests")
	md.AddSubMode("DELETE", "delete a regression test")
	md.AddSubMode("ADD", "add a regression test")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch md.Mode() {
	case "RUN":
		md.NewMode()
		db := md.AddString("db", "", "regression database file (default is in the resource directory)")
		verbose := md.AddBool("verbose", false, "output more detail")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		dbf, err := dbPath(*db)
		if err != nil {
			return err
		}

		return regression.RegressRun(output, dbf, *verbose, md.RemainingArgs())

	case "LIST":
		md.NewMode()
		db := md.AddString("db", "", "regression database file (default is in the resource directory)")

		if ok, err := parseMode(md); !ok {
			return err
		}

		dbf, err := dbPath(*db)
		if err != nil {
			return err
		}

		return regression.RegressList(output, dbf)

	case "DELETE":
		md.NewMode()
		db := md.AddString("db", "", "regression database file (default is in the resource directory)")
		answerYes := md.AddBool("yes", false, "answer yes to confirmation")

		p, err := md.Parse()
		if err != nil || p != modalflag.ParseContinue {
			return err
		}

		switch len(md.RemainingArgs()) {
		case 0:
			return curated.Errorf("database key required for %s mode", md)
		case 1:
			dbf, err := dbPath(*db)
			if err != nil {
				return err
			}

			var confirm io.Reader = in
			if *answerYes || in == nil {
				confirm = strings.NewReader("y")
			}
			return regression.RegressDelete(output, confirm, dbf, md.GetArg(0))
		default:
			return curated.Errorf("only one entry can be deleted at at time")
		}

	case "ADD":
		return regressAdd(md, output)
	}

	return nil
}

func regressAdd(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	cf := addConfigFlags(md)
	db := md.AddString("db", "", "regression database file (default is in the resource directory)")
	ticks := md.AddInt("ticks", 100000, "number of ticks to run")
	mode := md.AddString("mode", "pads", "type of digest: PADS, SIGNALS")
	notes := md.AddString("notes", "", "additional annotation for the database")

	md.AdditionalHelp(
		`The PADS digest is made from the state of the output pads only. The SIGNALS digest
also includes the brightness, the sequencer and the single bit signals.`)

	if ok, err := parseMode(md); !ok {
		return err
	}

	cfg, err := cf.resolve(output)
	if err != nil {
		return err
	}

	dm, err := regression.ParseDigestMode(*mode)
	if err != nil {
		return err
	}

	reg, err := regression.NewDigestRegression(cfg, *ticks, dm, *notes)
	if err != nil {
		return err
	}

	dbf, err := dbPath(*db)
	if err != nil {
		return err
	}

	return regression.RegressAdd(output, dbf, reg)
}
