package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/sirupsen/logrus"

	"tilt/pkg/engine/input"
	"tilt/pkg/engine/terminal"
	"tilt/pkg/engine/world"
	"tilt/pkg/game/config"
	"tilt/pkg/game/devtools"
	"tilt/pkg/game/export"
	"tilt/pkg/game/renderer"
	"tilt/pkg/game/renderer/tui"
	"tilt/pkg/game/state"
)

// Output formats
const (
	FormatMap    = "map"
	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSchema = "schema"
	FormatDump   = "dump"
)

var errUsage = errors.New("usage")

type options struct {
	preset      string
	configPath  string
	format      string
	dumpPath    string
	width       int
	height      int
	seed        int64
	seedSet     bool
	interactive bool
	plain       bool
	verbose     bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	o := &options{}

	fs := flag.NewFlagSet("tilt", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.preset, "preset", "", "grid size preset (see -config)")
	fs.StringVar(&o.configPath, "config", "", "YAML file with grid size presets")
	fs.StringVar(&o.format, "format", FormatMap, "output format: map, json, yaml, schema or dump")
	fs.StringVar(&o.dumpPath, "dump", "", "also write a debug dump of the first corridor to this file")
	fs.IntVar(&o.width, "width", 0, "grid width, overrides the preset")
	fs.IntVar(&o.height, "height", 0, "grid height, overrides the preset")
	fs.Int64Var(&o.seed, "seed", 0, "seed for the first corridor (default: from the clock)")
	fs.BoolVar(&o.interactive, "interactive", false, "preview corridors and regenerate them on demand")
	fs.BoolVar(&o.plain, "plain", false, "disable colors and screen clearing")
	fs.BoolVar(&o.verbose, "verbose", false, "log every segment placement")

	if err := fs.Parse(args); err != nil {
		return nil, errUsage
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			o.seedSet = true
		}
	})

	switch o.format {
	case FormatMap, FormatJSON, FormatYAML, FormatSchema, FormatDump:
	default:
		fmt.Fprintf(stderr, "unknown format %q\n", o.format)
		return nil, errUsage
	}
	if o.interactive && o.format != FormatMap {
		fmt.Fprintln(stderr, "-interactive only supports the map format")
		return nil, errUsage
	}
	return o, nil
}

func newLogger(stderr io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// resolveSize picks the preset, then lets -width and -height override it
func resolveSize(cfg *config.Config, o *options) (world.GridSize, error) {
	p, err := cfg.Lookup(o.preset)
	if err != nil {
		return world.GridSize{}, err
	}
	size := p.Size()
	if o.width != 0 {
		size.Width = o.width
	}
	if o.height != 0 {
		size.Height = o.height
	}
	return size, size.Validate()
}

// logMessage adds a formatted message to the session's message log
func logMessage(s *state.Session, msg string, a ...any) {
	s.AddMessage(renderer.FormatText(msg, a...))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return 2
	}

	log := newLogger(stderr, o.verbose)

	if o.format == FormatSchema {
		if err := export.WriteSchema(stdout); err != nil {
			log.WithError(err).Error("writing schema")
			return 1
		}
		return 0
	}

	cfg, err := loadConfig(o.configPath)
	if err != nil {
		log.WithError(err).Error("loading presets")
		return 1
	}
	size, err := resolveSize(cfg, o)
	if err != nil {
		log.WithError(err).Error("choosing grid size")
		return 2
	}

	renderer.InitLocale()
	t := tui.New(stdout, o.plain || !terminal.IsColorTerminal())
	renderer.SetRenderer(t)
	renderer.Init()

	s := state.NewSession(size, state.TimeSeed, log)
	seed := state.TimeSeed()
	if o.seedSet {
		seed = o.seed
	}
	if err := s.Generate(seed); err != nil {
		log.WithError(err).Error("generating corridor")
		return 1
	}

	if o.dumpPath != "" {
		path, err := devtools.DumpToFile(s, o.dumpPath)
		if err != nil {
			log.WithError(err).Error("writing debug dump")
			return 1
		}
		log.WithField("path", path).Info("debug dump written")
	}

	if o.interactive {
		logMessage(s, "GT{GENERATED} (GT{SEED} %d)", s.Seed)
		in := input.NewLineReader(stdin)
		for mainLoop(s, cfg, in, log) {
		}
		renderer.ShowMessage(gotext.Get("GOODBYE"))
		return 0
	}

	if err := writeOutput(stdout, s, t, o.format, log); err != nil {
		log.WithError(err).Error("writing output")
		return 1
	}
	return 0
}

func writeOutput(w io.Writer, s *state.Session, t *tui.TUIRenderer, format string, log logrus.FieldLogger) error {
	switch format {
	case FormatJSON:
		return export.WriteJSON(w, export.NewDocument(s.Field, s.Seed))
	case FormatYAML:
		return export.WriteYAML(w, export.NewDocument(s.Field, s.Seed))
	case FormatDump:
		return devtools.WriteDump(w, s)
	default:
		if !t.Fits(s.Size) {
			log.WithField("size", s.Size.String()).Warn(gotext.Get("TOO_WIDE"))
		}
		_, err := fmt.Fprint(w, t.RenderMap(s.Field.Project()))
		return err
	}
}

// mainLoop renders one frame and handles one command. It returns false once
// the user quits or input ends.
func mainLoop(s *state.Session, cfg *config.Config, in *input.LineReader, log logrus.FieldLogger) bool {
	renderer.Clear()
	renderer.RenderFrame(s)

	intent, err := in.ReadIntent()
	if err != nil {
		return false
	}
	return processInput(s, cfg, intent, log)
}

func processInput(s *state.Session, cfg *config.Config, intent input.Intent, log logrus.FieldLogger) bool {
	switch intent.Action {
	case input.ActionNone:
	case input.ActionQuit:
		return false
	case input.ActionRegenerate:
		if err := s.Regenerate(); err != nil {
			log.WithError(err).Error("regenerating corridor")
			s.AddMessage(renderer.StyleText(err.Error(), renderer.StyleDenied))
			return true
		}
		logMessage(s, "GT{GENERATED} (GT{SEED} %d)", s.Seed)
	case input.ActionResize:
		if intent.Arg == "" {
			s.AddMessage(renderer.FormatText("DENIED{SIZE_USAGE}") + ": size " + strings.Join(cfg.Names(), "|"))
			return true
		}
		p, err := cfg.Lookup(intent.Arg)
		if err != nil {
			s.AddMessage(renderer.FormatText("DENIED{UNKNOWN_PRESET}") + ": " + intent.Arg)
			return true
		}
		if err := s.Resize(p.Size()); err != nil {
			log.WithError(err).Error("resizing grid")
			s.AddMessage(renderer.StyleText(err.Error(), renderer.StyleDenied))
			return true
		}
		label := p.Name
		if p.Label != "" {
			label = renderer.FormatText("GT{%s}", p.Label)
		}
		logMessage(s, "%s (GT{SEED} %d)", label, s.Seed)
	case input.ActionDump:
		path, err := devtools.DumpToFile(s, intent.Arg)
		if err != nil {
			log.WithError(err).Error("writing debug dump")
			s.AddMessage(renderer.StyleText(err.Error(), renderer.StyleDenied))
			return true
		}
		s.AddMessage(renderer.FormatText("GT{DUMP_WRITTEN}") + ": " + path)
	case input.ActionHelp:
		logMessage(s, "ACTION{regenerate}  ACTION{size} %s  ACTION{dump} FILE  ACTION{quit}", strings.Join(cfg.Names(), "|"))
	default:
		s.AddMessage(renderer.FormatText("DENIED{UNKNOWN_COMMAND}") + ": " + intent.Arg)
	}
	return true
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
