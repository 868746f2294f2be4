// Command paintreplay paints a YAML scenario frame by frame through a
// paint.Controller and prints what every commit produced: the display
// list, the paint chunks with their raster invalidations, the damaged
// tiles and the cache statistics.
//
// Usage:
//
//	paintreplay -scenario swap.yaml [-config paint.toml] [-check] [-trace] [-v]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/text/language"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/damage"
	"github.com/gogpu/paint/recording"
	_ "github.com/gogpu/paint/recording/backends/trace"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, "paintreplay:", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("paintreplay", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		scenarioPath = fs.String("scenario", "", "YAML scenario file")
		configPath   = fs.String("config", "", "TOML controller config file")
		check        = fs.Bool("check", false, "enable under-invalidation checking")
		trace        = fs.Bool("trace", false, "replay the last commit into the trace backend")
		tileSize     = fs.Int("tiles", damage.DefaultTileSize, "damage tile size in pixels")
		lang         = fs.String("lang", "en", "language for number formatting")
		verbose      = fs.Bool("v", false, "log controller activity to stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *scenarioPath == "" {
		fs.Usage()
		return errors.New("-scenario is required")
	}
	tag, err := language.Parse(*lang)
	if err != nil {
		return fmt.Errorf("-lang: %w", err)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	opts := []paint.Option{paint.WithConfig(cfg)}
	if *check {
		opts = append(opts, paint.WithUnderInvalidationChecking(true))
	}
	if *verbose {
		opts = append(opts, paint.WithLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))))
	}

	f, err := os.Open(*scenarioPath)
	if err != nil {
		return err
	}
	s, err := ParseScenario(f)
	f.Close()
	if err != nil {
		return err
	}

	c := paint.NewController(opts...)
	p := newPlayer(c, s)
	rep := newReporter(stdout, tag)
	region := damage.NewRegion(s.Viewport.Width, s.Viewport.Height, *tileSize)
	for i := range s.Frames {
		fr := &s.Frames[i]
		if fr.Name == "" {
			fr.Name = fmt.Sprint(i)
		}
		if err := p.play(fr); err != nil {
			return fmt.Errorf("frame %s: %w", fr.Name, err)
		}
		if region != nil {
			c.Damage(region)
		}
		rep.frame(fr.Name, c, region)
	}

	if *trace {
		b, err := recording.NewBackend("trace")
		if err != nil {
			return err
		}
		if err := c.Replay(b); err != nil {
			return err
		}
		if wb, ok := b.(recording.WriterBackend); ok {
			if _, err := wb.WriteTo(stdout); err != nil {
				return err
			}
		}
	}
	return nil
}

// loadConfig reads controller options from a TOML file. An empty path
// gives the defaults.
func loadConfig(path string) (paint.Config, error) {
	cfg := paint.DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config: unknown key %q", undecoded[0].String())
	}
	return cfg, nil
}
