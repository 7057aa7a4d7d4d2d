package cmd

import (
	"flag"
	"fmt"

	"github.com/uiticker/animengine/cmd/tickerctl/internal/config"
	"github.com/uiticker/animengine/pkg/animation"
	"github.com/uiticker/animengine/pkg/ticker"
)

func init() {
	RegisterCommand(&Command{
		Name:  "run",
		Short: "Print successive ticker frames for a line of text",
		Long: `Drive the character or smooth ticker over a fixed number of ticks
and print the visible window each tick, simulating one tick per line
of output.

Flags override any value set in the ticker.yaml of the nearest enclosing
directory that holds a go.mod.`,
		Usage: "tickerctl run --text STRING [flags]",
		Run:   runRun,
	})
}

func runRun(args []string) error {
	fs := flag.NewFlagSet("run", flag.ContinueOnError)
	text := fs.String("text", "", "the label to scroll (required)")
	fieldLen := fs.Int("field-len", 0, "visible field width in characters (default from ticker.yaml, else 24)")
	tickerType := fs.String("type", "", "bounce or loop (default from ticker.yaml, else bounce)")
	smooth := fs.Bool("smooth", false, "use the pixel-accurate smooth ticker with a fixed glyph width")
	ticks := fs.Int("ticks", 20, "number of ticks to print")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *text == "" {
		return fmt.Errorf("--text is required")
	}

	root, err := config.FindProjectRoot()
	if err != nil {
		root = "."
	}
	cfg, err := config.Resolve(root)
	if err != nil {
		return err
	}

	if *fieldLen > 0 {
		cfg.FieldLen = *fieldLen
	}
	if *tickerType != "" {
		cfg.Type = *tickerType
	}
	if *smooth {
		cfg.Smooth = true
	}

	tt := ticker.Bounce
	if cfg.Type == "loop" {
		tt = ticker.Loop
	}

	engine := animation.NewEngine()
	engine.SetTickerActive(true)

	for i := 0; i < *ticks; i++ {
		engine.Update(uint64(i)*animation.TickerSpeed, false, 1.0, 0, 0)

		if cfg.Smooth {
			res, _ := ticker.SmoothTicker(engine, ticker.SmoothRequest{
				Source:     *text,
				Spacer:     cfg.Spacer,
				FieldWidth: cfg.FieldLen,
				Selected:   true,
				Type:       tt,
				Idx:        engine.Idx(),
				GlyphWidth: 1,
			})
			fmt.Printf("%3d  %-*s\n", i, cfg.FieldLen, res.Text)
			continue
		}

		out, _ := ticker.CharTicker(engine, ticker.Request{
			Source:   *text,
			Spacer:   cfg.Spacer,
			FieldLen: cfg.FieldLen,
			Selected: true,
			Type:     tt,
			Idx:      engine.Idx(),
		})
		fmt.Printf("%3d  %-*s\n", i, cfg.FieldLen, out)
	}

	return nil
}
