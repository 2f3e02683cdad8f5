// Command scribefmt pretty-prints a JSON value read from stdin through the
// scribe document algebra, as a worked example of a renderer client built
// on top of the core engine.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/inkwell-go/scribe"
	"github.com/inkwell-go/scribe/ansi"
	"github.com/inkwell-go/scribe/internal/format"
	"github.com/inkwell-go/scribe/internal/version"
)

func main() {
	if err := run(os.Args, os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func run(args []string, r io.Reader, w io.Writer, wErr io.Writer) error {
	logger := slog.New(slog.NewTextHandler(wErr, nil))

	flags := flag.NewFlagSet(args[0], flag.ExitOnError)
	flags.SetOutput(wErr)
	width := flags.Int("width", 80, "page width in columns")
	mode := flags.String("mode", "default", "layout mode to use: 'default', 'simple' or 'smart'")
	color := flags.String("color", "auto", "colorize annotated tokens: 'auto', 'always' or 'never'")
	cpuProfile := flags.String("cpuprofile", "", "write cpu profile to `file`")
	memProfile := flags.String("memprofile", "", "write memory profile to `file`")
	write := flags.Bool("write", false, "format file arguments in place instead of writing to stdout")
	showVersion := flags.Bool("version", false, "print scribefmt's version and exit")

	if err := flags.Parse(args[1:]); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintln(w, version.Version())
		return nil
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			return fmt.Errorf("could not create CPU profile: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return fmt.Errorf("could not start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	layoutMode, err := parseLayoutMode(*mode)
	if err != nil {
		return fmt.Errorf("failed to convert -mode=%q: %v", *mode, err)
	}
	logger.Info("starting scribefmt", "width", *width, "mode", layoutMode, "color", *color, "write", *write)

	opts := scribe.DefaultLayoutOptions()
	opts.LayoutMode = layoutMode
	opts.PageWidth = &scribe.PageWidth{Width: *width, RibbonRatio: 1.0}

	paths := flags.Args()
	if *write {
		if len(paths) == 0 {
			return fmt.Errorf("-write requires at least one file or directory argument")
		}
		for _, path := range paths {
			fi, err := os.Stat(path)
			if err != nil {
				return err
			}
			if fi.IsDir() {
				err = format.Dir(path, decodeJSON, opts)
			} else {
				err = format.File(path, decodeJSON, opts)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}

	if len(paths) > 0 {
		f, err := os.Open(paths[0])
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	doc, err := decodeJSON(r)
	if err != nil {
		return fmt.Errorf("failed to decode JSON: %v", err)
	}

	out := ansi.NewRenderer(w)
	if err := setForce(out, *color, w); err != nil {
		return fmt.Errorf("failed to convert -color=%q: %v", *color, err)
	}

	if err := scribe.Render(context.Background(), doc, out, opts); err != nil {
		return fmt.Errorf("failed to render: %v", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}

	if *memProfile != "" {
		f, err := os.Create(*memProfile)
		if err != nil {
			return fmt.Errorf("could not create memory profile: %v", err)
		}
		defer f.Close()
		runtime.GC() // materialize all statistics
		if err := pprof.WriteHeapProfile(f); err != nil {
			return fmt.Errorf("could not write memory profile: %v", err)
		}
	}

	return nil
}

func parseLayoutMode(s string) (scribe.LayoutMode, error) {
	switch s {
	case "default":
		return scribe.Default, nil
	case "simple":
		return scribe.Simple, nil
	case "smart":
		return scribe.Smart, nil
	default:
		return 0, fmt.Errorf("must be one of 'default', 'simple' or 'smart'")
	}
}

func setForce(r *ansi.Renderer, color string, w io.Writer) error {
	var force bool
	switch color {
	case "always":
		force = true
	case "never":
		force = false
	case "auto":
		return nil
	default:
		return fmt.Errorf("must be one of 'auto', 'always' or 'never'")
	}
	r.Force = &force
	return nil
}
