// Command gradclip converts gradients and clip paths between their editor
// models and CSS from the command line.
//
// Usage:
//
//	gradclip [flags] parse <css>            print the gradient state as JSON
//	gradclip [flags] serialize              read a JSON gradient state on stdin, print CSS
//	gradclip [flags] line <angle>           print the solved gradient line as JSON
//	gradclip [flags] clip                   read a JSON clip path on stdin, print CSS
//	gradclip [flags] insert <x> <y>         insert a point near (x, y) into a JSON clip path on stdin
//	gradclip [flags] preview <css> <file>   render a PNG preview of a gradient
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"strconv"

	"github.com/gogpu/gradclip"
)

var errUsage = errors.New("usage: gradclip [-config file] [-width w] [-height h] [-v] [-split] [-clip file] parse|serialize|line|clip|insert|preview ...")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.Fatal(err)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("gradclip", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		configPath = fs.String("config", "", "settings file (.toml, .yaml)")
		width      = fs.Float64("width", 400, "element width in pixels")
		height     = fs.Float64("height", 300, "element height in pixels")
		verbose    = fs.Bool("v", false, "debug logging to stderr")
		split      = fs.Bool("split", false, "insert: split curved edges along the drawn outline")
		clipFile   = fs.String("clip", "", "preview: JSON clip path file applied to the image")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return errUsage
	}

	if *verbose {
		gradclip.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
		defer gradclip.SetLogger(nil)
	}

	cfg := gradclip.DefaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = gradclip.LoadConfig(*configPath); err != nil {
			return err
		}
	}

	box := gradclip.Box{Width: *width, Height: *height}
	codec := gradclip.NewCodec(cfg.CodecOptions()...)
	cmd, rest := fs.Arg(0), fs.Args()[1:]

	switch cmd {
	case "parse":
		if len(rest) != 1 {
			return errUsage
		}
		s, err := codec.Parse(rest[0], box)
		if err != nil {
			return err
		}
		return writeJSON(stdout, s)

	case "serialize":
		var s gradclip.GradientState
		if err := json.NewDecoder(stdin).Decode(&s); err != nil {
			return fmt.Errorf("decode gradient state: %w", err)
		}
		_, err := fmt.Fprintln(stdout, codec.Serialize(s, box))
		return err

	case "line":
		if len(rest) != 1 {
			return errUsage
		}
		angle, err := strconv.ParseFloat(rest[0], 64)
		if err != nil {
			return fmt.Errorf("angle: %w", err)
		}
		return writeJSON(stdout, gradclip.SolveLinearLine(box.Width, box.Height, angle))

	case "clip":
		c, err := readClip(stdin)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(stdout, "%s\n%s\n%s\n",
			c.ToPercentagePolygon(box, cfg.CurveSamples),
			c.ToPixelPath(),
			c.ToBasicShape(box))
		return err

	case "insert":
		if len(rest) != 2 {
			return errUsage
		}
		x, errX := strconv.ParseFloat(rest[0], 64)
		y, errY := strconv.ParseFloat(rest[1], 64)
		if err := errors.Join(errX, errY); err != nil {
			return fmt.Errorf("click: %w", err)
		}
		c, err := readClip(stdin)
		if err != nil {
			return err
		}
		click := gradclip.Pt(x, y)
		var (
			i  int
			ok bool
		)
		if *split {
			i, ok = c.SplitByProximity(click, cfg.InsertTolerance, cfg.BezierSamples)
		} else {
			i, ok = c.InsertByProximity(click, cfg.InsertTolerance)
		}
		if !ok {
			return fmt.Errorf("no edge within %v px of (%v, %v)", cfg.InsertTolerance, x, y)
		}
		gradclip.Logger().Debug("gradclip: inserted point", "index", i, "id", c.Points[i].ID)
		return writeJSON(stdout, c)

	case "preview":
		if len(rest) != 2 {
			return errUsage
		}
		s := codec.ParseOrDefault(rest[0], box)
		img := s.Preview(box)
		if *clipFile != "" {
			if err := clipImage(img, *clipFile); err != nil {
				return err
			}
		}
		f, err := os.Create(rest[1])
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}
	return fmt.Errorf("unknown command %q: %w", cmd, errUsage)
}

// readClip decodes and validates a JSON clip path.
func readClip(r io.Reader) (*gradclip.ClipPath, error) {
	var c gradclip.ClipPath
	if err := json.NewDecoder(r).Decode(&c); err != nil {
		return nil, fmt.Errorf("decode clip path: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// clipImage masks img with the clip path stored in path.
func clipImage(img *image.NRGBA, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	c, err := readClip(f)
	if err != nil {
		return err
	}
	b := img.Bounds()
	m, err := c.Mask(b.Dx(), b.Dy())
	if err != nil {
		return err
	}
	m.Apply(img)
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
