// Command convert converts single positions between WGS84 geodetic and
// geocentric Cartesian coordinates.
//
//	convert --mode geo2cart 48.7823 11.9601 400
//	convert --mode cart2geo --output json 4119529.287 872635.028 4774941.835
//	convert --preset neuburg
//	convert -- -33.8688 151.2093 58
//	printf '0,0,0\n90,0,0\n' | convert --mode geo2cart
package main

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/meridian/internal/format"
	"github.com/UnknownOlympus/meridian/internal/input"
	"github.com/UnknownOlympus/meridian/internal/locale"
	"github.com/UnknownOlympus/meridian/internal/metrics"
	"github.com/UnknownOlympus/meridian/internal/presets"
	"github.com/UnknownOlympus/meridian/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/pflag"
)

const (
	modeGeoToCart = "geo2cart"
	modeCartToGeo = "cart2geo"
)

var errUsage = errors.New("usage error")

// rowError ties a failure to the stdin row that caused it.
type rowError struct {
	row int
	err error
}

func (e *rowError) Error() string { return fmt.Sprintf("row %d: %v", e.row, e.err) }

func (e *rowError) Unwrap() error { return e.err }

type options struct {
	mode      string
	radians   bool
	precision int
	output    string
	preset    string
	lang      string
	verbose   bool
}

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var opts options

	flags := pflag.NewFlagSet("convert", pflag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVarP(&opts.mode, "mode", "m", modeGeoToCart, "conversion direction: geo2cart or cart2geo")
	flags.BoolVarP(&opts.radians, "radians", "r", false, "latitude and longitude are given in radians")
	flags.IntVarP(&opts.precision, "precision", "p", int(format.DefaultPrecision), "decimal places: 3, 6 or 9")
	flags.StringVarP(&opts.output, "output", "o", string(format.RendererText), "output format: text or json")
	flags.StringVar(&opts.preset, "preset", "", "use a named preset position (origin, neuburg)")
	flags.StringVar(&opts.lang, "lang", "en", "language for error messages (en, de)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log debug output to stderr")

	if err := flags.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		return 2
	}

	level := slog.LevelWarn
	if opts.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	tag := locale.Parse(opts.lang)

	if err := convert(ctx, opts, flags.Args(), stdin, stdout, logger); err != nil {
		if errors.Is(err, errUsage) {
			fmt.Fprintln(stderr, err)
			flags.Usage()
			return 2
		}
		logger.DebugContext(ctx, "Conversion failed", "error", err)
		msg := locale.Message(tag, err)
		var rerr *rowError
		if errors.As(err, &rerr) {
			msg = locale.Text(tag, locale.KeyRow, rerr.row) + ": " + msg
		}
		fmt.Fprintln(stderr, msg)
		return 1
	}

	return 0
}

func convert(ctx context.Context, opts options, args []string, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	precision, err := format.ParsePrecision(opts.precision)
	if err != nil {
		return err
	}
	renderer, err := format.NewRenderer(format.RendererConfig{
		Type:      format.RendererType(opts.output),
		Precision: precision,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}

	unit := input.Degrees
	if opts.radians {
		unit = input.Radians
	}

	converter := service.NewConverterService(logger, metrics.NewMetrics(prometheus.NewRegistry()))
	one := func(fields []string) error {
		switch opts.mode {
		case modeGeoToCart:
			cart, err := converter.ToCartesian(ctx, input.GeodeticFields{
				Latitude:  fields[0],
				Longitude: fields[1],
				Height:    fields[2],
			}, unit)
			if err != nil {
				return err
			}
			return renderer.RenderCartesian(stdout, cart)
		case modeCartToGeo:
			geo, err := converter.ToGeodetic(ctx, input.CartesianFields{X: fields[0], Y: fields[1], Z: fields[2]})
			if err != nil {
				return err
			}
			return renderer.RenderGeodetic(stdout, geo)
		default:
			return fmt.Errorf("%w: unknown mode %q", errUsage, opts.mode)
		}
	}

	switch {
	case opts.preset != "":
		p, err := presets.Lookup(opts.preset)
		if err != nil {
			return err
		}
		if opts.mode != modeGeoToCart || opts.radians {
			return fmt.Errorf("%w: --preset requires --mode %s in degrees", errUsage, modeGeoToCart)
		}
		return one([]string{
			strconv.FormatFloat(p.Position.Latitude, 'f', -1, 64),
			strconv.FormatFloat(p.Position.Longitude, 'f', -1, 64),
			strconv.FormatFloat(p.Position.Height, 'f', -1, 64),
		})
	case len(args) == 3:
		return one(args)
	case len(args) == 0:
		return convertRows(stdin, one)
	default:
		return fmt.Errorf("%w: expected 3 values, got %d", errUsage, len(args))
	}
}

// convertRows converts each CSV row of stdin on its own, stopping at the first failure.
func convertRows(stdin io.Reader, one func([]string) error) error {
	r := csv.NewReader(stdin)
	r.FieldsPerRecord = 3
	r.TrimLeadingSpace = true
	r.Comment = '#'

	for row := 1; ; row++ {
		rs, err := r.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return &rowError{row: row, err: fmt.Errorf("%w: %w", input.ErrMalformedRow, err)}
		}
		for i := range rs {
			rs[i] = strings.TrimSpace(rs[i])
		}
		if err = one(rs); err != nil {
			return &rowError{row: row, err: err}
		}
	}
}
