package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/mathfont/internal/retain"
	"github.com/npillmayer/schuko"
	"golang.org/x/image/font"
)

// DefaultDPI is the resolution of an engine initialized without WithDPI.
const DefaultDPI = 72.0

const maxDPI = 9600.0

// Engine is a reference to the shared state of a rasterizing engine.
// Every holder of a reference has to release it.
type Engine struct {
	handle *retain.Handle[*settings]
	done   chan struct{}
}

type settings struct {
	dpi     float64
	hinting font.Hinting
}

// Option configures an engine.
type Option func(*settings)

// WithDPI sets the resolution of the output device, in dots per inch.
func WithDPI(dpi float64) Option {
	return func(s *settings) {
		s.dpi = dpi
	}
}

// WithHinting sets the hinting mode for raster faces.
func WithHinting(h font.Hinting) Option {
	return func(s *settings) {
		s.hinting = h
	}
}

// Init creates an engine. The caller holds the first reference to it.
func Init(opts ...Option) (*Engine, error) {
	s := &settings{dpi: DefaultDPI, hinting: font.HintingFull}
	for _, opt := range opts {
		opt(s)
	}
	if s.dpi <= 0 || s.dpi > maxDPI || math.IsNaN(s.dpi) {
		return nil, &InitError{Setting: "resolution", Err: fmt.Errorf("%g dpi not in (0…%g]", s.dpi, maxDPI)}
	}
	if s.hinting < font.HintingNone || s.hinting > font.HintingFull {
		return nil, &InitError{Setting: "hinting", Err: fmt.Errorf("unknown hinting mode %d", s.hinting)}
	}
	e := &Engine{done: make(chan struct{})}
	e.handle = retain.New(s, func(*settings) {
		close(e.done)
		tracer().Infof("engine torn down")
	})
	tracer().Infof("engine initialized with %g dpi, hinting %s", s.dpi, HintingName(s.hinting))
	return e, nil
}

// InitFromConfig creates an engine from configuration keys
//
//	raster.dpi       resolution in dots per inch
//	raster.hinting   one of "none", "vertical", "full"
//
// Keys not set keep their defaults.
func InitFromConfig(conf schuko.Configuration) (*Engine, error) {
	if conf == nil {
		return Init()
	}
	var opts []Option
	if conf.IsSet("raster.dpi") {
		opts = append(opts, WithDPI(float64(conf.GetInt("raster.dpi"))))
	}
	if conf.IsSet("raster.hinting") {
		h, err := ParseHinting(conf.GetString("raster.hinting"))
		if err != nil {
			return nil, &InitError{Setting: "hinting", Err: err}
		}
		opts = append(opts, WithHinting(h))
	}
	return Init(opts...)
}

// ParseHinting reads a hinting mode from its name.
func ParseHinting(name string) (font.Hinting, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "none":
		return font.HintingNone, nil
	case "vertical":
		return font.HintingVertical, nil
	case "full":
		return font.HintingFull, nil
	}
	return font.HintingNone, errors.New("unknown hinting mode " + name)
}

// HintingName returns the name of a hinting mode, as understood by
// ParseHinting.
func HintingName(h font.Hinting) string {
	switch h {
	case font.HintingNone:
		return "none"
	case font.HintingVertical:
		return "vertical"
	case font.HintingFull:
		return "full"
	}
	return fmt.Sprintf("Hinting(%d)", int(h))
}

// Retain returns an additional reference to the engine. Retaining a nil or
// released reference panics.
func (e *Engine) Retain() *Engine {
	if e == nil {
		panic("engine: retain of nil engine")
	}
	return &Engine{handle: e.handle.Retain(), done: e.done}
}

// Release gives up this reference. The engine is torn down when its last
// reference is released. Releasing a reference twice has no effect.
func (e *Engine) Release() {
	if e == nil {
		return
	}
	if e.handle.Release() {
		tracer().Debugf("released last engine reference")
	}
}

// Refs returns the number of live references to the engine.
func (e *Engine) Refs() int {
	if e == nil {
		return 0
	}
	return e.handle.Refs()
}

// Done returns a channel which is closed when the engine is torn down.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

// DPI returns the resolution of the engine.
func (e *Engine) DPI() float64 {
	return e.settings().dpi
}

// Hinting returns the hinting mode of the engine.
func (e *Engine) Hinting() font.Hinting {
	return e.settings().hinting
}

func (e *Engine) settings() *settings {
	if e == nil {
		panic("engine: use of nil engine")
	}
	return e.handle.Value()
}
