package convert

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
	"github.com/veramc/veramc/pwr"
	"github.com/veramc/veramc/vera"
)

// Option adjusts how a Session is constructed.
type Option func(*options)

type options struct {
	digits int
	floor  int
	log    *slog.Logger
}

func defaultOptions() options {
	return options{
		digits: csg.DefaultDigits,
		floor:  ident.DefaultFloor,
		log:    slog.Default(),
	}
}

// WithDigits sets the surface deduplication tolerance in decimal digits.
// Panics on negative digits (programmer error).
func WithDigits(d int) Option {
	if d < 0 {
		panic("convert: WithDigits(negative)")
	}

	return func(o *options) { o.digits = d }
}

// WithFloor sets the first id issued in every id namespace.
// Panics on negative floor (programmer error).
func WithFloor(f int) Option {
	if f < 0 {
		panic("convert: WithFloor(negative)")
	}

	return func(o *options) { o.floor = f }
}

// WithLogger replaces the logger that receives consistency warnings.
// Panics on nil (programmer error).
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("convert: WithLogger(nil)")
	}

	return func(o *options) { o.log = l }
}

// Session converts one parsed case. It owns the id counter and the
// surface registry and caches every derived object, so each distinct
// material, pin cell and assembly design is built exactly once no matter
// how often the core reuses it.
type Session struct {
	deck *vera.Case
	cnt  *ident.Counter
	reg  *csg.Registry
	log  *slog.Logger

	materials  map[string]*mat.Material
	pincells   map[string]*csg.Universe
	assemblies map[string]*pwr.Built
	gridder    *pwr.Gridder

	mod      *mat.Material
	modVerse *csg.Universe

	warnings int
}

// New prepares a session for the given case. The deck must define the
// special "mod" material, which fills every otherwise unclaimed space.
func New(c *vera.Case, opts ...Option) (*Session, error) {
	if c == nil || c.Core == nil {
		return nil, ErrNilCase
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	cnt := ident.NewCounterAt(o.floor)
	s := &Session{
		deck:       c,
		cnt:        cnt,
		reg:        csg.NewRegistry(cnt, csg.WithDigits(o.digits)),
		log:        o.log,
		materials:  make(map[string]*mat.Material),
		pincells:   make(map[string]*csg.Universe),
		assemblies: make(map[string]*pwr.Built),
	}
	s.gridder = pwr.NewGridder(s.reg, s.cnt)

	mod, err := s.Material("mod", "", "")
	if err != nil {
		if errors.Is(err, ErrUnknownMaterial) {
			return nil, ErrNoModerator
		}
		return nil, err
	}
	s.mod = mod
	s.modVerse = csg.NewUniverse(s.cnt.NextUniverse(), "mod")
	s.modVerse.AddCell(csg.NewCell(s.cnt.NextCell(), "mod", csg.Space(), mod))

	return s, nil
}

// Registry exposes the session's surface registry, mainly for summary
// reporting.
func (s *Session) Registry() *csg.Registry { return s.reg }

// Moderator returns the shared moderator material.
func (s *Session) Moderator() *mat.Material { return s.mod }

// Materials returns every material built so far, in no particular order.
func (s *Session) Materials() []*mat.Material {
	out := make([]*mat.Material, 0, len(s.materials))
	for _, m := range s.materials {
		out = append(out, m)
	}

	return out
}

// Warnings reports how many consistency warnings the session has logged.
func (s *Session) Warnings() int { return s.warnings }

func (s *Session) warnf(msg string, args ...any) {
	s.warnings++
	s.log.Warn(msg, args...)
}

// Material resolves a material key to a built material, trying the
// suffixed permutations first: key+asname+inname, key+asname,
// key+inname, then the bare key. Pin cells in different assemblies may
// declare different compositions under one name, distinguished in the
// deck only by these suffixes. Results are cached by resolved key.
func (s *Session) Material(key, asname, inname string) (*mat.Material, error) {
	for _, suffix := range []string{asname + inname, asname, inname} {
		if suffix == "" {
			continue
		}
		if _, ok := s.deck.Materials[key+suffix]; ok {
			key += suffix
			break
		}
	}

	if m, ok := s.materials[key]; ok {
		return m, nil
	}
	rec, ok := s.deck.Materials[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownMaterial, key)
	}
	m, err := mat.New(s.cnt.NextMaterial(), key, rec.Density)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", key, err)
	}
	m.Temperature = rec.Temperature
	for _, n := range rec.Nuclides {
		m.AddNuclide(n.Name, n.Fraction, n.Type)
	}
	s.materials[key] = m

	return m, nil
}

// PinCell converts one cell card into its universe, cached per assembly
// and cell key.
func (s *Session) PinCell(cell *vera.CellRecord) (*csg.Universe, error) {
	key := cell.AsName + "/" + cell.Key
	if u, ok := s.pincells[key]; ok {
		return u, nil
	}

	fills := make([]csg.Fill, len(cell.Mats))
	for i, mk := range cell.Mats {
		m, err := s.Material(mk, cell.AsName, "")
		if err != nil {
			return nil, fmt.Errorf("cell %q: %w", cell.Key, err)
		}
		fills[i] = m
	}
	u, err := pwr.BuildPinCell(s.reg, s.cnt, cell.AsName+"-"+cell.Label, cell.Radii, fills, s.mod)
	if err != nil {
		return nil, err
	}
	s.pincells[key] = u

	return u, nil
}
