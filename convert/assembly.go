package convert

import (
	"fmt"
	"strings"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/pwr"
	"github.com/veramc/veramc/vera"
)

// Assembly converts one ASSEMBLIES record into its built universe,
// cached by assembly key. Axial labels repeating a lattice reuse one
// lattice object, and grid map entries repeating a spacer design reuse
// one solved grid, so the geometry stays linear in the number of
// distinct designs.
func (s *Session) Assembly(rec *vera.AssemblyRecord) (*pwr.Built, error) {
	if b, ok := s.assemblies[rec.Key]; ok {
		return b, nil
	}

	byLabel := make(map[string]*csg.RectLattice)
	ordered := make([]*csg.RectLattice, 0, len(rec.AxialLabels))
	for _, label := range rec.AxialLabels {
		lat, ok := byLabel[label]
		if !ok {
			var err error
			lat, err = s.lattice(rec, label)
			if err != nil {
				return nil, err
			}
			byLabel[label] = lat
		}
		ordered = append(ordered, lat)
	}

	spacers, mids, err := s.spacers(rec)
	if err != nil {
		return nil, err
	}

	lower, err := s.nozzle(rec, rec.LowerNozzle, "lower")
	if err != nil {
		return nil, err
	}
	upper, err := s.nozzle(rec, rec.UpperNozzle, "upper")
	if err != nil {
		return nil, err
	}

	a := &pwr.Assembly{
		Key:          rec.Key,
		Name:         rec.Name,
		Pitch:        rec.Pitch,
		Npins:        rec.Npins,
		Lattices:     ordered,
		LatticeElevs: rec.AxialElevations,
		Spacers:      spacers,
		SpacerMids:   mids,
		LowerNozzle:  lower,
		UpperNozzle:  upper,
		Mod:          s.mod,
	}
	b, err := a.Build(s.reg, s.cnt, s.gridder)
	if err != nil {
		return nil, err
	}
	if b.Top > s.deck.Core.Height+1e-9 {
		s.warnf("assembly taller than declared core height",
			"assembly", rec.Key, "top", b.Top, "core_height", s.deck.Core.Height)
	}
	s.assemblies[rec.Key] = b

	return b, nil
}

// lattice builds the pin lattice for one axial label of an assembly.
// Blank map positions fall through to the moderator outer fill.
func (s *Session) lattice(rec *vera.AssemblyRecord, label string) (*csg.RectLattice, error) {
	cm := rec.CellMaps[label]
	lat, err := csg.NewRectLattice(s.cnt.NextUniverse(), rec.Key+"-"+label, rec.Pitch, rec.Npins)
	if err != nil {
		return nil, fmt.Errorf("assembly %q lattice %q: %w", rec.Key, label, err)
	}
	for j := 0; j < rec.Npins; j++ {
		for i := 0; i < rec.Npins; i++ {
			tok := cm.At(j, i)
			if tok == "" || tok == vera.Blank {
				continue
			}
			cell, ok := rec.Cells[strings.ToLower(tok)]
			if !ok {
				return nil, fmt.Errorf("%w: %q in lattice %q of assembly %q",
					ErrUnknownCell, tok, label, rec.Key)
			}
			u, err := s.PinCell(cell)
			if err != nil {
				return nil, err
			}
			lat.SetUniverse(j, i, u)
		}
	}
	lat.SetOuter(s.modVerse)

	return lat, nil
}

// spacers resolves the assembly's grid map into solved spacer grids
// paired with their midpoint elevations.
func (s *Session) spacers(rec *vera.AssemblyRecord) ([]*pwr.SpacerGrid, []float64, error) {
	var (
		grids []*pwr.SpacerGrid
		mids  []float64
	)
	solved := make(map[string]*pwr.SpacerGrid)
	for i, gkey := range rec.GridMap {
		if gkey == "" || gkey == vera.Blank {
			continue
		}
		g, ok := solved[gkey]
		if !ok {
			gr, found := rec.Grids[strings.ToLower(gkey)]
			if !found {
				return nil, nil, fmt.Errorf("%w: %q in assembly %q", ErrUnknownGrid, gkey, rec.Key)
			}
			m, err := s.Material(gr.Material, rec.Label, "")
			if err != nil {
				return nil, nil, fmt.Errorf("grid %q: %w", gkey, err)
			}
			g, err = pwr.NewSpacerGrid(gr.Key, gr.Height, gr.Mass, m, rec.Pitch, rec.Npins)
			if err != nil {
				return nil, nil, fmt.Errorf("assembly %q: %w", rec.Key, err)
			}
			solved[gkey] = g
		}
		grids = append(grids, g)
		mids = append(mids, rec.GridElev[i])
	}

	return grids, mids, nil
}

func (s *Session) nozzle(rec *vera.AssemblyRecord, nr *vera.NozzleRecord, which string) (*pwr.Nozzle, error) {
	if nr == nil {
		return nil, nil
	}
	m, err := s.Material(nr.Comp, rec.Label, "")
	if err != nil {
		return nil, fmt.Errorf("%s nozzle of assembly %q: %w", which, rec.Key, err)
	}
	name := rec.Key + "-" + which + "-nozzle"
	nz, err := pwr.NewNozzle(name, nr.Height, nr.Mass, m, s.mod, rec.Npins, rec.Pitch, s.cnt.NextMaterial())
	if err != nil {
		return nil, err
	}

	return nz, nil
}
