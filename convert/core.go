package convert

import (
	"fmt"
	"math"
	"strings"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/mat"
	"github.com/veramc/veramc/pwr"
	"github.com/veramc/veramc/vera"
)

// radiusEps is the tolerance for matching the neutron-pad radii against
// the vessel ring radii.
const radiusEps = 1e-5

// Model is the finished geometry: the root universe plus the three
// surfaces that bound it, already tagged with the deck's boundary
// conditions.
type Model struct {
	Root *csg.Universe

	RadialBound *csg.Surface
	BottomBound *csg.Surface
	TopBound    *csg.Surface
}

// Build converts the whole case into a bounded model. The vessel rings,
// core plates, baffle, neutron pads and the core lattice itself all hang
// off one root universe; everything not claimed by a cell is moderator
// through the lattice outer fill.
func (s *Session) Build() (*Model, error) {
	core := s.deck.Core
	if len(core.VesselRadii) < 2 {
		return nil, fmt.Errorf("%w: need at least two vessel radii", ErrVesselConfig)
	}

	bcBot, err := csg.ParseBoundary(core.BC.Bot)
	if err != nil {
		return nil, fmt.Errorf("bottom boundary %q: %w", core.BC.Bot, err)
	}
	bcTop, err := csg.ParseBoundary(core.BC.Top)
	if err != nil {
		return nil, fmt.Errorf("top boundary %q: %w", core.BC.Top, err)
	}
	bcRad, err := csg.ParseBoundary(core.BC.Rad)
	if err != nil {
		return nil, fmt.Errorf("radial boundary %q: %w", core.BC.Rad, err)
	}

	var lowerThick, upperThick float64
	if core.LowerPlate != nil {
		lowerThick = core.LowerPlate.Thick
	}
	if core.UpperPlate != nil {
		upperThick = core.UpperPlate.Thick
	}

	plateBot := s.reg.ZPlane(-lowerThick)
	coreBot := s.reg.ZPlane(0)
	coreTop := s.reg.ZPlane(core.Height)
	plateTop := s.reg.ZPlane(core.Height + upperThick)
	plateBot.SetBoundary(bcBot)
	plateTop.SetBoundary(bcTop)

	zcore := csg.All(csg.Outside(coreBot), csg.Inside(coreTop))
	zfull := csg.All(csg.Outside(plateBot), csg.Inside(plateTop))

	root := csg.NewUniverse(s.cnt.NextUniverse(), s.deck.ID)

	// Concentric vessel rings. The innermost ring holds the core
	// lattice and is bounded to the fueled height; every outer ring
	// spans the full model height. One ring may be replaced by the
	// neutron pads when its radii match the pad card.
	cyls := make([]*csg.Surface, len(core.VesselRadii))
	for i, r := range core.VesselRadii {
		cyls[i] = s.reg.ZCylinder(r)
	}
	cyls[len(cyls)-1].SetBoundary(bcRad)

	innerCyl := cyls[0]
	insideRegion := csg.All(csg.Inside(innerCyl), zcore)

	padRing := -1
	if core.Pads != nil {
		for i := 1; i < len(cyls); i++ {
			if math.Abs(core.VesselRadii[i-1]-core.Pads.Inner) < radiusEps &&
				math.Abs(core.VesselRadii[i]-core.Pads.Outer) < radiusEps {
				padRing = i
				break
			}
		}
		if padRing < 0 {
			s.warnf("neutron pad radii match no vessel ring",
				"inner", core.Pads.Inner, "outer", core.Pads.Outer)
		}
	}

	for i := 1; i < len(cyls); i++ {
		ring := csg.All(csg.Inside(cyls[i]), csg.Outside(cyls[i-1]), zfull)
		m, err := s.Material(core.VesselMats[i], "", "")
		if err != nil {
			return nil, fmt.Errorf("vessel ring %d: %w", i, err)
		}
		if i == padRing {
			cells, err := s.padCells(core.Pads, ring, m)
			if err != nil {
				return nil, err
			}
			root.AddCells(cells...)
			continue
		}
		root.AddCell(csg.NewCell(s.cnt.NextCell(), fmt.Sprintf("vessel-%d", i), ring, m))
	}

	// Core baffle. The straps are traced in the radial plane, carved
	// out of the core cell, then bounded to the fueled height.
	if core.Baffle != nil {
		bm, err := s.Material(core.Baffle.Material, "", "")
		if err != nil {
			return nil, fmt.Errorf("baffle: %w", err)
		}
		baf := &pwr.Baffle{Material: bm, Thick: core.Baffle.Thick, Gap: core.Baffle.Gap}
		bafCell, warns, err := baf.Trace(s.reg, s.cnt, core.Shape, core.Pitch)
		if err != nil {
			return nil, err
		}
		for _, w := range warns {
			s.warnf(w)
		}
		radial := bafCell.Region
		bafCell.Region = csg.All(radial, zcore)
		insideRegion = csg.All(insideRegion, csg.Not(radial))
		root.AddCell(bafCell)
	}

	lat, err := s.coreLattice()
	if err != nil {
		return nil, err
	}
	root.AddCell(csg.NewCell(s.cnt.NextCell(), "core", insideRegion, lat))

	if core.LowerPlate != nil {
		m, err := s.plateMaterial(core.LowerPlate, "lower-plate")
		if err != nil {
			return nil, err
		}
		region := csg.All(csg.Inside(innerCyl), csg.Outside(plateBot), csg.Inside(coreBot))
		root.AddCell(csg.NewCell(s.cnt.NextCell(), "lower-plate", region, m))
	}
	if core.UpperPlate != nil {
		m, err := s.plateMaterial(core.UpperPlate, "upper-plate")
		if err != nil {
			return nil, err
		}
		region := csg.All(csg.Inside(innerCyl), csg.Outside(coreTop), csg.Inside(plateTop))
		root.AddCell(csg.NewCell(s.cnt.NextCell(), "upper-plate", region, m))
	}

	return &Model{
		Root:        root,
		RadialBound: cyls[len(cyls)-1],
		BottomBound: plateBot,
		TopBound:    plateTop,
	}, nil
}

// padCells replaces one vessel ring with the neutron pads. The deck
// lists explicit pad azimuths; the pads are laid out from the first one
// at the uniform spacing, with a warning when the listed angles are not
// actually uniform.
func (s *Session) padCells(pr *vera.PadRecord, ring csg.Region, gap *mat.Material) ([]*csg.Cell, error) {
	if len(pr.Angles) == 0 {
		return nil, fmt.Errorf("%w: no pad azimuths declared", pwr.ErrPadConfig)
	}
	pm, err := s.Material(pr.Material, "", "")
	if err != nil {
		return nil, fmt.Errorf("neutron pad: %w", err)
	}
	n := len(pr.Angles)
	step := 360.0 / float64(n)
	for k, a := range pr.Angles {
		want := math.Mod(pr.Angles[0]+float64(k)*step, 360)
		if diff := math.Abs(math.Mod(a-want+540, 360) - 180); diff > radiusEps {
			s.warnf("neutron pads are not evenly spaced", "angle", a, "expected", want)
			break
		}
	}

	pads := &pwr.NeutronPads{
		Material: pm,
		Mod:      gap,
		Npads:    n,
		Arc:      pr.Arc,
		Start:    pr.Angles[0],
	}

	return pads.Cells(s.cnt, ring)
}

// coreLattice places one assembly universe per occupied shape position.
// Occupied positions with a blank assembly label are warned about and
// left to the moderator outer fill.
func (s *Session) coreLattice() (*csg.RectLattice, error) {
	core := s.deck.Core
	lat, err := csg.NewRectLattice(s.cnt.NextUniverse(), "core", core.Pitch, core.Size)
	if err != nil {
		return nil, fmt.Errorf("core lattice: %w", err)
	}
	for j := 0; j < core.Size; j++ {
		for i := 0; i < core.Size; i++ {
			if !core.Shape.Occupied(j, i) {
				continue
			}
			label := core.AssemblyMap.At(j, i)
			if label == "" || label == vera.Blank {
				s.warnf("occupied core position has no assembly", "row", j, "col", i)
				continue
			}
			rec, err := s.findAssembly(label)
			if err != nil {
				return nil, err
			}
			b, err := s.Assembly(rec)
			if err != nil {
				return nil, err
			}
			lat.SetUniverse(j, i, b.Universe)
		}
	}
	lat.SetOuter(s.modVerse)

	return lat, nil
}

// findAssembly resolves a core-map token to its assembly record, first
// by key and then by the declared label.
func (s *Session) findAssembly(label string) (*vera.AssemblyRecord, error) {
	if rec, ok := s.deck.Assemblies[strings.ToLower(label)]; ok {
		return rec, nil
	}
	for _, rec := range s.deck.Assemblies {
		if strings.EqualFold(rec.Label, label) {
			return rec, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAssembly, label)
}

// plateMaterial returns the core-plate fill: the structural material as
// declared, or smeared with moderator when the plate volume fraction is
// below one. Smeared plates are cached under their cell name.
func (s *Session) plateMaterial(pr *vera.PlateRecord, name string) (*mat.Material, error) {
	base, err := s.Material(pr.Material, "", "")
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	if pr.VolFrac >= 1-1e-12 {
		return base, nil
	}
	if m, ok := s.materials[name]; ok {
		return m, nil
	}
	m, err := mat.Mix(s.cnt.NextMaterial(), name,
		[]*mat.Material{base, s.mod}, []float64{pr.VolFrac, 1 - pr.VolFrac})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	s.materials[name] = m

	return m, nil
}
