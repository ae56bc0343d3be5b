package vera

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/veramc/veramc/mat"
)

// DefaultTemperature (K) is assumed for mat cards without a temperature
// entry.
const DefaultTemperature = 565.0

// Load reads and parses the deck at path.
func Load(path string) (*Case, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("vera: open deck: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads one VERAin XML deck. The CORE block is required; the
// ASSEMBLIES block may be absent for material-only decks.
func Parse(r io.Reader) (*Case, error) {
	var root ParamList
	if err := xml.NewDecoder(r).Decode(&root); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrDeck, err)
	}

	c := &Case{
		ID:         root.StrOr("case_id", "unnamed"),
		Materials:  make(map[string]*MaterialRecord),
		Assemblies: make(map[string]*AssemblyRecord),
	}

	core := root.List("CORE")
	if core == nil {
		return nil, fmt.Errorf("%w: no CORE block", ErrDeck)
	}
	if err := c.addMaterials(core.List("Materials"), ""); err != nil {
		return nil, err
	}
	cr, err := parseCore(core)
	if err != nil {
		return nil, err
	}
	c.Core = cr

	if asms := root.List("ASSEMBLIES"); asms != nil {
		for i := range asms.Lists {
			a, err := c.parseAssembly(&asms.Lists[i])
			if err != nil {
				return nil, err
			}
			c.Assemblies[a.Key] = a
		}
	}

	return c, nil
}

// addMaterials registers every material card in block, if any. Cards
// sharing a key overwrite; the deck's last definition wins.
func (c *Case) addMaterials(block *ParamList, owner string) error {
	if block == nil {
		return nil
	}
	for i := range block.Lists {
		m, err := parseMaterial(&block.Lists[i])
		if err != nil {
			if owner != "" {
				return fmt.Errorf("assembly %q: %w", owner, err)
			}
			return err
		}
		c.Materials[m.Key] = m
	}

	return nil
}

func parseMaterial(l *ParamList) (*MaterialRecord, error) {
	key, err := l.Str("key_name")
	if err != nil {
		return nil, err
	}
	density, err := l.Float("density")
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", key, err)
	}
	temp, err := l.FloatOr("temperature", DefaultTemperature)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", key, err)
	}
	names, err := l.Strings("mat_names")
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", key, err)
	}
	fracs, err := l.Floats("mat_fracs")
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", key, err)
	}
	if len(names) != len(fracs) {
		return nil, fmt.Errorf("%w: material %q has %d names and %d fractions",
			ErrFractionCount, key, len(names), len(fracs))
	}

	rec := &MaterialRecord{Key: key, Density: density, Temperature: temp}
	for i, name := range names {
		nf := NuclideFrac{Name: name, Fraction: fracs[i], Type: mat.Weight}
		if nf.Fraction < 0 {
			nf.Fraction = -nf.Fraction
			nf.Type = mat.Atomic
		}
		rec.Nuclides = append(rec.Nuclides, nf)
	}

	return rec, nil
}

func parseCore(core *ParamList) (*CoreRecord, error) {
	size, err := core.Int("core_size")
	if err != nil {
		return nil, err
	}
	pitch, err := core.Float("apitch")
	if err != nil {
		return nil, err
	}
	height, err := core.Float("height")
	if err != nil {
		return nil, err
	}

	cr := &CoreRecord{
		Size:   size,
		Pitch:  pitch,
		Height: height,
		BC: BoundaryConditions{
			Bot: core.StrOr("bc_bot", "vacuum"),
			Top: core.StrOr("bc_top", "vacuum"),
			Rad: core.StrOr("bc_rad", "vacuum"),
		},
	}

	shape, err := core.Strings("shape")
	if err != nil {
		return nil, err
	}
	if cr.Shape, err = ParseMap(shape, size); err != nil {
		return nil, fmt.Errorf("shape: %w", err)
	}
	asmap, err := core.Strings("assm_map")
	if err != nil {
		return nil, err
	}
	if cr.AssemblyMap, err = ParseMap(asmap, size); err != nil {
		return nil, fmt.Errorf("assm_map: %w", err)
	}

	if core.Has("baffle_mat") {
		b := &BaffleRecord{Material: core.StrOr("baffle_mat", "")}
		if b.Gap, err = core.Float("baffle_gap"); err != nil {
			return nil, err
		}
		if b.Thick, err = core.Float("baffle_thick"); err != nil {
			return nil, err
		}
		cr.Baffle = b
	}

	if core.Has("vessel_mats") {
		if cr.VesselMats, err = core.Strings("vessel_mats"); err != nil {
			return nil, err
		}
		if cr.VesselRadii, err = core.Floats("vessel_radii"); err != nil {
			return nil, err
		}
		if len(cr.VesselMats) != len(cr.VesselRadii) {
			return nil, fmt.Errorf("%w: %d vessel_mats, %d vessel_radii",
				ErrDeck, len(cr.VesselMats), len(cr.VesselRadii))
		}
		for i := 1; i < len(cr.VesselRadii); i++ {
			if cr.VesselRadii[i] <= cr.VesselRadii[i-1] {
				return nil, fmt.Errorf("%w: vessel_radii not ascending at index %d", ErrBadValue, i)
			}
		}
	}

	if cr.LowerPlate, err = parsePlate(core, "lower_plate"); err != nil {
		return nil, err
	}
	if cr.UpperPlate, err = parsePlate(core, "upper_plate"); err != nil {
		return nil, err
	}

	if core.Has("pad_mat") {
		p := &PadRecord{Material: core.StrOr("pad_mat", "")}
		if p.Inner, err = core.Float("pad_inner"); err != nil {
			return nil, err
		}
		if p.Outer, err = core.Float("pad_outer"); err != nil {
			return nil, err
		}
		if p.Arc, err = core.Float("pad_arc"); err != nil {
			return nil, err
		}
		if p.Angles, err = core.Floats("pad_azi"); err != nil {
			return nil, err
		}
		cr.Pads = p
	}

	return cr, nil
}

func parsePlate(core *ParamList, prefix string) (*PlateRecord, error) {
	if !core.Has(prefix + "_mat") {
		return nil, nil
	}
	p := &PlateRecord{Material: core.StrOr(prefix+"_mat", "")}
	var err error
	if p.Thick, err = core.Float(prefix + "_thick"); err != nil {
		return nil, err
	}
	if p.VolFrac, err = core.FloatOr(prefix+"_vfrac", 1.0); err != nil {
		return nil, err
	}

	return p, nil
}

func (c *Case) parseAssembly(l *ParamList) (*AssemblyRecord, error) {
	a := &AssemblyRecord{
		Key:      strings.ToLower(l.Name),
		Cells:    make(map[string]*CellRecord),
		CellMaps: make(map[string]*CoreMap),
		Grids:    make(map[string]*GridRecord),
	}
	a.Name = l.StrOr("title", a.Key)
	a.Label = l.StrOr("label", l.Name)

	var err error
	if a.Npins, err = l.Int("num_pins"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}
	if a.Pitch, err = l.Float("ppitch"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}
	if a.AxialElevations, err = l.Floats("axial_elevations"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}
	if a.AxialLabels, err = l.Strings("axial_labels"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}
	if len(a.AxialElevations) != len(a.AxialLabels)+1 {
		return nil, fmt.Errorf("%w: assembly %q has %d axial_labels and %d axial_elevations",
			ErrDeck, a.Key, len(a.AxialLabels), len(a.AxialElevations))
	}

	if err := c.addMaterials(l.List("Materials"), a.Key); err != nil {
		return nil, err
	}
	if err := c.addMaterials(l.List("Fuels"), a.Key); err != nil {
		return nil, err
	}

	if cells := l.List("Cells"); cells != nil {
		for i := range cells.Lists {
			cell, err := parseCell(&cells.Lists[i], a.Label)
			if err != nil {
				return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
			}
			a.Cells[cell.Key] = cell
		}
	}

	if maps := l.List("CellMaps"); maps != nil {
		for i := range maps.Lists {
			ml := &maps.Lists[i]
			tokens, err := ml.Strings("cell_map")
			if err != nil {
				return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
			}
			cm, err := ParseMap(tokens, a.Npins)
			if err != nil {
				return nil, fmt.Errorf("assembly %q cell map %q: %w", a.Key, ml.Name, err)
			}
			a.CellMaps[ml.Name] = cm
		}
	}
	for _, label := range a.AxialLabels {
		if _, ok := a.CellMaps[label]; !ok {
			return nil, fmt.Errorf("%w: assembly %q has no cell map for axial label %q",
				ErrDeck, a.Key, label)
		}
	}

	if grids := l.List("SpacerGrids"); grids != nil {
		for i := range grids.Lists {
			g, err := parseGrid(&grids.Lists[i])
			if err != nil {
				return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
			}
			a.Grids[g.Key] = g
		}
		if a.GridMap, err = l.Strings("grid_map"); err != nil {
			return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
		}
		if a.GridElev, err = l.Floats("grid_elev"); err != nil {
			return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
		}
		if len(a.GridMap) != len(a.GridElev) {
			return nil, fmt.Errorf("%w: assembly %q has %d grid_map entries and %d grid_elev entries",
				ErrDeck, a.Key, len(a.GridMap), len(a.GridElev))
		}
	}

	if a.LowerNozzle, err = parseNozzle(l, "lower_nozzle"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}
	if a.UpperNozzle, err = parseNozzle(l, "upper_nozzle"); err != nil {
		return nil, fmt.Errorf("assembly %q: %w", a.Key, err)
	}

	return a, nil
}

func parseCell(l *ParamList, asname string) (*CellRecord, error) {
	cell := &CellRecord{
		Key:    strings.ToLower(l.Name),
		Label:  l.StrOr("label", l.Name),
		AsName: asname,
	}
	var err error
	if cell.Radii, err = l.Floats("radii"); err != nil {
		return nil, err
	}
	if cell.Mats, err = l.Strings("mats"); err != nil {
		return nil, err
	}
	if len(cell.Radii) == 0 || len(cell.Radii) != len(cell.Mats) {
		return nil, fmt.Errorf("%w: cell %q has %d radii and %d mats",
			ErrDeck, cell.Key, len(cell.Radii), len(cell.Mats))
	}

	return cell, nil
}

func parseGrid(l *ParamList) (*GridRecord, error) {
	g := &GridRecord{Key: strings.ToLower(l.Name)}
	g.Material = l.StrOr("material", l.StrOr("comp", ""))
	if g.Material == "" {
		return nil, fmt.Errorf("%w: %q in grid %q", ErrMissingParam, "material", l.Name)
	}
	var err error
	if g.Height, err = l.Float("height"); err != nil {
		return nil, err
	}
	if g.Mass, err = l.Float("mass"); err != nil {
		return nil, err
	}

	return g, nil
}

func parseNozzle(l *ParamList, prefix string) (*NozzleRecord, error) {
	if !l.Has(prefix + "_comp") {
		return nil, nil
	}
	n := &NozzleRecord{Comp: l.StrOr(prefix+"_comp", "")}
	var err error
	if n.Height, err = l.Float(prefix + "_height"); err != nil {
		return nil, err
	}
	if n.Mass, err = l.Float(prefix + "_mass"); err != nil {
		return nil, err
	}

	return n, nil
}
