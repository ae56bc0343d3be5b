package vera

import "github.com/veramc/veramc/mat"

// NuclideFrac is one nuclide of a material card. VERA encodes atomic
// fractions as negative numbers; parsing stores the magnitude and tags
// the convention.
type NuclideFrac struct {
	Name     string
	Fraction float64
	Type     mat.FracType
}

// MaterialRecord is one mat (or fuel) card: key name, density in g/cc,
// temperature in K and the paired nuclide list.
type MaterialRecord struct {
	Key         string
	Density     float64
	Temperature float64
	Nuclides    []NuclideFrac
}

// CellRecord is one pin-cell card: ring radii paired with ring material
// keys. AsName carries the owning assembly's label for material suffix
// resolution.
type CellRecord struct {
	Key    string
	Label  string
	Radii  []float64
	Mats   []string
	AsName string
}

// GridRecord is one spacer-grid design card.
type GridRecord struct {
	Key      string
	Material string
	Height   float64
	Mass     float64
}

// NozzleRecord is one nozzle description: structural material key, axial
// height and total mass.
type NozzleRecord struct {
	Comp   string
	Height float64
	Mass   float64
}

// AssemblyRecord is one ASSEMBLIES entry: the pin cells, the axial stack
// of lattice cell maps, the spacer grids with their elevations, and the
// optional nozzles.
type AssemblyRecord struct {
	Key   string
	Name  string
	Label string

	Npins int
	Pitch float64

	Cells    map[string]*CellRecord
	CellMaps map[string]*CoreMap

	AxialLabels     []string
	AxialElevations []float64

	Grids    map[string]*GridRecord
	GridMap  []string
	GridElev []float64

	LowerNozzle *NozzleRecord
	UpperNozzle *NozzleRecord
}

// BaffleRecord is the core baffle card.
type BaffleRecord struct {
	Material string
	Gap      float64
	Thick    float64
}

// PlateRecord is a core plate (axial reflector) card: structural
// material smeared over the plate volume fraction, the rest moderator.
type PlateRecord struct {
	Material string
	Thick    float64
	VolFrac  float64
}

// PadRecord is the neutron-pad card: pad material between the two
// radii, one pad of Arc degrees centered at each azimuth.
type PadRecord struct {
	Material string
	Inner    float64
	Outer    float64
	Arc      float64
	Angles   []float64
}

// BoundaryConditions are the outer boundary treatments of the model.
type BoundaryConditions struct {
	Bot string
	Top string
	Rad string
}

// CoreRecord is the CORE block: core maps, vessel, baffle, plates, pads
// and boundary conditions.
type CoreRecord struct {
	Size   int
	Pitch  float64
	Height float64

	Shape       *CoreMap
	AssemblyMap *CoreMap

	BC     BoundaryConditions
	Baffle *BaffleRecord

	VesselMats  []string
	VesselRadii []float64

	LowerPlate *PlateRecord
	UpperPlate *PlateRecord
	Pads       *PadRecord
}

// Case is one parsed VERA deck.
type Case struct {
	ID         string
	Materials  map[string]*MaterialRecord
	Assemblies map[string]*AssemblyRecord
	Core       *CoreRecord
}
