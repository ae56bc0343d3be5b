package pwr

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
)

type asmFixture struct {
	cnt   *ident.Counter
	reg   *csg.Registry
	gr    *Gridder
	water *mat.Material
	lat   func(name string) *csg.RectLattice
}

func newAsmFixture(t *testing.T) *asmFixture {
	t.Helper()
	cnt := ident.NewCounter()
	reg := csg.NewRegistry(cnt)
	fuel := testMaterial(t, cnt.NextMaterial(), "fuel", 10.257)
	water := testMaterial(t, cnt.NextMaterial(), "water", 0.743)

	return &asmFixture{
		cnt:   cnt,
		reg:   reg,
		gr:    NewGridder(reg, cnt),
		water: water,
		lat: func(name string) *csg.RectLattice {
			pin, err := BuildPinCell(reg, cnt, name+"-pin", []float64{0.4}, []csg.Fill{fuel}, water)
			require.NoError(t, err)
			l, err := csg.NewRectLattice(cnt.NextUniverse(), name, 1.26, 2)
			require.NoError(t, err)
			for j := 0; j < 2; j++ {
				for i := 0; i < 2; i++ {
					l.SetUniverse(j, i, pin)
				}
			}
			return l
		},
	}
}

func TestAssembly_TwoLayerStack(t *testing.T) {
	f := newAsmFixture(t)
	l1 := f.lat("bottom")
	l2 := f.lat("top")

	a := &Assembly{
		Key:          "A1",
		Pitch:        1.26,
		Npins:        2,
		Lattices:     []*csg.RectLattice{l1, l2},
		LatticeElevs: []float64{0, 150, 300},
		Mod:          f.water,
	}
	built, err := a.Build(f.reg, f.cnt, f.gr)
	require.NoError(t, err)
	require.Equal(t, 0.0, built.Bottom)
	require.Equal(t, 300.0, built.Top)
	require.Equal(t, 2, built.LayerCells)
	require.Equal(t, 3, built.Universe.NumCells())

	cases := []struct {
		name    string
		x, y, z float64
		fill    csg.Fill
	}{
		{"lower layer", 0, 0, 75, l1},
		{"upper layer", 0, 0, 200, l2},
		{"layer boundary belongs up", 0, 0, 150, l2},
		{"below stack", 0, 0, -5, f.water},
		{"above stack", 0, 0, 305, f.water},
		{"beside stack", 2, 0, 75, f.water},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := built.Universe.FindCell(tc.x, tc.y, tc.z)
			require.NotNil(t, c)
			require.Same(t, tc.fill, c.Fill)
		})
	}

	// Layers plus the surrounding moderator cover space exactly once.
	for _, x := range []float64{-2, -1, 0.5, 1.9} {
		for _, z := range []float64{-10, 0, 75, 150, 299, 300, 310} {
			require.Equal(t, 1, built.Universe.CountContaining(x, 0.3, z),
				"point (%g,0.3,%g)", x, z)
		}
	}
}

func TestAssembly_SpacerSplitsLayer(t *testing.T) {
	f := newAsmFixture(t)
	l := f.lat("only")
	inconel := testMaterial(t, f.cnt.NextMaterial(), "inconel", 6.55)
	grid, err := NewSpacerGrid("mid", 3.866, 40, inconel, 1.26, 2)
	require.NoError(t, err)

	a := &Assembly{
		Key:          "A1",
		Pitch:        1.26,
		Npins:        2,
		Lattices:     []*csg.RectLattice{l},
		LatticeElevs: []float64{0, 300},
		Spacers:      []*SpacerGrid{grid},
		SpacerMids:   []float64{150},
		Mod:          f.water,
	}
	built, err := a.Build(f.reg, f.cnt, f.gr)
	require.NoError(t, err)
	require.Equal(t, 3, built.LayerCells)
	require.Equal(t, 4, built.Universe.NumCells())

	plain := built.Universe.FindCell(0, 0, 75)
	require.Same(t, l, plain.Fill)

	gridded := built.Universe.FindCell(0, 0, 150)
	require.NotNil(t, gridded)
	require.NotSame(t, csg.Fill(l), gridded.Fill)
	require.Contains(t, gridded.Name, "mid")

	above := built.Universe.FindCell(0, 0, 200)
	require.Same(t, l, above.Fill)
}

func TestAssembly_Nozzles(t *testing.T) {
	f := newAsmFixture(t)
	l := f.lat("only")
	steel := testMaterial(t, f.cnt.NextMaterial(), "ss304", 8.0)

	lower, err := NewNozzle("lower", 6.053, 100, steel, f.water, 2, 1.26, f.cnt.NextMaterial())
	require.NoError(t, err)
	upper, err := NewNozzle("upper", 8.827, 100, steel, f.water, 2, 1.26, f.cnt.NextMaterial())
	require.NoError(t, err)

	a := &Assembly{
		Key:          "A1",
		Pitch:        1.26,
		Npins:        2,
		Lattices:     []*csg.RectLattice{l},
		LatticeElevs: []float64{6.053, 306.053},
		LowerNozzle:  lower,
		UpperNozzle:  upper,
		Mod:          f.water,
	}
	built, err := a.Build(f.reg, f.cnt, f.gr)
	require.NoError(t, err)
	require.Equal(t, 0.0, built.Bottom)
	require.InDelta(t, 306.053+8.827, built.Top, 1e-12)
	require.Equal(t, 4, built.Universe.NumCells())

	require.Same(t, lower.Material, built.Universe.FindCell(0, 0, 3).Fill)
	require.Same(t, l, built.Universe.FindCell(0, 0, 150).Fill)
	require.Same(t, upper.Material, built.Universe.FindCell(0, 0, 310).Fill)
	require.Same(t, f.water, built.Universe.FindCell(0, 0, 320).Fill)
}

func TestAssembly_Validation(t *testing.T) {
	f := newAsmFixture(t)
	l := f.lat("only")

	t.Run("missing fields aggregated", func(t *testing.T) {
		a := &Assembly{}
		_, err := a.Build(f.reg, f.cnt, f.gr)
		require.ErrorIs(t, err, ErrAssemblyConfig)
		for _, field := range []string{"key", "pitch", "npins", "lattices", "lattice_elevs", "mod"} {
			require.ErrorContains(t, err, field)
		}
	})

	valid := func() *Assembly {
		return &Assembly{
			Key:          "A1",
			Pitch:        1.26,
			Npins:        2,
			Lattices:     []*csg.RectLattice{l},
			LatticeElevs: []float64{0, 300},
			Mod:          f.water,
		}
	}

	t.Run("elevation count", func(t *testing.T) {
		a := valid()
		a.LatticeElevs = []float64{0, 150, 300}
		_, err := a.Build(f.reg, f.cnt, f.gr)
		require.ErrorIs(t, err, ErrElevationCount)
	})

	t.Run("elevation order", func(t *testing.T) {
		a := valid()
		a.LatticeElevs = []float64{300, 0}
		_, err := a.Build(f.reg, f.cnt, f.gr)
		require.ErrorIs(t, err, ErrElevationOrder)
	})

	t.Run("spacer count", func(t *testing.T) {
		a := valid()
		a.SpacerMids = []float64{150}
		_, err := a.Build(f.reg, f.cnt, f.gr)
		require.ErrorIs(t, err, ErrSpacerCount)
	})

	t.Run("lower nozzle gap", func(t *testing.T) {
		steel := testMaterial(t, f.cnt.NextMaterial(), "ss304", 8.0)
		nz, err := NewNozzle("lower", 5, 100, steel, f.water, 2, 1.26, f.cnt.NextMaterial())
		require.NoError(t, err)
		a := valid()
		a.LowerNozzle = nz
		_, err = a.Build(f.reg, f.cnt, f.gr)
		require.ErrorIs(t, err, ErrNozzleFit)
	})
}
