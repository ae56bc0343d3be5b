package vera

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/veramc/veramc/mat"
)

const demoDeck = `<ParameterList name="case1">
  <Parameter name="case_id" type="string" value="demo"/>
  <ParameterList name="CORE">
    <Parameter name="core_size" type="int" value="3"/>
    <Parameter name="apitch" type="double" value="21.5"/>
    <Parameter name="height" type="double" value="400.0"/>
    <Parameter name="shape" type="Array(int)" value="{0,1,0,1,1,1,0,1,0}"/>
    <Parameter name="assm_map" type="Array(string)" value="{A1,A1,-}"/>
    <Parameter name="bc_top" type="string" value="reflective"/>
    <Parameter name="baffle_mat" type="string" value="ss"/>
    <Parameter name="baffle_gap" type="double" value="0.19"/>
    <Parameter name="baffle_thick" type="double" value="2.85"/>
    <Parameter name="vessel_mats" type="Array(string)" value="{mod,ss,mod,ss}"/>
    <Parameter name="vessel_radii" type="Array(double)" value="{60.0,62.0,70.0,72.0}"/>
    <Parameter name="lower_plate_mat" type="string" value="ss"/>
    <Parameter name="lower_plate_thick" type="double" value="5.0"/>
    <Parameter name="lower_plate_vfrac" type="double" value="0.5"/>
    <Parameter name="upper_plate_mat" type="string" value="ss"/>
    <Parameter name="upper_plate_thick" type="double" value="7.6"/>
    <Parameter name="pad_mat" type="string" value="ss"/>
    <Parameter name="pad_inner" type="double" value="62.0"/>
    <Parameter name="pad_outer" type="double" value="70.0"/>
    <Parameter name="pad_arc" type="double" value="32.0"/>
    <Parameter name="pad_azi" type="Array(double)" value="{45.0,135.0,225.0,315.0}"/>
    <ParameterList name="Materials">
      <ParameterList name="mat_ss">
        <Parameter name="key_name" type="string" value="ss"/>
        <Parameter name="density" type="double" value="8.0"/>
        <Parameter name="mat_names" type="Array(string)" value="{cr-52,fe-56,ni-58}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{0.19,0.71,0.10}"/>
      </ParameterList>
      <ParameterList name="mat_mod">
        <Parameter name="key_name" type="string" value="mod"/>
        <Parameter name="density" type="double" value="0.743"/>
        <Parameter name="temperature" type="double" value="580.0"/>
        <Parameter name="mat_names" type="Array(string)" value="{h-1,o-16}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{-0.6667,-0.3333}"/>
      </ParameterList>
      <ParameterList name="mat_he">
        <Parameter name="key_name" type="string" value="he"/>
        <Parameter name="density" type="double" value="0.000178"/>
        <Parameter name="mat_names" type="Array(string)" value="{he-4}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{1.0}"/>
      </ParameterList>
      <ParameterList name="mat_zirc4">
        <Parameter name="key_name" type="string" value="zirc4"/>
        <Parameter name="density" type="double" value="6.56"/>
        <Parameter name="mat_names" type="Array(string)" value="{zr-00,sn-00}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{0.985,0.015}"/>
      </ParameterList>
    </ParameterList>
  </ParameterList>
  <ParameterList name="ASSEMBLIES">
    <ParameterList name="ASSY1">
      <Parameter name="title" type="string" value="Fuel 2.1 pct"/>
      <Parameter name="label" type="string" value="A1"/>
      <Parameter name="num_pins" type="int" value="3"/>
      <Parameter name="ppitch" type="double" value="1.26"/>
      <Parameter name="axial_elevations" type="Array(double)" value="{6.053,150.0,300.0}"/>
      <Parameter name="axial_labels" type="Array(string)" value="{LAT1,LAT2}"/>
      <Parameter name="grid_map" type="Array(string)" value="{mid,mid}"/>
      <Parameter name="grid_elev" type="Array(double)" value="{100.0,200.0}"/>
      <Parameter name="lower_nozzle_comp" type="string" value="ss"/>
      <Parameter name="lower_nozzle_height" type="double" value="6.053"/>
      <Parameter name="lower_nozzle_mass" type="double" value="6250.0"/>
      <ParameterList name="Fuels">
        <ParameterList name="u21">
          <Parameter name="key_name" type="string" value="fuel21"/>
          <Parameter name="density" type="double" value="10.257"/>
          <Parameter name="mat_names" type="Array(string)" value="{u-235,u-238,o-16}"/>
          <Parameter name="mat_fracs" type="Array(double)" value="{0.0185,0.8630,0.1185}"/>
        </ParameterList>
      </ParameterList>
      <ParameterList name="Cells">
        <ParameterList name="1">
          <Parameter name="radii" type="Array(double)" value="{0.4096,0.418,0.475}"/>
          <Parameter name="mats" type="Array(string)" value="{fuel21,he,zirc4}"/>
        </ParameterList>
        <ParameterList name="2">
          <Parameter name="radii" type="Array(double)" value="{0.561,0.602}"/>
          <Parameter name="mats" type="Array(string)" value="{mod,zirc4}"/>
        </ParameterList>
      </ParameterList>
      <ParameterList name="CellMaps">
        <ParameterList name="LAT1">
          <Parameter name="cell_map" type="Array(string)" value="{1,1,2,1,1,1,2,1,1}"/>
        </ParameterList>
        <ParameterList name="LAT2">
          <Parameter name="cell_map" type="Array(string)" value="{2,1,1}"/>
        </ParameterList>
      </ParameterList>
      <ParameterList name="SpacerGrids">
        <ParameterList name="mid">
          <Parameter name="height" type="double" value="3.866"/>
          <Parameter name="mass" type="double" value="875.0"/>
          <Parameter name="material" type="string" value="ss"/>
        </ParameterList>
      </ParameterList>
    </ParameterList>
  </ParameterList>
</ParameterList>`

func TestParse_DemoDeck(t *testing.T) {
	c, err := Parse(strings.NewReader(demoDeck))
	require.NoError(t, err)
	require.Equal(t, "demo", c.ID)

	t.Run("materials", func(t *testing.T) {
		require.Len(t, c.Materials, 5)

		ss := c.Materials["ss"]
		require.NotNil(t, ss)
		require.Equal(t, 8.0, ss.Density)
		require.Equal(t, DefaultTemperature, ss.Temperature)
		require.Equal(t, mat.Weight, ss.Nuclides[0].Type)

		mod := c.Materials["mod"]
		require.NotNil(t, mod)
		require.Equal(t, 580.0, mod.Temperature)
		for _, n := range mod.Nuclides {
			require.Equal(t, mat.Atomic, n.Type)
			require.Greater(t, n.Fraction, 0.0)
		}

		// Fuel card inside the assembly block lands in the same index.
		require.Contains(t, c.Materials, "fuel21")
	})

	t.Run("core", func(t *testing.T) {
		core := c.Core
		require.Equal(t, 3, core.Size)
		require.Equal(t, 21.5, core.Pitch)
		require.Equal(t, 400.0, core.Height)

		require.True(t, core.Shape.Occupied(1, 1))
		require.False(t, core.Shape.Occupied(0, 0))
		require.Equal(t, "A1", core.AssemblyMap.At(1, 1))
		require.Equal(t, "A1", core.AssemblyMap.At(0, 1))
		require.False(t, core.AssemblyMap.Occupied(0, 0))

		require.Equal(t, "vacuum", core.BC.Bot)
		require.Equal(t, "reflective", core.BC.Top)
		require.Equal(t, "vacuum", core.BC.Rad)

		require.NotNil(t, core.Baffle)
		require.Equal(t, BaffleRecord{Material: "ss", Gap: 0.19, Thick: 2.85}, *core.Baffle)

		require.Equal(t, []string{"mod", "ss", "mod", "ss"}, core.VesselMats)
		require.Equal(t, []float64{60, 62, 70, 72}, core.VesselRadii)

		require.Equal(t, &PlateRecord{Material: "ss", Thick: 5.0, VolFrac: 0.5}, core.LowerPlate)
		require.Equal(t, &PlateRecord{Material: "ss", Thick: 7.6, VolFrac: 1.0}, core.UpperPlate)

		require.NotNil(t, core.Pads)
		require.Equal(t, 32.0, core.Pads.Arc)
		require.Equal(t, []float64{45, 135, 225, 315}, core.Pads.Angles)
	})

	t.Run("assembly", func(t *testing.T) {
		a := c.Assemblies["assy1"]
		require.NotNil(t, a)
		require.Equal(t, "Fuel 2.1 pct", a.Name)
		require.Equal(t, "A1", a.Label)
		require.Equal(t, 3, a.Npins)
		require.Equal(t, 1.26, a.Pitch)
		require.Equal(t, []float64{6.053, 150, 300}, a.AxialElevations)
		require.Equal(t, []string{"LAT1", "LAT2"}, a.AxialLabels)

		fuelPin := a.Cells["1"]
		require.NotNil(t, fuelPin)
		require.Equal(t, []float64{0.4096, 0.418, 0.475}, fuelPin.Radii)
		require.Equal(t, []string{"fuel21", "he", "zirc4"}, fuelPin.Mats)
		require.Equal(t, "A1", fuelPin.AsName)

		lat1 := a.CellMaps["LAT1"]
		require.NotNil(t, lat1)
		require.Equal(t, "1", lat1.At(0, 0))
		require.Equal(t, "2", lat1.At(0, 2))

		// LAT2 is written as an octant: guide tube in the center.
		lat2 := a.CellMaps["LAT2"]
		require.NotNil(t, lat2)
		require.Equal(t, "2", lat2.At(1, 1))
		require.Equal(t, "1", lat2.At(0, 0))
		require.Equal(t, "1", lat2.At(2, 1))

		require.Equal(t, &GridRecord{Key: "mid", Material: "ss", Height: 3.866, Mass: 875}, a.Grids["mid"])
		require.Equal(t, []string{"mid", "mid"}, a.GridMap)
		require.Equal(t, []float64{100, 200}, a.GridElev)

		require.Equal(t, &NozzleRecord{Comp: "ss", Height: 6.053, Mass: 6250}, a.LowerNozzle)
		require.Nil(t, a.UpperNozzle)
	})
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		deck string
		want error
	}{
		{"not xml", "this is not xml", ErrDeck},
		{"no core", `<ParameterList name="x"/>`, ErrDeck},
		{
			"fraction mismatch",
			`<ParameterList name="x"><ParameterList name="CORE">
			  <Parameter name="core_size" type="int" value="1"/>
			  <Parameter name="apitch" type="double" value="21.5"/>
			  <Parameter name="height" type="double" value="400.0"/>
			  <Parameter name="shape" type="Array(int)" value="{1}"/>
			  <Parameter name="assm_map" type="Array(string)" value="{A1}"/>
			  <ParameterList name="Materials"><ParameterList name="m">
			    <Parameter name="key_name" type="string" value="ss"/>
			    <Parameter name="density" type="double" value="8.0"/>
			    <Parameter name="mat_names" type="Array(string)" value="{cr-52,fe-56}"/>
			    <Parameter name="mat_fracs" type="Array(double)" value="{1.0}"/>
			  </ParameterList></ParameterList>
			</ParameterList></ParameterList>`,
			ErrFractionCount,
		},
		{
			"bad shape count",
			`<ParameterList name="x"><ParameterList name="CORE">
			  <Parameter name="core_size" type="int" value="2"/>
			  <Parameter name="apitch" type="double" value="21.5"/>
			  <Parameter name="height" type="double" value="400.0"/>
			  <Parameter name="shape" type="Array(int)" value="{1,1}"/>
			  <Parameter name="assm_map" type="Array(string)" value="{A1,A1,A1,A1}"/>
			</ParameterList></ParameterList>`,
			ErrMapShape,
		},
		{
			"missing apitch",
			`<ParameterList name="x"><ParameterList name="CORE">
			  <Parameter name="core_size" type="int" value="1"/>
			</ParameterList></ParameterList>`,
			ErrMissingParam,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.deck))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestParse_MissingCellMapForLabel(t *testing.T) {
	deck := strings.Replace(demoDeck, `name="LAT2"`, `name="OTHER"`, 1)
	_, err := Parse(strings.NewReader(deck))
	require.ErrorIs(t, err, ErrDeck)
	require.ErrorContains(t, err, "LAT2")
}
