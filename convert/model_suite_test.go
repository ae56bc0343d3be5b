package convert

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/veramc/veramc/csg"
)

// bareDeck is a full-square core with none of the optional structures:
// no baffle, no neutron pads, no core plates.
const bareDeck = `<ParameterList name="case1">
  <Parameter name="case_id" type="string" value="bare"/>
  <ParameterList name="CORE">
    <Parameter name="core_size" type="int" value="2"/>
    <Parameter name="apitch" type="double" value="21.5"/>
    <Parameter name="height" type="double" value="300.0"/>
    <Parameter name="shape" type="Array(int)" value="{1,1,1,1}"/>
    <Parameter name="assm_map" type="Array(string)" value="{A1,A1,A1,A1}"/>
    <Parameter name="vessel_mats" type="Array(string)" value="{mod,ss}"/>
    <Parameter name="vessel_radii" type="Array(double)" value="{35.0,40.0}"/>
    <ParameterList name="Materials">
      <ParameterList name="mat_ss">
        <Parameter name="key_name" type="string" value="ss"/>
        <Parameter name="density" type="double" value="8.0"/>
        <Parameter name="mat_names" type="Array(string)" value="{fe-56}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{1.0}"/>
      </ParameterList>
      <ParameterList name="mat_mod">
        <Parameter name="key_name" type="string" value="mod"/>
        <Parameter name="density" type="double" value="0.743"/>
        <Parameter name="mat_names" type="Array(string)" value="{h-1,o-16}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{0.1119,0.8881}"/>
      </ParameterList>
      <ParameterList name="mat_fuel">
        <Parameter name="key_name" type="string" value="fuel"/>
        <Parameter name="density" type="double" value="10.257"/>
        <Parameter name="mat_names" type="Array(string)" value="{u-238,o-16}"/>
        <Parameter name="mat_fracs" type="Array(double)" value="{0.8815,0.1185}"/>
      </ParameterList>
    </ParameterList>
  </ParameterList>
  <ParameterList name="ASSEMBLIES">
    <ParameterList name="ASSY1">
      <Parameter name="label" type="string" value="A1"/>
      <Parameter name="num_pins" type="int" value="1"/>
      <Parameter name="ppitch" type="double" value="1.26"/>
      <Parameter name="axial_elevations" type="Array(double)" value="{0.0,300.0}"/>
      <Parameter name="axial_labels" type="Array(string)" value="{L1}"/>
      <ParameterList name="Cells">
        <ParameterList name="1">
          <Parameter name="radii" type="Array(double)" value="{0.4096,0.475}"/>
          <Parameter name="mats" type="Array(string)" value="{fuel,ss}"/>
        </ParameterList>
      </ParameterList>
      <ParameterList name="CellMaps">
        <ParameterList name="L1">
          <Parameter name="cell_map" type="Array(string)" value="{1}"/>
        </ParameterList>
      </ParameterList>
    </ParameterList>
  </ParameterList>
</ParameterList>`

// BareModelSuite exercises a build without any optional core structure.
type BareModelSuite struct {
	suite.Suite

	session *Session
	model   *Model
}

func (s *BareModelSuite) SetupSuite() {
	s.session = quietSession(s.T(), bareDeck)
	model, err := s.session.Build()
	require.NoError(s.T(), err)
	s.model = model
}

// TestRootCells verifies only the vessel ring and the core cell exist.
func (s *BareModelSuite) TestRootCells() {
	require.Equal(s.T(), 2, s.model.Root.NumCells())
	require.Equal(s.T(), "vessel-1", s.model.Root.Cells()[0].Name)
	require.Equal(s.T(), "core", s.model.Root.Cells()[1].Name)
}

// TestBounds verifies the plate planes collapse onto the core planes when
// no plates are declared, all with the default vacuum condition.
func (s *BareModelSuite) TestBounds() {
	require.Equal(s.T(), 0.0, s.model.BottomBound.Coeff)
	require.Equal(s.T(), 300.0, s.model.TopBound.Coeff)
	require.Equal(s.T(), 40.0, s.model.RadialBound.Coeff)
	require.Equal(s.T(), csg.Vacuum, s.model.BottomBound.Boundary())
	require.Equal(s.T(), csg.Vacuum, s.model.TopBound.Boundary())
	require.Equal(s.T(), csg.Vacuum, s.model.RadialBound.Boundary())
}

// TestMembership samples the two root cells and the space between them.
func (s *BareModelSuite) TestMembership() {
	require.Equal(s.T(), "core", s.model.Root.FindCell(0, 0, 150).Name)
	require.Equal(s.T(), "core", s.model.Root.FindCell(30, 0, 150).Name)
	require.Equal(s.T(), "vessel-1", s.model.Root.FindCell(37, 0, 150).Name)
	require.Nil(s.T(), s.model.Root.FindCell(37, 0, 301))
}

// TestNoWarnings: a clean deck converts silently.
func (s *BareModelSuite) TestNoWarnings() {
	require.Equal(s.T(), 0, s.session.Warnings())
}

func TestBareModelSuite(t *testing.T) {
	suite.Run(t, new(BareModelSuite))
}
