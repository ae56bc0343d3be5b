package pwr

import (
	"fmt"

	"github.com/veramc/veramc/mat"
)

// Nozzle models an assembly end fitting as a single block of smeared
// material: the declared mass of structural material volume-mixed with
// the moderator filling the rest of the nozzle region. The region volume
// is (npins·pitch)²·height.
type Nozzle struct {
	Name     string
	Height   float64
	Material *mat.Material
}

// NewNozzle smears the nozzle. matID is the id for the derived mixture
// material. Returns ErrNozzleConfig for non-positive inputs and
// ErrNozzleVolume when the structural material alone would overfill the
// region.
func NewNozzle(name string, height, mass float64, nozzleMat, modMat *mat.Material, npins int, pitch float64, matID int) (*Nozzle, error) {
	if height <= 0 || mass <= 0 || npins < 1 || pitch <= 0 || nozzleMat == nil || modMat == nil {
		return nil, fmt.Errorf("%w: nozzle %q", ErrNozzleConfig, name)
	}
	side := float64(npins) * pitch
	v := side * side * height
	matVol := mass / nozzleMat.Density
	modVol := v - matVol
	if modVol <= 0 {
		return nil, fmt.Errorf("%w: nozzle %q (material %g cm3, region %g cm3)",
			ErrNozzleVolume, name, matVol, v)
	}

	smear, err := mat.Mix(matID, name, []*mat.Material{nozzleMat, modMat}, []float64{matVol / v, modVol / v})
	if err != nil {
		return nil, fmt.Errorf("nozzle %q: %w", name, err)
	}

	return &Nozzle{Name: name, Height: height, Material: smear}, nil
}
