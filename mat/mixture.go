package mat

// Mix builds a material as the volume-weighted combination of the given
// source materials. The mixture density is Σ ρ_i·v_i / Σ v_i, and each
// nuclide's weight fraction is the mass-weighted sum of its fractions in
// the sources, so the fractions of the result sum to 1. Duplicate
// nuclides across sources are merged into one entry.
//
// Mixing is defined for weight-fraction materials only; a source carrying
// an atomic fraction yields ErrMixtureFracType. Volume fractions need not
// be normalized but must all be positive.
func Mix(id int, name string, materials []*Material, vfracs []float64) (*Material, error) {
	if len(materials) == 0 || len(materials) != len(vfracs) {
		return nil, ErrMixtureInput
	}
	var vtot float64
	for i, m := range materials {
		if m == nil || vfracs[i] <= 0 {
			return nil, ErrMixtureInput
		}
		if m.HasAtomic() {
			return nil, ErrMixtureFracType
		}
		vtot += vfracs[i]
	}

	var density float64
	for i, m := range materials {
		density += m.Density * vfracs[i] / vtot
	}

	// Accumulate mass-weighted fractions, merging duplicates. Order of
	// first appearance is preserved so repeated builds are identical.
	idx := make(map[string]int)
	var nucs []Nuclide
	for i, m := range materials {
		wtf := vfracs[i] / vtot * m.Density // mass share of this source
		for _, n := range m.Nuclides() {
			w := wtf * n.Fraction / density
			if j, ok := idx[n.Name]; ok {
				nucs[j].Fraction += w
				continue
			}
			idx[n.Name] = len(nucs)
			nucs = append(nucs, Nuclide{Name: n.Name, Fraction: w, Type: Weight})
		}
	}

	mix := &Material{ID: id, Name: name, Density: density, nuclides: nucs}

	return mix, nil
}
