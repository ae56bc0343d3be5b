package pwr

import (
	"fmt"
	"math"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
)

// NeutronPads describes the shielding pads welded inside a vessel ring:
// Npads wedges of Arc degrees each, one per steam generator, evenly
// spaced, the first centered Start degrees clockwise from north. The
// space between pads is filled with Mod.
type NeutronPads struct {
	Material *mat.Material
	Mod      *mat.Material
	Npads    int
	Arc      float64
	Start    float64
}

// padPlane builds the azimuthal cut plane for an angle in degrees
// clockwise from north. The plane passes through the axis; points up to
// half a turn clockwise past the angle lie on its negative side.
func padPlane(id int, deg float64) *csg.Surface {
	phi := deg*math.Pi/180.0 - math.Pi/2.0

	return csg.NewPlane(id, math.Sin(phi), math.Cos(phi), 0, 0,
		fmt.Sprintf("pad-cut-%g", deg))
}

// Cells carves ring into alternating pad and moderator wedges, one pad
// cell and one gap cell per pad, tiling the full ring. Wedges that meet
// share a single cut plane, including the wrap-around from the last gap
// back to the first pad.
func (p *NeutronPads) Cells(cnt *ident.Counter, ring csg.Region) ([]*csg.Cell, error) {
	if p.Material == nil || p.Mod == nil {
		return nil, fmt.Errorf("%w: missing pad or gap material", ErrPadConfig)
	}
	if p.Npads < 1 {
		return nil, fmt.Errorf("%w: %d pads", ErrPadConfig, p.Npads)
	}
	if p.Arc <= 0 || p.Arc > 180 {
		return nil, fmt.Errorf("%w: pad arc %g degrees", ErrPadConfig, p.Arc)
	}
	if float64(p.Npads)*p.Arc > 360 {
		return nil, fmt.Errorf("%w: %d pads of %g degrees exceed a full circle",
			ErrPadConfig, p.Npads, p.Arc)
	}
	if ring == nil {
		return nil, fmt.Errorf("%w: nil ring region", ErrPadConfig)
	}

	planes := make(map[int64]*csg.Surface)
	planeAt := func(deg float64) *csg.Surface {
		norm := math.Mod(deg, 360)
		if norm < 0 {
			norm += 360
		}
		key := int64(math.Round(norm * 1e5))
		if s, ok := planes[key]; ok {
			return s
		}
		s := padPlane(cnt.NextSurface(), norm)
		planes[key] = s

		return s
	}

	step := 360.0 / float64(p.Npads)
	cells := make([]*csg.Cell, 0, 2*p.Npads)
	for k := 0; k < p.Npads; k++ {
		open := p.Start + float64(k)*step - p.Arc/2.0
		p0 := planeAt(open)
		p1 := planeAt(open + p.Arc)
		pad := csg.All(ring, csg.Outside(p1), csg.Inside(p0))
		cells = append(cells, csg.NewCell(cnt.NextCell(),
			fmt.Sprintf("pad-%d", k), pad, p.Material))

		// Moderator wedge up to the next pad's opening plane; touching
		// pads leave no gap to fill.
		if step-p.Arc < 1e-9 {
			continue
		}
		p2 := planeAt(open + step)
		gap := csg.All(ring, csg.Outside(p2), csg.Inside(p1))
		cells = append(cells, csg.NewCell(cnt.NextCell(),
			fmt.Sprintf("pad-gap-%d", k), gap, p.Mod))
	}

	return cells, nil
}
