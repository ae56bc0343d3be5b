package pwr

import (
	"fmt"

	"github.com/veramc/veramc/csg"
	"github.com/veramc/veramc/ident"
	"github.com/veramc/veramc/mat"
)

// Occupancy reports which positions of a square core map hold an
// assembly. Row 0 is the top row as drawn in the input deck.
type Occupancy interface {
	Size() int
	Occupied(row, col int) bool
}

// Baffle describes the steel liner traced around the occupied periphery
// of the core map: Gap is the water gap between the assembly edge and
// the inner baffle face, Thick the strap thickness.
type Baffle struct {
	Material *mat.Material
	Thick    float64
	Gap      float64
}

// Trace walks every occupied map position and builds one strap per side
// whose neighbor position is empty. A strap runs parallel to the side,
// Gap outside the assembly edge and Thick wide. Each lateral endpoint
// reaches out to the strap's own outer face so that straps meeting at a
// convex corner tile without a seam, except where the diagonal neighbor
// on that end is occupied: there the strap stops Gap short of the edge
// so it never crosses into the neighbor's position.
//
// The returned cell carries the radial region only; the caller bounds it
// axially. Checkerboard corners, where two occupied positions touch only
// diagonally, cannot be sealed by straight straps and are reported as
// warnings.
func (b *Baffle) Trace(reg *csg.Registry, cnt *ident.Counter, occ Occupancy, apitch float64) (*csg.Cell, []string, error) {
	if b.Material == nil || b.Thick <= 0 || b.Gap < 0 {
		return nil, nil, fmt.Errorf("%w: need material, positive thickness and non-negative gap", ErrBaffleConfig)
	}
	if apitch <= 0 {
		return nil, nil, fmt.Errorf("%w: assembly pitch %g", ErrBaffleConfig, apitch)
	}
	if occ == nil || occ.Size() < 1 {
		return nil, nil, fmt.Errorf("%w: empty core map", ErrBaffleMap)
	}

	n := occ.Size()
	filled := func(j, i int) bool {
		return j >= 0 && j < n && i >= 0 && i < n && occ.Occupied(j, i)
	}

	d0 := apitch / 2.0
	d1 := d0 + b.Gap
	d2 := d1 + b.Thick
	d3 := d0 - b.Gap

	var (
		straps []csg.Region
		warns  []string
	)
	seen := make(map[[4]int]struct{})
	warnCorner := func(aj, ai, bj, bi int) {
		if bj < aj || (bj == aj && bi < ai) {
			aj, ai, bj, bi = bj, bi, aj, ai
		}
		k := [4]int{aj, ai, bj, bi}
		if _, ok := seen[k]; ok {
			return
		}
		seen[k] = struct{}{}
		warns = append(warns, fmt.Sprintf(
			"baffle: positions (%d,%d) and (%d,%d) touch only diagonally; corner left open", aj, ai, bj, bi))
	}

	half := float64(n-1) / 2.0
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if !filled(j, i) {
				continue
			}
			cx := (float64(i) - half) * apitch
			cy := (half - float64(j)) * apitch

			// Endpoint distance for the strap end whose diagonal
			// neighbor is (dj,di) and lateral neighbor (lj,li).
			endAt := func(dj, di, lj, li int) float64 {
				if filled(dj, di) {
					if !filled(lj, li) {
						warnCorner(j, i, dj, di)
					}
					return d3
				}
				return d2
			}

			for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, 1}, {0, -1}} {
				dj, di := d[0], d[1]
				if filled(j+dj, i+di) {
					continue
				}
				var region csg.Region
				if di == 0 {
					wy := float64(-dj)
					inner := reg.YPlane(cy + wy*d1)
					outer := reg.YPlane(cy + wy*d2)
					lo, hi := inner, outer
					if wy < 0 {
						lo, hi = outer, inner
					}
					left := reg.XPlane(cx - endAt(j+dj, i-1, j, i-1))
					right := reg.XPlane(cx + endAt(j+dj, i+1, j, i+1))
					region = csg.All(
						csg.Outside(lo), csg.Inside(hi),
						csg.Outside(left), csg.Inside(right),
					)
				} else {
					wx := float64(di)
					inner := reg.XPlane(cx + wx*d1)
					outer := reg.XPlane(cx + wx*d2)
					lo, hi := inner, outer
					if wx < 0 {
						lo, hi = outer, inner
					}
					bot := reg.YPlane(cy - endAt(j+1, i+di, j+1, i))
					top := reg.YPlane(cy + endAt(j-1, i+di, j-1, i))
					region = csg.All(
						csg.Outside(lo), csg.Inside(hi),
						csg.Outside(bot), csg.Inside(top),
					)
				}
				straps = append(straps, region)
			}
		}
	}
	if len(straps) == 0 {
		return nil, warns, fmt.Errorf("%w: no occupied positions", ErrBaffleMap)
	}

	cell := csg.NewCell(cnt.NextCell(), "baffle", csg.Any(straps...), b.Material)

	return cell, warns, nil
}
