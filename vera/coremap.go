package vera

import (
	"fmt"
	"math"
)

// Blank marks an empty position in a deck map.
const Blank = "-"

// CoreMap is a square map of string tokens: assembly labels in the core
// assembly map, "0"/"1" flags in the shape map, pin-cell keys in a
// lattice cell map. Row 0 is the top row as written in the deck.
type CoreMap struct {
	n    int
	rows [][]string
}

// NewSquareMap builds a map from a full row-major token list. The token
// count must be a perfect square.
func NewSquareMap(tokens []string) (*CoreMap, error) {
	n := int(math.Round(math.Sqrt(float64(len(tokens)))))
	if n < 1 || n*n != len(tokens) {
		return nil, fmt.Errorf("%w: %d tokens", ErrMapShape, len(tokens))
	}
	rows := make([][]string, n)
	for j := 0; j < n; j++ {
		rows[j] = tokens[j*n : (j+1)*n]
	}

	return &CoreMap{n: n, rows: rows}, nil
}

// ExpandOctant builds a full square map from a southeast-octant token
// list written from the center position outward: row k holds k+1 tokens.
// A map with r octant rows expands to (2r-1) x (2r-1) by eightfold
// symmetry.
func ExpandOctant(tokens []string) (*CoreMap, error) {
	sum, r := 0, 0
	for sum < len(tokens) {
		r++
		sum += r
	}
	if r < 1 || sum != len(tokens) {
		return nil, fmt.Errorf("%w: %d tokens", ErrMapShape, len(tokens))
	}

	n := 2*r - 1
	rows := make([][]string, n)
	for j := 0; j < n; j++ {
		rows[j] = make([]string, n)
		for i := 0; i < n; i++ {
			dj := j - (r - 1)
			if dj < 0 {
				dj = -dj
			}
			di := i - (r - 1)
			if di < 0 {
				di = -di
			}
			a, b := dj, di
			if b > a {
				a, b = b, a
			}
			rows[j][i] = tokens[a*(a+1)/2+b]
		}
	}

	return &CoreMap{n: n, rows: rows}, nil
}

// ParseMap accepts either a full square token list of the declared size
// or the matching octant form.
func ParseMap(tokens []string, size int) (*CoreMap, error) {
	if len(tokens) == size*size {
		return NewSquareMap(tokens)
	}
	m, err := ExpandOctant(tokens)
	if err != nil {
		return nil, err
	}
	if m.Size() != size {
		return nil, fmt.Errorf("%w: octant expands to %d, declared size %d",
			ErrMapShape, m.Size(), size)
	}

	return m, nil
}

// Size returns the side length.
func (m *CoreMap) Size() int { return m.n }

// At returns the token at row j, column i, or "" out of range.
func (m *CoreMap) At(j, i int) string {
	if j < 0 || j >= m.n || i < 0 || i >= m.n {
		return ""
	}

	return m.rows[j][i]
}

// Occupied reports whether position (j, i) holds a non-blank entry. A
// "0" token counts as blank so shape maps work directly.
func (m *CoreMap) Occupied(j, i int) bool {
	switch m.At(j, i) {
	case "", Blank, "0":
		return false
	}

	return true
}
