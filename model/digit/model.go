// Package digit scores text similarity by how close the two texts'
// digit densities are. It is the deliberately crude baseline strategy:
// useful as a sanity check against the compression-based one.
package digit

import (
	"math"
	"unicode"
)

type Model struct{}

func New() *Model { return &Model{} }

// Score returns 1 - |digitRatio(a) - digitRatio(b)|, always in [0, 1].
func (m *Model) Score(a, b string) (float64, error) {
	return 1 - math.Abs(ratio(a)-ratio(b)), nil
}

// ratio is the fraction of digit runes, 0 for the empty string.
func ratio(s string) float64 {
	total, digits := 0, 0
	for _, r := range s {
		total++
		if unicode.IsDigit(r) {
			digits++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(digits) / float64(total)
}
