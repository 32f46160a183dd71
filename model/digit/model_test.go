package digit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trknhr/zipknn/model"
	"github.com/trknhr/zipknn/model/digit"
)

func TestScore(t *testing.T) {
	var m model.Similarity = digit.New()

	tests := []struct {
		name string
		a, b string
		want float64
	}{
		{"no digits either side", "abc", "defgh", 1},
		{"all digits vs none", "123", "abc", 0},
		{"same mixed ratio", "a1", "b2", 1},
		{"half vs full", "1234", "12ab", 0.5},
		{"both empty", "", "", 1},
		{"empty vs digits", "", "123", 0},
		{"unicode digits count", "١٢٣", "456", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := m.Score(tt.a, tt.b)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, got, 1e-9)

			// strategy contract: stays inside [0, 1]
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 1.0)
		})
	}
}
