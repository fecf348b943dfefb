package gallery

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresets(t *testing.T) {
	p := Presets()
	require.Len(t, p, 9)
	assert.Equal(t,
		"https://api.dicebear.com/7.x/avataaars/svg?seed=supernatural1&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf",
		p[0])
	assert.Contains(t, p[8], "seed=supernatural9&")

	p[0] = "mutated"
	assert.NotEqual(t, "mutated", Presets()[0])
}

func TestPick(t *testing.T) {
	tests := []struct {
		name string
		i    int
		ok   bool
	}{
		{name: "first", i: 1, ok: true},
		{name: "last", i: 9, ok: true},
		{name: "zero", i: 0},
		{name: "past end", i: 10},
		{name: "negative", i: -3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url, ok := Pick(tt.i)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, Presets()[tt.i-1], url)
			} else {
				assert.Empty(t, url)
			}
		})
	}
}

func TestRandom(t *testing.T) {
	assert.Equal(t, Presets()[4], Random(func(int) int { return 4 }))
	assert.Contains(t, Presets(), Random(rand.IntN))
}
