// Package gallery holds the preset avatars offered during signup.
package gallery

import "fmt"

const (
	presetCount = 9
	urlFormat   = "https://api.dicebear.com/7.x/avataaars/svg?seed=supernatural%d&backgroundColor=b6e3f4,c0aede,d1d4f9,ffd5dc,ffdfbf"
)

var presets = func() []string {
	out := make([]string, presetCount)
	for i := range out {
		out[i] = fmt.Sprintf(urlFormat, i+1)
	}
	return out
}()

// Presets returns a copy of the preset avatar URLs in display order.
func Presets() []string {
	return append([]string(nil), presets...)
}

// Pick returns the i-th preset, counting from 1.
func Pick(i int) (string, bool) {
	if i < 1 || i > len(presets) {
		return "", false
	}
	return presets[i-1], true
}

// Random returns a preset chosen with r, which must return a value in [0, n).
func Random(r func(n int) int) string {
	return presets[r(len(presets))]
}
