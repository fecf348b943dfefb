package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/supermatch/internal/common"
)

func TestGate_Unlock(t *testing.T) {
	g := NewGate(common.DefaultAdminSecret)

	tests := []struct {
		input string
		want  bool
	}{
		{input: "88620787", want: true},
		{input: " 88620787\n", want: true},
		{input: "8862078"},
		{input: "886207870"},
		{input: ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, g.Unlock(tt.input))
		})
	}
}

func TestGate_EmptySecretNeverUnlocks(t *testing.T) {
	g := NewGate("")
	assert.False(t, g.Unlock(""))
	assert.False(t, g.Unlock("anything"))
}
