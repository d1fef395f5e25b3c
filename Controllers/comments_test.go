package Controllers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMentionTargets(t *testing.T) {
	tests := []struct {
		name     string
		mentions []uint
		authorID uint
		want     []uint
	}{
		{"empty", nil, 1, []uint{}},
		{"passes through", []uint{2, 3}, 1, []uint{2, 3}},
		{"drops self mention", []uint{1, 2}, 1, []uint{2}},
		{"drops duplicates keeping first", []uint{3, 2, 3, 2}, 1, []uint{3, 2}},
		{"only self", []uint{1, 1}, 1, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mentionTargets(tt.mentions, tt.authorID))
		})
	}
}
