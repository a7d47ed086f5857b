package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPolicy_Allows(t *testing.T) {
	policy := NewPolicy([]string{"md", "txt", "canvas"}, 1_000_000)

	tests := []struct {
		name      string
		extension string
		size      int64
		want      bool
	}{
		{"markdown under limit", "md", 1024, true},
		{"text at exact limit", "txt", 1_000_000, true},
		{"canvas", "canvas", 0, true},
		{"markdown over limit", "md", 1_000_001, false},
		{"disallowed extension", "pdf", 10, false},
		{"empty extension", "", 10, false},
		{"case sensitive extension", "MD", 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.Allows(tt.extension, tt.size))
		})
	}
}
