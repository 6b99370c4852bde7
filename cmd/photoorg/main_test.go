package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePaths(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantIn  string
		wantOut string
		wantErr bool
	}{
		{"no args defaults", nil, ".", "out", false},
		{"input only", []string{"photos"}, "photos", "out", false},
		{"input and output", []string{"photos", "sorted"}, "photos", "sorted", false},
		{"too many args", []string{"a", "b", "c"}, "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in, out, err := resolvePaths(tt.args)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIn, in)
			assert.Equal(t, tt.wantOut, out)
		})
	}
}
