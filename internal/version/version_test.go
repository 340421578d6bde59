package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGet(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
		wantErr  bool
	}{
		{name: "development build", version: "", expected: "0.0.1-dev"},
		{name: "plain", version: "1.2.3", expected: "1.2.3"},
		{name: "v prefix", version: "v1.2.3", expected: "1.2.3"},
		{name: "dirty suffix", version: "v1.2.3-dirty", expected: "1.2.3-dirty"},
		{name: "invalid", version: "latest", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			old := Version
			Version = tt.version
			defer func() { Version = old }()

			got, err := Get()
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
