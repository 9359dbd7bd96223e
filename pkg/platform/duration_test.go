package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseISO8601Duration(t *testing.T) {
	tests := []struct {
		input   string
		seconds int
	}{
		{"PT1H2M3S", 3723},
		{"PT15M33S", 933},
		{"PT45S", 45},
		{"PT2H", 7200},
		{"PT3M", 180},
		{"PT0S", 0},
		{"PT", 0},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseISO8601Duration(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.seconds, got)
		})
	}
}

func TestParseISO8601Duration_Invalid(t *testing.T) {
	for _, input := range []string{"", "1H2M", "P1DT2H", "PT1X"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseISO8601Duration(input)
			assert.Error(t, err)
		})
	}
}
