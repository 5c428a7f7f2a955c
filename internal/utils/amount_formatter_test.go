package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "100.00", FormatAmount(100))
	assert.Equal(t, "80.80", FormatAmount(80.8))
	assert.Equal(t, "0.00", FormatAmount(0))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    float64
		wantErr bool
	}{
		{name: "integer", input: "150", want: 150},
		{name: "decimal", input: "150.50", want: 150.5},
		{name: "zero", input: "0", want: 0},
		{name: "surrounding spaces", input: " 12.5 ", want: 12.5},
		{name: "empty", input: "", wantErr: true},
		{name: "not a number", input: "abc", wantErr: true},
		{name: "negative", input: "-5", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseAmount(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
