package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfidence(t *testing.T) {
	tests := []struct {
		in      string
		want    Confidence
		wantErr bool
	}{
		{in: "HIGH", want: ConfHigh},
		{in: "medium", want: ConfMedium},
		{in: " Low ", want: ConfLow},
		{in: "critical", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseConfidence(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.Valid())
		})
	}
}
