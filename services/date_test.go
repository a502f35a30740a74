package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{name: "valid date", date: "2026-08-26", wantErr: false},
		{name: "leap day", date: "2024-02-29", wantErr: false},
		{name: "invalid calendar date", date: "2026-02-30", wantErr: true},
		{name: "wrong format", date: "26/08/2026", wantErr: true},
		{name: "missing zero padding", date: "2026-8-26", wantErr: true},
		{name: "empty", date: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parsed, err := ParseDate(tt.date)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidFormat)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.date, parsed.Format("2006-01-02"))
		})
	}
}
