package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseExpiresInToMs(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  int64
	}{
		{"nil defaults to 15 minutes", nil, 900000},
		{"empty string defaults", "", 900000},
		{"minutes", "15m", 900000},
		{"one minute", "1m", 60000},
		{"seconds", "30s", 30000},
		{"hours", "1h", 3600000},
		{"days", "2d", 172800000},
		{"uppercase unit", "15M", 900000},
		{"space before unit", "10 m", 600000},
		{"numeric string is seconds", "3600", 3600000},
		{"int is seconds", 45, 45000},
		{"int64 is seconds", int64(45), 45000},
		{"float is seconds", 45.0, 45000},
		{"garbage defaults", "garbage", 900000},
		{"negative number defaults", -5, 900000},
		{"negative string defaults", "-5", 900000},
		{"unsupported type defaults", struct{}{}, 900000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExpiresInToMs(tt.input)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, int64(0))
		})
	}
}

func TestExpiresInDuration(t *testing.T) {
	assert.Equal(t, 15*time.Minute, ExpiresInDuration("15m"))
	assert.Equal(t, time.Hour, ExpiresInDuration("1h"))
	// same fallback as the millisecond form
	assert.Equal(t, 15*time.Minute, ExpiresInDuration("nope"))
}
