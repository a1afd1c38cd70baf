package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		spec          string
		wantErr       bool
		errorContains string
	}{
		{name: "Every 5 minutes at 0 seconds", spec: "0 */5 * * * *"},
		{name: "Weekday business hours", spec: "0 0-30/5 9-17 * * MON-FRI"},
		{name: "Trailing spaces are trimmed", spec: " 0 * * * * * "},
		{name: "Descriptor daily", spec: "@daily"},
		{name: "Descriptor every", spec: "@every 10m"},
		{name: "Standard 5 fields rejected", spec: "*/5 * * * *", wantErr: true, errorContains: "파싱 실패"},
		{name: "Empty", spec: "   ", wantErr: true, errorContains: "비어있습니다"},
		{name: "Garbage", spec: "every minute", wantErr: true, errorContains: "파싱 실패"},
		{name: "Out of range second", spec: "60 * * * * *", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.wantErr {
				require.Error(t, err)
				if tt.errorContains != "" {
					assert.Contains(t, err.Error(), tt.errorContains)
				}
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStandardParser_Next(t *testing.T) {
	t.Parallel()

	schedule, err := StandardParser().Parse("30 0 * * * *")
	require.NoError(t, err)

	base := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 1, 1, 10, 0, 30, 0, time.UTC), schedule.Next(base))
}
