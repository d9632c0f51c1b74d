package cronx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandardParser(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		spec    string
		wantErr bool
	}{
		{"6필드 초 단위", "30 * * * * *", false},
		{"6필드 간격", "0 */5 * * * *", false},
		{"월 이름", "0 0 1 1 JAN *", false},
		{"@hourly", "@hourly", false},
		{"@every", "@every 1h30m", false},
		{"5필드는 미지원", "*/5 * * * *", true},
		{"범위 초과", "60 * * * * *", true},
		{"가비지", "not a cron", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := StandardParser().Parse(tt.spec)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestStandardParser_NextActivation(t *testing.T) {
	t.Parallel()

	schedule, err := StandardParser().Parse("0 */5 * * * *")
	require.NoError(t, err)

	base := time.Date(2024, 1, 1, 10, 2, 30, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 1, 10, 5, 0, 0, time.UTC), schedule.Next(base))
}
