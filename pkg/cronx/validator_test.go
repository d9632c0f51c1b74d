package cronx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		spec          string
		errorContains string
	}{
		{name: "5분 간격", spec: "0 */5 * * * *"},
		{name: "앞뒤 공백 허용", spec: " 0 * * * * * "},
		{name: "Descriptor", spec: "@daily"},
		{name: "빈 문자열", spec: "   ", errorContains: "비어있습니다"},
		{name: "5필드 형식", spec: "*/5 * * * *", errorContains: "6필드"},
		{name: "가비지", spec: "every five minutes", errorContains: "파싱 실패"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := Validate(tt.spec)
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.errorContains)
			}
		})
	}
}
