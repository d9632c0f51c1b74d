package validation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCORSOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		origin        string
		errorContains string
	}{
		{name: "와일드카드", origin: "*"},
		{name: "HTTP 도메인", origin: "http://example.com"},
		{name: "HTTPS 포트", origin: "https://api.example.com:8443"},
		{name: "로컬호스트", origin: "http://localhost:3000"},
		{name: "IPv6", origin: "http://[::1]:8080"},
		{name: "빈 문자열", origin: " ", errorContains: "비어있을 수 없습니다"},
		{name: "후행 슬래시", origin: "https://example.com/", errorContains: "'/'"},
		{name: "경로 포함", origin: "https://example.com/api", errorContains: "경로"},
		{name: "쿼리 포함", origin: "https://example.com?a=1", errorContains: "쿼리"},
		{name: "스키마 오류", origin: "ftp://example.com", errorContains: "스키마"},
		{name: "포트 범위 초과", origin: "http://example.com:70000", errorContains: "포트"},
		{name: "숫자 TLD", origin: "http://example.123", errorContains: "TLD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateCORSOrigin(tt.origin)
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

func TestValidateHostname(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidateHostname("localhost"))
	assert.NoError(t, ValidateHostname("10.0.0.1"))
	assert.NoError(t, ValidateHostname("my-host.example.com"))
	assert.Error(t, ValidateHostname("-bad.example.com"))
	assert.Error(t, ValidateHostname("bad..example.com"))
	assert.Error(t, ValidateHostname("under_score.com"))
}

func TestValidatePort(t *testing.T) {
	t.Parallel()

	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(65535))
	assert.Error(t, ValidatePort(0))
	assert.Error(t, ValidatePort(65536))
}

func TestValidateDir(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0600))

	assert.NoError(t, ValidateDir(dir))
	assert.Error(t, ValidateDir(""))
	assert.Error(t, ValidateDir(filepath.Join(dir, "missing")))
	assert.Error(t, ValidateDir(file), "일반 파일은 디렉터리가 아니다")
}
