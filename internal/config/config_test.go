package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Helpers
// =============================================================================

const validConfigJSON = `{
  "debug": true,
  "process": {
    "max_concurrent": 2,
    "retention": "10m"
  },
  "process_api": {
    "ws": { "listen_port": 18080 },
    "cors": { "allow_origins": ["https://example.com"] },
    "accounts": [
      { "id": "alice", "title": "Alice", "app_key": "alice-key" },
      { "id": "ops", "title": "Operator", "app_key": "ops-key", "admin": true }
    ]
  }
}`

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func validConfig() *AppConfig {
	cfg := newDefaultConfig()
	cfg.ProcessAPI.CORS.AllowOrigins = []string{"*"}
	cfg.ProcessAPI.Accounts = []AccountConfig{{ID: "alice", AppKey: "alice-key"}}
	return &cfg
}

// =============================================================================
// Load Tests
// =============================================================================

func TestNormalizeEnvKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"PROCESS_DEBUG", "debug"},
		{"PROCESS_PROCESS__MAX_CONCURRENT", "process.max_concurrent"},
		{"PROCESS_PROCESS_API__WS__LISTEN_PORT", "process_api.ws.listen_port"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, normalizeEnvKey(tt.input), "input: %s", tt.input)
	}
}

// 환경 변수를 사용하는 테스트가 섞여 있으므로 병렬로 실행하지 않습니다.
func TestLoadWithFile(t *testing.T) {
	t.Run("파일 값이 기본값을 덮어쓴다", func(t *testing.T) {
		cfg, err := LoadWithFile(writeConfigFile(t, validConfigJSON))
		require.NoError(t, err)

		assert.True(t, cfg.Debug)
		assert.Equal(t, 2, cfg.Process.MaxConcurrent)
		assert.Equal(t, 10*time.Minute, cfg.Process.Retention)
		assert.Equal(t, DefaultQueueSize, cfg.Process.QueueSize)
		assert.Equal(t, DefaultKeyFormat, cfg.Process.KeyFormat)
		assert.Equal(t, DefaultSweepTimeSpec, cfg.Process.SweepTimeSpec)
		assert.Equal(t, DefaultShutdownTimeout, cfg.Process.ShutdownTimeout)
		assert.Equal(t, 18080, cfg.ProcessAPI.WS.ListenPort)
		require.Len(t, cfg.ProcessAPI.Accounts, 2)
		assert.True(t, cfg.ProcessAPI.Accounts[1].Admin)
	})

	t.Run("환경 변수가 파일 값을 덮어쓴다", func(t *testing.T) {
		t.Setenv("PROCESS_PROCESS__MAX_CONCURRENT", "16")
		t.Setenv("PROCESS_PROCESS__KEY_FORMAT", "uuid")

		cfg, err := LoadWithFile(writeConfigFile(t, validConfigJSON))
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Process.MaxConcurrent)
		assert.Equal(t, KeyFormatUUID, cfg.Process.KeyFormat)
	})

	t.Run("파일이 없으면 System 에러", func(t *testing.T) {
		_, err := LoadWithFile(filepath.Join(t.TempDir(), "missing.json"))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.System))
	})

	t.Run("알 수 없는 키는 거부한다", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{"process": {"max_concurent": 2}}`))
		require.Error(t, err)
	})

	t.Run("검증 실패는 InvalidInput 에러", func(t *testing.T) {
		_, err := LoadWithFile(writeConfigFile(t, `{
  "process": { "key_format": "sequential" },
  "process_api": { "cors": { "allow_origins": ["*"] } }
}`))
		require.Error(t, err)
		assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
		assert.Contains(t, err.Error(), "key_format")
	})
}

// =============================================================================
// Validation Tests
// =============================================================================

func TestAppConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		modify        func(c *AppConfig)
		errorContains string
	}{
		{name: "정상 설정", modify: func(c *AppConfig) {}},
		{name: "동시 실행 수 0", modify: func(c *AppConfig) { c.Process.MaxConcurrent = 0 }, errorContains: "max_concurrent"},
		{name: "동시 실행 수 초과", modify: func(c *AppConfig) { c.Process.MaxConcurrent = 257 }, errorContains: "max_concurrent"},
		{name: "대기열 크기 0", modify: func(c *AppConfig) { c.Process.QueueSize = 0 }, errorContains: "queue_size"},
		{name: "음수 보관 기간", modify: func(c *AppConfig) { c.Process.Retention = -time.Second }, errorContains: "retention"},
		{name: "5필드 Cron", modify: func(c *AppConfig) { c.Process.SweepTimeSpec = "*/5 * * * *" }, errorContains: "sweep_time_spec"},
		{name: "종료 대기 시간 0", modify: func(c *AppConfig) { c.Process.ShutdownTimeout = 0 }, errorContains: "shutdown_timeout"},
		{name: "포트 범위 초과", modify: func(c *AppConfig) { c.ProcessAPI.WS.ListenPort = 70000 }, errorContains: "listen_port"},
		{name: "포트 0", modify: func(c *AppConfig) { c.ProcessAPI.WS.ListenPort = 0 }, errorContains: "1에서 65535"},
		{name: "TLS 인증서 누락", modify: func(c *AppConfig) { c.ProcessAPI.WS.TLSServer = true }, errorContains: "tls_cert_file"},
		{name: "CORS 목록 비어있음", modify: func(c *AppConfig) { c.ProcessAPI.CORS.AllowOrigins = nil }, errorContains: "allow_origins"},
		{name: "와일드카드 혼용", modify: func(c *AppConfig) {
			c.ProcessAPI.CORS.AllowOrigins = []string{"*", "https://example.com"}
		}, errorContains: "와일드카드"},
		{name: "잘못된 Origin", modify: func(c *AppConfig) {
			c.ProcessAPI.CORS.AllowOrigins = []string{"https://example.com/path"}
		}, errorContains: "CORS Origin"},
		{name: "계정 ID 중복", modify: func(c *AppConfig) {
			c.ProcessAPI.Accounts = append(c.ProcessAPI.Accounts, AccountConfig{ID: "alice", AppKey: "other"})
		}, errorContains: "중복된 Account"},
		{name: "API 키 누락", modify: func(c *AppConfig) {
			c.ProcessAPI.Accounts = append(c.ProcessAPI.Accounts, AccountConfig{ID: "bob"})
		}, errorContains: "app_key"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.validate(newValidator())
			if tt.errorContains == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), tt.errorContains)
		})
	}
}

func TestProcessConfig_ChecksumRoot(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(file, []byte("data"), 0600))

	tests := []struct {
		name    string
		root    string
		wantErr bool
	}{
		{name: "미설정", root: ""},
		{name: "존재하는 디렉터리", root: dir},
		{name: "존재하지 않는 디렉터리", root: filepath.Join(dir, "missing"), wantErr: true},
		{name: "일반 파일", root: file, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			cfg.Process.ChecksumRoot = tt.root

			err := cfg.validate(newValidator())
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.Is(err, apperrors.InvalidInput))
			assert.Contains(t, err.Error(), "checksum_root")
		})
	}
}

func TestAppConfig_VerifyRecommendations(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.ProcessAPI.WS.ListenPort = 443

	warnings := cfg.VerifyRecommendations()
	require.Len(t, warnings, 2)
	assert.Contains(t, warnings[0], "443")
	assert.Contains(t, warnings[1], "admin")

	cfg.ProcessAPI.WS.ListenPort = 8080
	cfg.ProcessAPI.Accounts[0].Admin = true
	assert.Empty(t, cfg.VerifyRecommendations())
}
