package middleware

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/process-server/internal/service/api/httputil"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func TestMaskSensitiveQueryParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		want string
	}{
		{"민감 정보 없음", "/api/v1/process?includeFinished=true", "/api/v1/process?includeFinished=true"},
		{"app_key 마스킹", "/api/v1/process?app_key=secret123", "/api/v1/process?app_key=secr%2A%2A%2A"},
		{"여러 파라미터", "/api/v1/process?includeFinished=true&token=abcdefghijklmnop", "/api/v1/process?includeFinished=true&token=abcd%2A%2A%2Amnop"},
		{"쿼리 없음", "/health", "/health"},
		{"파싱 실패는 원본 유지", "%zz", "%zz"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, maskSensitiveQueryParams(tt.uri))
		})
	}
}

// TestHTTPLogger 로거의 전역 출력을 변경하므로 병렬로 실행하지 않습니다.
func TestHTTPLogger(t *testing.T) {
	var buf bytes.Buffer
	originalOut := applog.StandardLogger().Out
	applog.StandardLogger().SetOutput(&buf)
	applog.StandardLogger().SetFormatter(&applog.JSONFormatter{})
	t.Cleanup(func() { applog.StandardLogger().SetOutput(originalOut) })

	e := echo.New()
	e.HTTPErrorHandler = httputil.ErrorHandler

	t.Run("성공 요청 기록", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/process?app_key=secret123", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := HTTPLogger()(func(c echo.Context) error {
			return c.String(http.StatusOK, "ok")
		})(c)
		require.NoError(t, err)

		line := buf.String()
		assert.Equal(t, "HTTP 요청", gjson.Get(line, "msg").String())
		assert.Equal(t, int64(http.StatusOK), gjson.Get(line, "status").Int())
		assert.NotContains(t, line, "secret123")
	})

	t.Run("핸들러 에러는 에러 핸들러에서 처리 후 상태 코드 기록", func(t *testing.T) {
		buf.Reset()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/process/key/none", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := HTTPLogger()(func(c echo.Context) error {
			return errors.New("boom")
		})(c)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Contains(t, buf.String(), `"status":500`)
	})
}
