package system

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"

	"github.com/darkkaiser/process-server/internal/pkg/version"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) Health() error { return s.err }

func TestNewHandler(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgProcessManagerRequired, func() {
		NewHandler(nil, version.Info{})
	})
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checker    HealthChecker
		wantStatus string
		wantMsg    string
	}{
		{"정상", stubHealthChecker{}, constants.HealthStatusHealthy, constants.MsgDepStatusHealthy},
		{"프로세스 서비스 중지", stubHealthChecker{err: errors.New("프로세스 서비스가 실행 중이 아닙니다")}, constants.HealthStatusUnhealthy, "프로세스 서비스가 실행 중이 아닙니다"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			require.NoError(t, NewHandler(tt.checker, version.Info{}).HealthCheckHandler(c))

			assert.Equal(t, http.StatusOK, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, tt.wantStatus, gjson.Get(body, "status").String())
			assert.Equal(t, tt.wantStatus, gjson.Get(body, "dependencies.process_service.status").String())
			assert.Equal(t, tt.wantMsg, gjson.Get(body, "dependencies.process_service.message").String())
			assert.True(t, gjson.Get(body, "uptime").Exists())
		})
	}
}

func TestVersionHandler(t *testing.T) {
	t.Parallel()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/version", nil), rec)

	h := NewHandler(stubHealthChecker{}, version.Info{Version: "abc1234", BuildDate: "2025-12-01T14:00:00Z", BuildNumber: "100"})
	require.NoError(t, h.VersionHandler(c))

	body := rec.Body.String()
	assert.Equal(t, "abc1234", gjson.Get(body, "version").String())
	assert.Equal(t, "2025-12-01T14:00:00Z", gjson.Get(body, "build_date").String())
	assert.Equal(t, "100", gjson.Get(body, "build_number").String())
	assert.Equal(t, runtime.Version(), gjson.Get(body, "go_version").String())
}
