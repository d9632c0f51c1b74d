package api

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// captureLogs 테스트 동안 전역 로거 출력을 버퍼로 돌리고, 종료 시 원복합니다.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()

	logger := applog.StandardLogger()
	prevOut, prevFormatter, prevLevel := logger.Out, logger.Formatter, logger.GetLevel()

	buf := new(bytes.Buffer)
	logger.SetOutput(buf)
	logger.SetFormatter(&applog.JSONFormatter{})
	logger.SetLevel(applog.DebugLevel)

	t.Cleanup(func() {
		logger.SetOutput(prevOut)
		logger.SetFormatter(prevFormatter)
		logger.SetLevel(prevLevel)
	})

	return buf
}

func TestNewHTTPServer_Configuration(t *testing.T) {
	tests := []struct {
		name   string
		config HTTPServerConfig
	}{
		{name: "Debug 모드 활성화", config: HTTPServerConfig{Debug: true, AllowOrigins: []string{"*"}}},
		{name: "Debug 모드 비활성화", config: HTTPServerConfig{AllowOrigins: []string{"http://example.com"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(tt.config)

			require.NotNil(t, e)
			assert.Equal(t, tt.config.Debug, e.Debug)
			assert.True(t, e.HideBanner)
			assert.True(t, e.HidePort)
			assert.NotNil(t, e.Logger)
		})
	}
}

func TestNewHTTPServer_CORS(t *testing.T) {
	tests := []struct {
		name              string
		allowOrigins      []string
		origin            string
		method            string
		expectStatus      int
		expectAllowOrigin string
	}{
		{
			name:              "Wildcard Origin Preflight",
			allowOrigins:      []string{"*"},
			origin:            "http://example.com",
			method:            http.MethodOptions,
			expectStatus:      http.StatusNoContent,
			expectAllowOrigin: "*",
		},
		{
			name:              "허용된 Origin GET",
			allowOrigins:      []string{"http://example.com"},
			origin:            "http://example.com",
			method:            http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "http://example.com",
		},
		{
			name:              "허용되지 않은 Origin GET",
			allowOrigins:      []string{"http://trusted.com"},
			origin:            "http://evil.com",
			method:            http.MethodGet,
			expectStatus:      http.StatusOK,
			expectAllowOrigin: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewHTTPServer(HTTPServerConfig{AllowOrigins: tt.allowOrigins})
			e.GET("/test", func(c echo.Context) error { return c.String(http.StatusOK, "ok") })

			req := httptest.NewRequest(tt.method, "/test", nil)
			req.Header.Set(echo.HeaderOrigin, tt.origin)
			if tt.method == http.MethodOptions {
				req.Header.Set(echo.HeaderAccessControlRequestMethod, http.MethodGet)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectStatus, rec.Code)
			assert.Equal(t, tt.expectAllowOrigin, rec.Header().Get(echo.HeaderAccessControlAllowOrigin))
		})
	}
}

func TestNewHTTPServer_PanicRecovery(t *testing.T) {
	buf := captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/panic", func(c echo.Context) error {
		panic("intentional panic")
	})

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() { e.ServeHTTP(rec, req) })

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, int64(http.StatusInternalServerError), gjson.Get(rec.Body.String(), "result_code").Int())
	assert.Contains(t, buf.String(), "intentional panic")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestNewHTTPServer_SecurityHeaders(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/test", func(c echo.Context) error {
		c.Response().Header().Set(echo.HeaderServer, "Echo")
		return c.String(http.StatusOK, "ok")
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID), "RequestID 헤더가 설정되어야 합니다")
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Empty(t, rec.Header().Get("Strict-Transport-Security"), "HTTP 요청에는 HSTS 헤더가 없어야 합니다")
}

func TestNewHTTPServer_NotFound(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})

	req := httptest.NewRequest(http.MethodGet, "/no-such-path", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, int64(http.StatusNotFound), gjson.Get(rec.Body.String(), "result_code").Int())
	assert.Equal(t, "요청한 리소스를 찾을 수 없습니다", gjson.Get(rec.Body.String(), "message").String())
}

func TestNewHTTPServer_BodyLimit(t *testing.T) {
	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.POST("/upload", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	body := strings.Repeat("a", 200*1024)
	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
}

func TestNewHTTPServer_HTTPLogger(t *testing.T) {
	buf := captureLogs(t)

	e := NewHTTPServer(HTTPServerConfig{AllowOrigins: []string{"*"}})
	e.GET("/log-test", func(c echo.Context) error { return c.String(http.StatusOK, "success") })

	req := httptest.NewRequest(http.MethodGet, "/log-test?app_key=secret-value", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, buf.String(), "/log-test")
	assert.NotContains(t, buf.String(), "secret-value", "민감한 쿼리 파라미터는 마스킹되어야 합니다")
}

func TestRegisterRoutes(t *testing.T) {
	service, _ := newTestService(t, newTestAppConfig(8080))
	e := service.setupServer()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "1.0.0", gjson.Get(rec.Body.String(), "version").String())
}

func TestRegisterRoutes_Swagger(t *testing.T) {
	service, _ := newTestService(t, newTestAppConfig(8080))
	e := service.setupServer()

	t.Run("doc.json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		require.True(t, gjson.Valid(body), "Swagger 문서는 올바른 JSON이어야 합니다")
		assert.Equal(t, "Process Server API", gjson.Get(body, "info.title").String())
		assert.Equal(t, "X-App-Key", gjson.Get(body, "securityDefinitions.ApiKeyAuth.name").String())

		paths := gjson.Get(body, "paths").Map()
		for _, route := range []struct{ path, method string }{
			{"/health", "get"},
			{"/version", "get"},
			{"/api/v1/process", "get"},
			{"/api/v1/process", "post"},
			{"/api/v1/process/key/{keyId}", "get"},
			{"/api/v1/process/cancel/key/{keyId}", "post"},
		} {
			assert.True(t, paths[route.path].Get(route.method).Exists(), "%s %s 경로가 문서화되어야 합니다", route.method, route.path)
		}
		assert.True(t, paths["/api/v1/process"].Get("post.responses.202").Exists())
	})

	t.Run("index.html", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "swagger-ui")
	})
}
