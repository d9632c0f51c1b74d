package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/process-server/internal/config"
	"github.com/darkkaiser/process-server/internal/service/api/auth"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthenticator() *auth.Authenticator {
	return auth.NewAuthenticator(&config.AppConfig{
		ProcessAPI: config.ProcessAPIConfig{
			Accounts: []config.AccountConfig{
				{ID: "alice", Title: "Alice", AppKey: "alice-key"},
				{ID: "root", Title: "Root", AppKey: "root-key", Admin: true},
			},
		},
	})
}

func TestRequireAuthentication_NilAuthenticator(t *testing.T) {
	t.Parallel()

	assert.PanicsWithValue(t, constants.PanicMsgAuthenticatorRequired, func() {
		RequireAuthentication(nil)
	})
}

func TestRequireAuthentication(t *testing.T) {
	t.Parallel()

	mw := RequireAuthentication(newTestAuthenticator())

	tests := []struct {
		name        string
		target      string
		headers     map[string]string
		wantStatus  int
		wantAccount string
		wantAdmin   bool
	}{
		{
			name:        "헤더 인증 성공",
			target:      "/api/v1/process",
			headers:     map[string]string{constants.HeaderXAccountID: "alice", constants.HeaderXAppKey: "alice-key"},
			wantStatus:  http.StatusOK,
			wantAccount: "alice",
		},
		{
			name:        "관리자 계정",
			target:      "/api/v1/process",
			headers:     map[string]string{constants.HeaderXAccountID: "root", constants.HeaderXAppKey: "root-key"},
			wantStatus:  http.StatusOK,
			wantAccount: "root",
			wantAdmin:   true,
		},
		{
			name:        "쿼리 파라미터 폴백",
			target:      "/api/v1/process?app_key=alice-key",
			headers:     map[string]string{constants.HeaderXAccountID: "alice"},
			wantStatus:  http.StatusOK,
			wantAccount: "alice",
		},
		{
			name:        "헤더가 쿼리보다 우선",
			target:      "/api/v1/process?app_key=wrong",
			headers:     map[string]string{constants.HeaderXAccountID: "alice", constants.HeaderXAppKey: "alice-key"},
			wantStatus:  http.StatusOK,
			wantAccount: "alice",
		},
		{
			name:       "App Key 누락",
			target:     "/api/v1/process",
			headers:    map[string]string{constants.HeaderXAccountID: "alice"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "계정 ID 누락",
			target:     "/api/v1/process",
			headers:    map[string]string{constants.HeaderXAppKey: "alice-key"},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "잘못된 App Key",
			target:     "/api/v1/process",
			headers:    map[string]string{constants.HeaderXAccountID: "alice", constants.HeaderXAppKey: "root-key"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "등록되지 않은 계정",
			target:     "/api/v1/process",
			headers:    map[string]string{constants.HeaderXAccountID: "mallory", constants.HeaderXAppKey: "x"},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			called := false
			err := mw(func(c echo.Context) error {
				called = true

				account := auth.MustGetAccount(c)
				assert.Equal(t, tt.wantAccount, account.ID)
				assert.Equal(t, tt.wantAdmin, account.Admin)
				return c.NoContent(http.StatusOK)
			})(c)

			if tt.wantStatus == http.StatusOK {
				require.NoError(t, err)
				assert.True(t, called)
				return
			}

			assert.False(t, called)
			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tt.wantStatus, he.Code)
		})
	}
}
