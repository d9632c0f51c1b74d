package httputil

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/model/domain"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func newTestContext(method string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/process/key/abc", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// TestErrorHandler_Response 에러 종류별 응답 코드와 본문을 검증합니다.
//
// 로거의 전역 출력을 변경하므로 병렬로 실행하지 않습니다.
func TestErrorHandler_Response(t *testing.T) {
	var buf bytes.Buffer
	originalOut := applog.StandardLogger().Out
	applog.StandardLogger().SetOutput(&buf)
	applog.StandardLogger().SetFormatter(&applog.JSONFormatter{})
	t.Cleanup(func() { applog.StandardLogger().SetOutput(originalOut) })

	tests := []struct {
		name        string
		method      string
		err         error
		account     *domain.Account
		wantStatus  int
		wantMessage string
		wantLevel   string
	}{
		{
			name:        "라우팅 404는 표준 메시지",
			method:      http.MethodGet,
			err:         echo.ErrNotFound,
			wantStatus:  http.StatusNotFound,
			wantMessage: constants.ErrMsgNotFound,
			wantLevel:   "warning",
		},
		{
			name:        "ErrorResponse 메시지 유지",
			method:      http.MethodGet,
			err:         NewForbiddenError("프로세스를 취소할 권한이 없습니다"),
			account:     &domain.Account{ID: "bob"},
			wantStatus:  http.StatusForbidden,
			wantMessage: "프로세스를 취소할 권한이 없습니다",
			wantLevel:   "warning",
		},
		{
			name:        "문자열 메시지 유지",
			method:      http.MethodPost,
			err:         echo.NewHTTPError(http.StatusRequestEntityTooLarge, "too large"),
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantMessage: "too large",
			wantLevel:   "warning",
		},
		{
			name:        "일반 에러는 500",
			method:      http.MethodGet,
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: constants.ErrMsgInternalServer,
			wantLevel:   "error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()

			c, rec := newTestContext(tt.method)
			if tt.account != nil {
				c.Set(constants.ContextKeyAccount, tt.account)
			}

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := rec.Body.String()
			assert.Equal(t, int64(tt.wantStatus), gjson.Get(body, "result_code").Int())
			assert.Equal(t, tt.wantMessage, gjson.Get(body, "message").String())

			logLine := buf.String()
			require.NotEmpty(t, logLine)
			assert.Equal(t, tt.wantLevel, gjson.Get(logLine, "level").String())
			assert.Equal(t, constants.ComponentErrorHandler, gjson.Get(logLine, "component").String())
			if tt.account != nil {
				assert.Equal(t, tt.account.ID, gjson.Get(logLine, "account_id").String())
			}
		})
	}

	t.Run("HEAD 요청은 본문 없음", func(t *testing.T) {
		c, rec := newTestContext(http.MethodHead)

		ErrorHandler(NewNotFoundError("없음"), c)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Empty(t, rec.Body.String())
	})

	t.Run("이미 응답이 전송된 경우 무시", func(t *testing.T) {
		c, rec := newTestContext(http.MethodGet)
		require.NoError(t, c.String(http.StatusOK, "done"))

		ErrorHandler(NewBadRequestError("late"), c)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "done", rec.Body.String())
	})
}
