package auth_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/darkkaiser/process-server/internal/service/api/auth"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/model/domain"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestGetAccount(t *testing.T) {
	t.Parallel()

	t.Run("저장된 계정 조회", func(t *testing.T) {
		t.Parallel()

		c := newContext()
		expected := &domain.Account{ID: "alice"}
		auth.SetAccount(c, expected)

		actual, err := auth.GetAccount(c)
		require.NoError(t, err)
		assert.Same(t, expected, actual)
		assert.Equal(t, "alice", actual.Requester().ID)
	})

	t.Run("계정 없음", func(t *testing.T) {
		t.Parallel()

		_, err := auth.GetAccount(newContext())
		assert.ErrorIs(t, err, auth.ErrAccountMissingInContext)
	})

	t.Run("잘못된 타입", func(t *testing.T) {
		t.Parallel()

		c := newContext()
		c.Set(constants.ContextKeyAccount, "alice")

		_, err := auth.GetAccount(c)
		assert.ErrorIs(t, err, auth.ErrAccountTypeMismatch)
	})
}

func TestMustGetAccount(t *testing.T) {
	t.Parallel()

	t.Run("계정 반환", func(t *testing.T) {
		t.Parallel()

		c := newContext()
		auth.SetAccount(c, &domain.Account{ID: "root", Admin: true})

		account := auth.MustGetAccount(c)
		assert.True(t, account.Requester().Admin)
	})

	t.Run("계정 없으면 panic", func(t *testing.T) {
		t.Parallel()

		expected := fmt.Sprintf(constants.PanicMsgAuthContextAccountNotFound, auth.ErrAccountMissingInContext)
		assert.PanicsWithValue(t, expected, func() {
			auth.MustGetAccount(newContext())
		})
	})
}
