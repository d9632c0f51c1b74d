package auth

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/darkkaiser/process-server/internal/config"
	"github.com/darkkaiser/process-server/internal/service/api/model/response"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAppConfig(accounts ...config.AccountConfig) *config.AppConfig {
	return &config.AppConfig{
		ProcessAPI: config.ProcessAPIConfig{
			Accounts: accounts,
		},
	}
}

func TestNewAuthenticator(t *testing.T) {
	t.Parallel()

	t.Run("계정 로드", func(t *testing.T) {
		t.Parallel()

		a := NewAuthenticator(newTestAppConfig(
			config.AccountConfig{ID: "alice", Title: "Alice", AppKey: "key-a"},
			config.AccountConfig{ID: "root", Title: "Root", AppKey: "key-r", Admin: true},
		))

		require.Len(t, a.accounts, 2)
		assert.Equal(t, "Alice", a.accounts["alice"].account.Title)
		assert.False(t, a.accounts["alice"].account.Admin)
		assert.True(t, a.accounts["root"].account.Admin)
	})

	t.Run("계정 없음", func(t *testing.T) {
		t.Parallel()

		a := NewAuthenticator(newTestAppConfig())
		assert.Empty(t, a.accounts)
	})

	t.Run("nil 설정은 panic", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() { NewAuthenticator(nil) })
	})
}

func TestAuthenticator_Authenticate(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator(newTestAppConfig(
		config.AccountConfig{ID: "alice", Title: "Alice", AppKey: "valid-key"},
		config.AccountConfig{ID: "root", Title: "Root", AppKey: "root-key", Admin: true},
	))

	tests := []struct {
		name        string
		accountID   string
		appKey      string
		wantErr     bool
		wantMessage string
		wantAdmin   bool
	}{
		{name: "인증 성공", accountID: "alice", appKey: "valid-key"},
		{name: "관리자 인증 성공", accountID: "root", appKey: "root-key", wantAdmin: true},
		{name: "등록되지 않은 계정", accountID: "mallory", appKey: "valid-key", wantErr: true, wantMessage: "등록되지 않은 account_id입니다 (ID: mallory)"},
		{name: "App Key 불일치", accountID: "alice", appKey: "wrong-key", wantErr: true, wantMessage: "app_key가 유효하지 않습니다 (account_id: alice)"},
		{name: "빈 App Key", accountID: "alice", appKey: "", wantErr: true, wantMessage: "app_key가 유효하지 않습니다 (account_id: alice)"},
		{name: "다른 계정의 App Key", accountID: "alice", appKey: "root-key", wantErr: true, wantMessage: "app_key가 유효하지 않습니다 (account_id: alice)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			account, err := a.Authenticate(tt.accountID, tt.appKey)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.accountID, account.ID)
				assert.Equal(t, tt.wantAdmin, account.Admin)
				return
			}

			require.Error(t, err)
			assert.Nil(t, account)

			var he *echo.HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, http.StatusUnauthorized, he.Code)

			body, ok := he.Message.(response.ErrorResponse)
			require.True(t, ok)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}
}

func TestAuthenticator_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	a := NewAuthenticator(newTestAppConfig(
		config.AccountConfig{ID: "alice", AppKey: "key-a"},
		config.AccountConfig{ID: "bob", AppKey: "key-b"},
	))

	const goroutines = 100
	var wg sync.WaitGroup
	errCh := make(chan error, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			if idx%2 == 0 {
				if _, err := a.Authenticate("alice", "key-a"); err != nil {
					errCh <- fmt.Errorf("alice 인증 실패: %w", err)
				}
				return
			}
			if _, err := a.Authenticate("bob", "wrong"); err == nil {
				errCh <- fmt.Errorf("잘못된 키로 인증에 성공했습니다")
			}
		}(i)
	}

	wg.Wait()
	close(errCh)

	for err := range errCh {
		t.Error(err)
	}
}
