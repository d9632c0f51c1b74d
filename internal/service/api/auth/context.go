package auth

import (
	"fmt"

	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/model/domain"
	"github.com/labstack/echo/v4"
)

// SetAccount 인증된 계정 정보를 Context에 저장합니다.
func SetAccount(c echo.Context, account *domain.Account) {
	c.Set(constants.ContextKeyAccount, account)
}

// GetAccount Context에서 계정 정보를 조회합니다.
func GetAccount(c echo.Context) (*domain.Account, error) {
	val := c.Get(constants.ContextKeyAccount)
	if val == nil {
		return nil, ErrAccountMissingInContext
	}

	account, ok := val.(*domain.Account)
	if !ok || account == nil {
		return nil, ErrAccountTypeMismatch
	}

	return account, nil
}

// MustGetAccount 인증 미들웨어를 통과하여 계정 정보가 반드시 존재한다고 보장될 때 사용합니다.
// 조회에 실패하면 panic이 발생합니다.
func MustGetAccount(c echo.Context) *domain.Account {
	account, err := GetAccount(c)
	if err != nil {
		panic(fmt.Sprintf(constants.PanicMsgAuthContextAccountNotFound, err))
	}
	return account
}
