package auth

import (
	"crypto/subtle"
	"fmt"

	"github.com/darkkaiser/process-server/internal/config"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/httputil"
	"github.com/darkkaiser/process-server/internal/service/api/model/domain"
	applog "github.com/darkkaiser/process-server/pkg/log"
	"github.com/darkkaiser/process-server/pkg/strutil"
)

// credential 계정과 App Key의 쌍입니다. App Key는 Account에 노출하지 않습니다.
type credential struct {
	account *domain.Account
	appKey  string
}

// Authenticator 설정 파일에 등록된 계정(process_api.accounts)으로 API 요청을 인증합니다.
//
// 계정 맵은 생성 후 변경되지 않으므로 여러 고루틴에서 동시에 Authenticate를 호출해도 안전합니다.
type Authenticator struct {
	accounts map[string]credential
}

// NewAuthenticator 설정에서 계정을 로드하여 Authenticator를 생성합니다.
func NewAuthenticator(appConfig *config.AppConfig) *Authenticator {
	if appConfig == nil {
		panic(constants.PanicMsgAppConfigRequired)
	}

	accounts := make(map[string]credential, len(appConfig.ProcessAPI.Accounts))
	for _, account := range appConfig.ProcessAPI.Accounts {
		accounts[account.ID] = credential{
			account: &domain.Account{
				ID:    account.ID,
				Title: account.Title,
				Admin: account.Admin,
			},
			appKey: account.AppKey,
		}
	}

	return &Authenticator{
		accounts: accounts,
	}
}

// Authenticate 계정을 찾고 App Key를 비교합니다.
// 성공 시 Account 객체를 반환하고, 실패 시 401 HTTP 에러를 반환합니다.
func (a *Authenticator) Authenticate(accountID, appKey string) (*domain.Account, error) {
	cred, ok := a.accounts[accountID]

	if !ok {
		return nil, httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedUnknownAccount, accountID))
	}

	if subtle.ConstantTimeCompare([]byte(cred.appKey), []byte(appKey)) != 1 {
		applog.WithComponentAndFields(constants.ComponentMiddlewareAuthentication, applog.Fields{
			"account_id":       accountID,
			"account_title":    cred.account.Title,
			"received_app_key": strutil.Mask(appKey),
		}).Warn(constants.LogMsgAuthAppKeyMismatch)

		return nil, httputil.NewUnauthorizedError(fmt.Sprintf(constants.ErrMsgUnauthorizedInvalidAppKey, accountID))
	}

	return cred.account, nil
}
