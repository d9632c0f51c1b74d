package domain

import "github.com/darkkaiser/process-server/internal/service/contract"

// Account 인증을 통과한 API 계정입니다.
type Account struct {
	ID    string
	Title string

	// Admin 관리자 계정은 소유자와 무관하게 모든 프로세스를 취소할 수 있습니다.
	Admin bool
}

// Requester 프로세스 서비스에 전달할 요청자 정보로 변환합니다.
func (a *Account) Requester() contract.Requester {
	return contract.Requester{ID: a.ID, Admin: a.Admin}
}
