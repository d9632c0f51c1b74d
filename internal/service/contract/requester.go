package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

// Requester 프로세스를 제출하거나 취소를 요청한 주체입니다.
type Requester struct {
	// ID 인증된 계정 ID입니다. 프로세스의 소유자(Owner)로 기록됩니다.
	ID string

	// Admin 관리자 권한 보유 여부입니다. 관리자는 모든 프로세스를 취소할 수 있습니다.
	Admin bool
}

func (r Requester) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return apperrors.New(apperrors.InvalidInput, "요청자 ID는 필수입니다")
	}
	return nil
}

func (r Requester) String() string {
	if r.Admin {
		return r.ID + "(admin)"
	}
	return r.ID
}
