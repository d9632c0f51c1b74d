package contract

import (
	"strings"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

// ProcessKey 등록된 백그라운드 프로세스를 외부에서 식별하는 불투명한(opaque) 고유 키입니다.
// 한 번 발급된 키는 다른 프로세스를 가리키지 않습니다.
type ProcessKey string

func (k ProcessKey) IsEmpty() bool {
	return len(k) == 0
}

func (k ProcessKey) Validate() error {
	if strings.TrimSpace(string(k)) == "" {
		return apperrors.New(apperrors.InvalidInput, "ProcessKey는 필수입니다")
	}
	return nil
}

func (k ProcessKey) String() string {
	return string(k)
}

// KeyGenerator 프로세스 키를 발급하는 인터페이스입니다.
type KeyGenerator interface {
	// New 새로운 ProcessKey를 생성하여 반환합니다.
	//
	// 여러 고루틴에서 동시에 호출되어도 안전해야 합니다.
	// 드물게 발생하는 충돌은 Registry가 재발급으로 처리합니다.
	New() ProcessKey
}
