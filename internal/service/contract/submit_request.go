package contract

import (
	"encoding/json"
	"strings"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
)

var (
	// ErrKindRequired 실행할 작업 종류(Kind)가 비어있을 때 반환하는 에러입니다.
	ErrKindRequired = apperrors.New(apperrors.InvalidInput, "실행할 작업 종류(kind)는 필수입니다")

	// ErrInvalidParams 작업 파라미터가 JSON 객체가 아닐 때 반환하는 에러입니다.
	ErrInvalidParams = apperrors.New(apperrors.InvalidInput, "작업 파라미터(params)는 JSON 객체여야 합니다")
)

// SubmitRequest 백그라운드 작업 실행 요청입니다.
type SubmitRequest struct {
	// Kind 실행할 작업의 종류입니다. 대소문자 및 표기법(camelCase, kebab-case 등)은 정규화됩니다. (Required)
	// 예: "countdown", "file_checksum"
	Kind string

	// Params 작업별 파라미터를 담은 JSON 객체입니다. (Optional)
	Params json.RawMessage

	// Requester 작업을 요청한 주체입니다. 프로세스의 소유자가 됩니다. (Required)
	Requester Requester
}

func (r *SubmitRequest) Validate() error {
	if strings.TrimSpace(r.Kind) == "" {
		return ErrKindRequired
	}
	if len(r.Params) > 0 {
		trimmed := strings.TrimSpace(string(r.Params))
		if trimmed != "null" && (!json.Valid(r.Params) || !strings.HasPrefix(trimmed, "{")) {
			return ErrInvalidParams
		}
	}
	return r.Requester.Validate()
}
