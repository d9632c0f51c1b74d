package httputil

import (
	"net/http"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
)

// FromAppError 서비스 계층의 apperrors 에러를 HTTP 에러로 변환합니다.
//
// 에러 타입과 HTTP 상태 코드의 대응:
//   - NotFound     -> 404
//   - Forbidden    -> 403
//   - InvalidInput -> 400
//   - Unauthorized -> 401
//   - Unavailable  -> 503
//   - 그 외        -> 500 (내부 메시지는 응답에 노출하지 않음)
func FromAppError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *apperrors.AppError
	if !apperrors.As(err, &appErr) {
		return newHTTPError(http.StatusInternalServerError, constants.ErrMsgInternalServer)
	}

	switch appErr.Type() {
	case apperrors.NotFound:
		return NewNotFoundError(appErr.Message())
	case apperrors.Forbidden:
		return NewForbiddenError(appErr.Message())
	case apperrors.InvalidInput:
		return NewBadRequestError(appErr.Message())
	case apperrors.Unauthorized:
		return NewUnauthorizedError(appErr.Message())
	case apperrors.Unavailable:
		return NewServiceUnavailableError(appErr.Message())
	default:
		return NewInternalServerError(constants.ErrMsgInternalServer)
	}
}
