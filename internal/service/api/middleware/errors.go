package middleware

import (
	"fmt"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/api/constants"
	"github.com/darkkaiser/process-server/internal/service/api/httputil"
)

var (
	// ErrAppKeyRequired API 호출 자격 증명인 App Key가 누락되었을 때 반환하는 에러입니다.
	ErrAppKeyRequired = httputil.NewBadRequestError(constants.ErrMsgAuthAppKeyRequired)

	// ErrAccountIDRequired 계정 식별자(X-Account-Id 헤더)가 누락되었을 때 반환하는 에러입니다.
	ErrAccountIDRequired = httputil.NewBadRequestError(constants.ErrMsgAuthAccountIDRequired)

	// ErrRateLimitExceeded 허용된 요청 빈도를 초과한 클라이언트에게 반환할 429 에러입니다.
	ErrRateLimitExceeded = httputil.NewTooManyRequestsError(constants.ErrMsgTooManyRequests)

	// ErrUnsupportedMediaType 지원하지 않는 Content-Type 요청에 반환할 415 에러입니다.
	ErrUnsupportedMediaType = httputil.NewUnsupportedMediaTypeError(constants.ErrMsgUnsupportedMediaType)
)

// NewErrPanicRecovered 캡처된 패닉 값을 내부 시스템 오류로 래핑하여 새로운 에러를 생성합니다.
func NewErrPanicRecovered(r any) error {
	return apperrors.New(apperrors.Internal, fmt.Sprintf("%v", r))
}
