package process

import (
	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
)

var (
	// ErrServiceNotRunning 서비스가 시작되기 전이거나 종료 중일 때 작업 제출을 거부하는 에러입니다.
	ErrServiceNotRunning = apperrors.New(apperrors.Unavailable, "프로세스 서비스가 실행 중이 아닙니다")

	// ErrQueueFull 대기열이 가득 차 요청 시간 내에 작업을 등록하지 못했을 때 반환하는 에러입니다.
	ErrQueueFull = apperrors.New(apperrors.Unavailable, "작업 대기열이 가득 찼습니다. 잠시 후 다시 시도해 주세요")
)

// NewErrProcessNotFound 키에 해당하는 프로세스가 없을 때의 에러를 생성합니다.
func NewErrProcessNotFound(key contract.ProcessKey) error {
	return apperrors.Newf(apperrors.NotFound, "프로세스를 찾을 수 없습니다 (key=%s)", key)
}

// NewErrCancelForbidden 취소 권한이 없는 요청자에 대한 에러를 생성합니다.
func NewErrCancelForbidden(key contract.ProcessKey, requester contract.Requester) error {
	return apperrors.Newf(apperrors.Forbidden, "프로세스를 취소할 권한이 없습니다 (key=%s, requester=%s)", key, requester.ID)
}

// NewErrUnsupportedKind 카탈로그에 없는 작업 종류에 대한 에러를 생성합니다.
func NewErrUnsupportedKind(kind string) error {
	return apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 작업 종류입니다: '%s'", kind)
}
