package contract

import "context"

// ProcessManager 백그라운드 프로세스의 제출, 조회, 취소를 담당하는 인터페이스입니다.
//
// 전송 계층(REST 등)에 독립적이며, API 서비스는 이 인터페이스에만 의존합니다.
type ProcessManager interface {
	// Submit 작업을 대기열에 등록하고 발급된 키를 반환합니다.
	// 대기열이 가득 차 ctx가 만료될 때까지 자리가 나지 않으면 Unavailable 에러를 반환합니다.
	Submit(ctx context.Context, req *SubmitRequest) (ProcessKey, error)

	// Status 키에 해당하는 프로세스의 상태 뷰를 반환합니다. 키가 없으면 NotFound 에러를 반환합니다.
	Status(key ProcessKey, locator string) (ProcessStatus, error)

	// List 프로세스 상태 목록을 생성 시각 순으로 반환합니다.
	// includeFinished가 false이면 종료되지 않은 프로세스만 포함합니다.
	List(includeFinished bool, locatorFor func(ProcessKey) string) []ProcessStatus

	// Cancel 취소 프로토콜을 적용한 뒤의 상태 뷰를 반환합니다.
	//   - 키가 없으면 NotFound
	//   - 이미 종료된 프로세스는 권한 확인 없이 현재 상태를 그대로 반환
	//   - 권한이 없으면 Forbidden (프로세스 상태는 변하지 않음)
	Cancel(key ProcessKey, requester Requester, locator string) (ProcessStatus, error)

	// Health 서비스가 작업을 받을 수 있는 상태이면 nil을 반환합니다.
	Health() error
}
