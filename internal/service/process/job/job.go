// Package job 프로세스 서비스가 실행하는 작업의 정의와 기본 제공 작업 카탈로그를 담고 있습니다.
//
// 작업 본문은 전달받은 컨텍스트를 주기적으로 확인하여, 취소되면 즉시 ctx.Err()를 반환해야 합니다.
// 취소는 협력적으로만 동작하므로 컨텍스트를 확인하지 않는 작업은 끝까지 실행됩니다.
package job

import (
	"context"
	"encoding/json"
)

// ProgressReporter 작업이 진행률을 기록하는 대상입니다. 프로세스 핸들이 이를 구현합니다.
type ProgressReporter interface {
	// RecordProgress 현재 진행 값과 최대 진행 값을 기록합니다. max가 0이면 진행률을 알 수 없음을 뜻합니다.
	RecordProgress(current, max int64) error
}

// Job 실행 가능한 작업 본문입니다.
type Job interface {
	// Run 작업을 실행하고 결과를 반환합니다.
	// 반환된 결과는 상태 조회 시 fmt 표현으로 메시지에 포함됩니다.
	Run(ctx context.Context, progress ProgressReporter) (any, error)
}

// Func 일반 함수를 Job으로 사용하기 위한 어댑터입니다.
type Func func(ctx context.Context, progress ProgressReporter) (any, error)

func (f Func) Run(ctx context.Context, progress ProgressReporter) (any, error) {
	return f(ctx, progress)
}

// Factory 요청 파라미터로부터 작업 인스턴스를 생성합니다.
// 파라미터가 올바르지 않으면 InvalidInput 에러를 반환해야 합니다.
type Factory func(params json.RawMessage) (Job, error)

// Definition 카탈로그에 등록되는 작업 종류의 정의입니다.
type Definition struct {
	// Kind 작업 종류 이름입니다. 등록 시 snake_case로 정규화됩니다.
	Kind string

	// Description 작업에 대한 간단한 설명입니다.
	Description string

	// CancellableByOwner 소유자가 자신의 프로세스를 취소할 수 있는지 여부입니다.
	// false이면 관리자만 취소할 수 있습니다.
	CancellableByOwner bool

	New Factory
}
