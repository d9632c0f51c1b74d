package contract

import "time"

// StatusCode 외부에 노출되는 프로세스 상태 코드입니다.
type StatusCode string

const (
	StatusRunning   StatusCode = "Running"
	StatusFinished  StatusCode = "Finished"
	StatusCancelled StatusCode = "Cancelled"
	StatusFailed    StatusCode = "Failed"
)

// CancelledMessage 취소된 프로세스의 상태 메시지입니다.
const CancelledMessage = "Cancelled"

// ProcessStatus 폴링 클라이언트에게 제공되는 프로세스 상태 뷰입니다.
//
// 프로세스 핸들의 스냅샷으로부터 파생되며, 읽기 전용입니다.
type ProcessStatus struct {
	Key                ProcessKey `json:"key"`
	Kind               string     `json:"kind"`
	Owner              string     `json:"owner"`
	StatusCode         StatusCode `json:"status_code"`
	PercentageComplete int        `json:"percentage_complete"`
	URL                string     `json:"url"`
	Messages           []string   `json:"messages"`
	CreatedAt          time.Time  `json:"created_at"`
	StartedAt          *time.Time `json:"started_at,omitempty"`
	FinishedAt         *time.Time `json:"finished_at,omitempty"`
	CancelledBy        string     `json:"cancelled_by,omitempty"`
	CancelledAt        *time.Time `json:"cancelled_at,omitempty"`
}
