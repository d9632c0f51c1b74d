package response

import "github.com/darkkaiser/process-server/internal/service/contract"

// SubmitResponse 작업 제출 응답. URL로 상태를 폴링합니다.
type SubmitResponse struct {
	Key contract.ProcessKey `json:"key"`
	URL string              `json:"url"`
}
