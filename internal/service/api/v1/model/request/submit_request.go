package request

import "encoding/json"

// SubmitRequest 백그라운드 작업 제출 요청 본문
type SubmitRequest struct {
	// Kind 실행할 작업 종류 (예: "countdown", "file_checksum")
	Kind string `json:"kind" validate:"required,max=64,printascii" korean:"작업 종류(kind)"`

	// Params 작업별 파라미터 JSON 객체 (Optional)
	Params json.RawMessage `json:"params,omitempty" swaggertype:"object" korean:"작업 파라미터(params)"`
}
