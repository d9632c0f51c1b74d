package job

import (
	"encoding/json"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/pkg/maputil"
	"github.com/tidwall/gjson"
)

// decodeParams JSON 파라미터를 out이 가리키는 구조체에 병합합니다.
// out에 미리 채워둔 값은 기본값으로 유지되며, 정의되지 않은 키는 거부합니다.
func decodeParams[T any](params json.RawMessage, out *T) error {
	if len(params) == 0 {
		return nil
	}

	parsed := gjson.ParseBytes(params)
	if parsed.Type == gjson.Null {
		return nil
	}
	if !parsed.IsObject() {
		return apperrors.New(apperrors.InvalidInput, "작업 파라미터(params)는 JSON 객체여야 합니다")
	}

	if err := maputil.DecodeTo(parsed.Value(), out, maputil.WithErrorUnused(true)); err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, "작업 파라미터를 해석할 수 없습니다")
	}

	return nil
}
