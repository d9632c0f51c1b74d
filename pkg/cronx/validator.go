package cronx

import (
	"fmt"
	"strings"
)

// Validate 주어진 Cron 표현식이 StandardParser로 해석 가능한지 검증합니다.
// 앞뒤 공백은 무시합니다.
func Validate(spec string) error {
	trimmed := strings.TrimSpace(spec)
	if trimmed == "" {
		return fmt.Errorf("Cron 표현식이 비어있습니다")
	}

	if _, err := StandardParser().Parse(trimmed); err != nil {
		if !strings.HasPrefix(trimmed, "@") && len(strings.Fields(trimmed)) == 5 {
			return fmt.Errorf("Cron 표현식은 초 단위를 포함한 6필드 형식이어야 합니다 (spec=%q): %w", spec, err)
		}
		return fmt.Errorf("Cron 표현식 파싱 실패 (spec=%q): %w", spec, err)
	}

	return nil
}
