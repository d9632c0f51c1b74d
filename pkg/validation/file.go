package validation

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ValidateDir 지정된 경로가 읽기 가능한 디렉터리인지 검증합니다.
func ValidateDir(path string) error {
	if strings.TrimSpace(path) == "" {
		return fmt.Errorf("디렉터리 경로가 비어 있습니다")
	}

	path = filepath.Clean(path)

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("디렉터리가 존재하지 않습니다 (path=%q)", path)
		}
		return fmt.Errorf("디렉터리 정보를 확인하는 중 오류가 발생했습니다 (path=%q): %w", path, err)
	}

	if !info.IsDir() {
		return fmt.Errorf("해당 경로는 디렉터리여야 합니다 (path=%q, mode=%s)", path, info.Mode())
	}

	// 권한 비트만으로는 ACL 환경을 판단할 수 없으므로 실제로 열어본다.
	r, err := os.OpenRoot(path)
	if err != nil {
		return fmt.Errorf("디렉터리를 읽을 수 있는 권한이 없습니다 (path=%q): %w", path, err)
	}
	_ = r.Close()

	return nil
}
