// Package keygen 프로세스 키 생성기를 제공합니다.
package keygen

import (
	"github.com/darkkaiser/process-server/internal/config"
	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/google/uuid"
)

// New 설정된 키 형식(base62, uuid)에 맞는 키 생성기를 반환합니다.
func New(format string) (contract.KeyGenerator, error) {
	switch format {
	case config.KeyFormatBase62, "":
		return &Base62{}, nil
	case config.KeyFormatUUID:
		return UUID{}, nil
	default:
		return nil, apperrors.Newf(apperrors.InvalidInput, "지원하지 않는 키 형식입니다: '%s'", format)
	}
}

// UUID 랜덤(v4) UUID 문자열을 키로 발급합니다.
type UUID struct{}

func (UUID) New() contract.ProcessKey {
	return contract.ProcessKey(uuid.NewString())
}
