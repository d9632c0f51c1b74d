package mocks

import (
	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockKeyGenerator는 contract.KeyGenerator 인터페이스의 Mock 구현체입니다.
// 키 충돌 재시도 로직을 검증할 때 예측 가능한 키를 반환하기 위해 사용됩니다.
type MockKeyGenerator struct {
	mock.Mock
}

func (m *MockKeyGenerator) New() contract.ProcessKey {
	args := m.Called()
	return args.Get(0).(contract.ProcessKey)
}
