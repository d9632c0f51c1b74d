package mocks

import (
	"context"

	"github.com/darkkaiser/process-server/internal/service/contract"
	"github.com/stretchr/testify/mock"
)

// MockProcessManager는 contract.ProcessManager 인터페이스의 Mock 구현체입니다.
type MockProcessManager struct {
	mock.Mock
}

func (m *MockProcessManager) Submit(ctx context.Context, req *contract.SubmitRequest) (contract.ProcessKey, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(contract.ProcessKey), args.Error(1)
}

func (m *MockProcessManager) Status(key contract.ProcessKey, locator string) (contract.ProcessStatus, error) {
	args := m.Called(key, locator)
	return args.Get(0).(contract.ProcessStatus), args.Error(1)
}

// List locatorFor는 함수 값이므로 mock.Anything으로 매칭하고, 반환 전에 각 키에 적용합니다.
func (m *MockProcessManager) List(includeFinished bool, locatorFor func(contract.ProcessKey) string) []contract.ProcessStatus {
	args := m.Called(includeFinished, locatorFor)
	statuses, _ := args.Get(0).([]contract.ProcessStatus)
	for i := range statuses {
		statuses[i].URL = locatorFor(statuses[i].Key)
	}
	return statuses
}

func (m *MockProcessManager) Cancel(key contract.ProcessKey, requester contract.Requester, locator string) (contract.ProcessStatus, error) {
	args := m.Called(key, requester, locator)
	return args.Get(0).(contract.ProcessStatus), args.Error(1)
}

func (m *MockProcessManager) Health() error {
	args := m.Called()
	return args.Error(0)
}
