package service

import (
	"context"
	"sync"
)

// Service main에서 일괄적으로 시작하고 종료하는 서비스의 생명주기 인터페이스입니다.
//
// Start는 serviceStopWG.Add(1)이 호출된 상태에서 호출되어야 하며, 구현체는 종료 절차를 마치거나
// 시작에 실패했을 때 반드시 serviceStopWG.Done()을 호출해야 합니다.
type Service interface {
	Start(serviceStopCtx context.Context, serviceStopWG *sync.WaitGroup) error
}
