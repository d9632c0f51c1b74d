package process

import "github.com/darkkaiser/process-server/internal/service/contract"

// CanCancel 요청자가 핸들을 취소할 수 있는지 판단하는 순수 함수입니다.
//
// 관리자는 모든 프로세스를 취소할 수 있고, 소유자는 소유자 취소가 허용된 자신의 프로세스만 취소할 수 있습니다.
// 핸들을 변경하기 전에 호출해야 합니다.
func CanCancel(requester contract.Requester, h HandleSnapshot) bool {
	if requester.Admin {
		return true
	}
	return h.CancellableByOwner && requester.ID != "" && requester.ID == h.Owner
}
