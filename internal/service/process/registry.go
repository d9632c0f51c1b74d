package process

import (
	"slices"
	"strings"
	"sync"
	"time"

	apperrors "github.com/darkkaiser/process-server/internal/pkg/errors"
	"github.com/darkkaiser/process-server/internal/service/contract"
	applog "github.com/darkkaiser/process-server/pkg/log"
)

// maxRegisterRetries 키 충돌 시 새 키를 발급받아 등록을 재시도하는 최대 횟수입니다.
const maxRegisterRetries = 3

// Entry 레지스트리 목록 조회 결과의 한 항목입니다.
type Entry struct {
	Key    contract.ProcessKey
	Handle *Handle
}

// Registry 프로세스 키와 핸들의 매핑을 보관하는 동시성 안전한 인메모리 저장소입니다.
//
// 전역 싱글톤을 두지 않고 main에서 명시적으로 생성하여 필요한 컴포넌트에 주입합니다.
// 모든 동기화는 내부에서 처리하며 외부에 락을 노출하지 않습니다.
type Registry struct {
	mu      sync.RWMutex
	handles map[contract.ProcessKey]*Handle

	keyGenerator contract.KeyGenerator

	now func() time.Time
}

func NewRegistry(keyGenerator contract.KeyGenerator) *Registry {
	if keyGenerator == nil {
		panic("KeyGenerator는 필수입니다")
	}

	return &Registry{
		handles:      make(map[contract.ProcessKey]*Handle),
		keyGenerator: keyGenerator,
		now:          time.Now,
	}
}

// Register 새 키를 발급하여 Pending 상태의 핸들을 생성하고 등록합니다.
//
// 키 발급은 락 바깥에서 수행하고, 등록 직전에 쓰기 락 안에서 충돌 여부를 확인합니다.
// 충돌하면 최대 3회까지 새 키로 재시도하며, 모두 실패하면 Conflict 에러를 반환합니다.
func (r *Registry) Register(owner, kind string, cancellableByOwner bool) (*Handle, error) {
	for i := range maxRegisterRetries {
		key := r.keyGenerator.New()
		if key.IsEmpty() {
			return nil, apperrors.New(apperrors.Internal, "키 생성기가 빈 프로세스 키를 발급했습니다")
		}

		h := newHandle(key, owner, kind, cancellableByOwner, r.now)

		r.mu.Lock()
		if _, exists := r.handles[key]; !exists {
			r.handles[key] = h
			r.mu.Unlock()

			return h, nil
		}
		r.mu.Unlock()

		h.release()

		applog.WithComponentAndFields(component, applog.Fields{
			"process_key": key,
			"attempt":     i + 1,
			"max_retries": maxRegisterRetries,
		}).Warn("프로세스 키 충돌 감지: 새 키를 발급받아 등록을 재시도합니다")
	}

	return nil, apperrors.Newf(apperrors.Conflict, "프로세스 키 충돌이 반복되어 등록에 실패했습니다 (retries=%d)", maxRegisterRetries)
}

// Get 키에 해당하는 핸들을 반환합니다. 작업 실행에 의해 블로킹되지 않습니다.
func (r *Registry) Get(key contract.ProcessKey) (*Handle, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	h, ok := r.handles[key]
	return h, ok
}

// ListAll 모든 핸들의 시점 스냅샷을 생성 시각, 키 순으로 정렬하여 반환합니다.
func (r *Registry) ListAll() []Entry {
	r.mu.RLock()
	entries := make([]Entry, 0, len(r.handles))
	for key, h := range r.handles {
		entries = append(entries, Entry{Key: key, Handle: h})
	}
	r.mu.RUnlock()

	slices.SortFunc(entries, func(a, b Entry) int {
		if c := a.Handle.CreatedAt().Compare(b.Handle.CreatedAt()); c != 0 {
			return c
		}
		return strings.Compare(string(a.Key), string(b.Key))
	})

	return entries
}

// ListRunning 종료되지 않은(Pending, Running) 핸들만 반환합니다.
func (r *Registry) ListRunning() []Entry {
	return slices.DeleteFunc(r.ListAll(), func(e Entry) bool {
		return e.Handle.IsDone()
	})
}

// Remove 핸들을 레지스트리에서 제거합니다. 보관 기간이 지난 종료 핸들을 정리할 때 사용합니다.
func (r *Registry) Remove(key contract.ProcessKey) bool {
	r.mu.Lock()
	h, ok := r.handles[key]
	delete(r.handles, key)
	r.mu.Unlock()

	if ok {
		h.release()
	}
	return ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}
