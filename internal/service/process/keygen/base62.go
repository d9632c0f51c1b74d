package keygen

import (
	"sync/atomic"
	"time"

	"github.com/darkkaiser/process-server/internal/service/contract"
)

// base62Chars ASCII 순서(0-9, A-Z, a-z)를 따르므로 키의 사전순 정렬이 생성 순서와 대략 일치합니다.
const base62Chars = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	base62Len = int64(len(base62Chars))

	// seqWidth 시퀀스 부분의 고정 길이입니다.
	seqWidth = 6
)

// Base62 [타임스탬프(나노초)][시퀀스 6자리] 형태의 URL-safe 키를 발급합니다.
//
// 원자적 카운터를 결합하므로 같은 나노초 안에서 여러 고루틴이 호출해도 키가 겹치지 않습니다.
// 예: "2Xk9pL3mQ7a000001"
type Base62 struct {
	counter atomic.Uint32
}

func (g *Base62) New() contract.ProcessKey {
	now := time.Now().UnixNano()
	seq := g.counter.Add(1)

	b := make([]byte, 0, 18)
	b = appendBase62(b, now, 0)
	b = appendBase62(b, int64(seq), seqWidth)

	return contract.ProcessKey(b)
}

// appendBase62 num을 Base62로 인코딩하여 dst에 덧붙입니다.
// width보다 짧으면 앞을 '0'으로 채우고, 길면 자르지 않습니다.
func appendBase62(dst []byte, num int64, width int) []byte {
	if num < 0 {
		num = -num
	}

	var tmp [20]byte
	i := len(tmp)
	for num > 0 {
		i--
		tmp[i] = base62Chars[num%base62Len]
		num /= base62Len
	}
	for len(tmp)-i < max(width, 1) {
		i--
		tmp[i] = base62Chars[0]
	}

	return append(dst, tmp[i:]...)
}
