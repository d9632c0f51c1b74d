// Package testutil 여러 패키지의 테스트에서 공통으로 사용하는 헬퍼를 제공합니다.
package testutil

import (
	"fmt"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// FreePort 테스트 서버가 바인딩할 수 있는 임의의 로컬 포트를 반환합니다.
func FreePort(t testing.TB) int {
	t.Helper()

	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "사용 가능한 포트를 할당받지 못했습니다")
	defer l.Close()

	return l.Addr().(*net.TCPAddr).Port
}

// WaitForHTTP 주어진 URL이 응답할 때까지 대기합니다. 응답 코드는 검사하지 않습니다.
func WaitForHTTP(t testing.TB, client *http.Client, url string, timeout time.Duration) {
	t.Helper()

	if client == nil {
		client = &http.Client{Timeout: 500 * time.Millisecond}
	}

	require.Eventually(t, func() bool {
		resp, err := client.Get(url)
		if err != nil {
			return false
		}
		resp.Body.Close()
		return true
	}, timeout, 20*time.Millisecond, fmt.Sprintf("%s 가 %v 안에 응답하지 않았습니다", url, timeout))
}
