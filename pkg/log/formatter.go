package log

// discardFormatter 아무것도 출력하지 않는 포맷터입니다.
//
// 실제 출력은 hook이 담당하므로 logrus 기본 출력 경로(io.Discard)에서의 포맷팅 비용을 없애기 위해 사용합니다.
type discardFormatter struct{}

func (discardFormatter) Format(*Entry) ([]byte, error) {
	return nil, nil
}
