package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errDiskFull = errors.New("disk full")

func TestErrorType_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		errType ErrorType
		want    string
	}{
		{Unknown, "Unknown"},
		{Internal, "Internal"},
		{System, "System"},
		{Unauthorized, "Unauthorized"},
		{Forbidden, "Forbidden"},
		{InvalidInput, "InvalidInput"},
		{Conflict, "Conflict"},
		{NotFound, "NotFound"},
		{ExecutionFailed, "ExecutionFailed"},
		{Timeout, "Timeout"},
		{Unavailable, "Unavailable"},
		{ErrorType(-1), "ErrorType(-1)"},
		{ErrorType(99), "ErrorType(99)"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.errType.String())
		})
	}
}

func TestNewAndWrap(t *testing.T) {
	t.Parallel()

	t.Run("New는 타입과 메시지를 보관한다", func(t *testing.T) {
		t.Parallel()

		err := New(NotFound, "프로세스를 찾을 수 없습니다")

		var appErr *AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, NotFound, appErr.Type())
		assert.Equal(t, "프로세스를 찾을 수 없습니다", appErr.Message())
		assert.Equal(t, "[NotFound] 프로세스를 찾을 수 없습니다", err.Error())
		require.NotEmpty(t, appErr.Stack())
		assert.Equal(t, "errors_test.go", appErr.Stack()[0].File)
	})

	t.Run("Newf는 메시지를 포맷한다", func(t *testing.T) {
		t.Parallel()

		err := Newf(Forbidden, "취소 권한이 없습니다 (requester: %s)", "bob")
		assert.Equal(t, "[Forbidden] 취소 권한이 없습니다 (requester: bob)", err.Error())
	})

	t.Run("Wrap은 원인을 체인으로 연결한다", func(t *testing.T) {
		t.Parallel()

		err := Wrap(errDiskFull, ExecutionFailed, "작업 실행 실패")
		assert.Equal(t, "[ExecutionFailed] 작업 실행 실패: disk full", err.Error())
		assert.ErrorIs(t, err, errDiskFull)
		assert.Equal(t, errDiskFull, RootCause(err))
	})

	t.Run("nil 에러는 Wrap하지 않는다", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, Wrap(nil, Internal, "무시"))
		assert.NoError(t, Wrapf(nil, Internal, "무시 %d", 1))
	})
}

func TestIsAndUnderlyingType(t *testing.T) {
	t.Parallel()

	inner := New(NotFound, "키 없음")
	outer := Wrap(fmt.Errorf("조회 실패: %w", inner), Internal, "상태 조회 실패")

	assert.True(t, Is(outer, NotFound))
	assert.True(t, Is(outer, Internal))
	assert.False(t, Is(outer, Forbidden))
	assert.Equal(t, NotFound, UnderlyingType(outer))
	assert.Equal(t, Unknown, UnderlyingType(errDiskFull))
	assert.Equal(t, Unknown, UnderlyingType(nil))
	assert.Nil(t, RootCause(nil))
}

func TestAppError_Format(t *testing.T) {
	t.Parallel()

	err := Wrap(New(Conflict, "이미 종료된 프로세스입니다"), Internal, "취소 처리 실패")

	verbose := fmt.Sprintf("%+v", err)
	assert.Contains(t, verbose, "[Internal] 취소 처리 실패")
	assert.Contains(t, verbose, "Caused by:")
	assert.Contains(t, verbose, "[Conflict] 이미 종료된 프로세스입니다")
	assert.Contains(t, verbose, "Stack trace:")

	assert.Equal(t, err.Error(), fmt.Sprintf("%v", err))
	assert.Equal(t, err.Error(), fmt.Sprintf("%s", err))
	assert.Equal(t, fmt.Sprintf("%q", err.Error()), fmt.Sprintf("%q", err))
}
