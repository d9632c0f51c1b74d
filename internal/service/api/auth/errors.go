package auth

import (
	"errors"
)

var (
	// ErrAccountMissingInContext Context 내에서 인증된 계정 정보를 조회할 수 없을 때 반환하는 에러입니다.
	ErrAccountMissingInContext = errors.New("Context에서 계정 정보를 찾을 수 없습니다")

	// ErrAccountTypeMismatch Context에 저장된 객체가 *domain.Account 타입이 아닐 때 반환하는 에러입니다.
	ErrAccountTypeMismatch = errors.New("Context에 저장된 계정 정보의 타입이 올바르지 않습니다")
)
