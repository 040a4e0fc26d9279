package errors

import (
	"errors"
	"fmt"
)

// 표준 라이브러리 함수 재노출
var (
	New    = errors.New
	Unwrap = errors.Unwrap
	Is     = errors.Is
	As     = errors.As
)

// Error는 기본 에러 인터페이스를 확장합니다
type Error interface {
	error
	Code() string
	Message() string
	Unwrap() error
}

// AppError는 코드, 사용자에게 보여줄 메시지, 원인 에러를 함께 담습니다.
type AppError struct {
	code    string
	message string
	err     error
}

func (e *AppError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %s", e.message, e.err.Error())
	}
	return e.message
}

func (e *AppError) Code() string {
	return e.code
}

// Message는 원인 에러를 제외한 메시지만 반환합니다. 응답 본문에는 이 값만 노출합니다.
func (e *AppError) Message() string {
	return e.message
}

func (e *AppError) Unwrap() error {
	return e.err
}

// Is는 코드와 메시지가 같은 AppError를 같은 에러로 취급합니다.
// 패키지 수준 에러 값에 원인을 붙여도 errors.Is 비교가 유지됩니다.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.code == e.code && t.message == e.message
}

// WithCause는 같은 코드와 메시지에 원인 에러를 붙인 복사본을 반환합니다.
func (e *AppError) WithCause(err error) *AppError {
	return &AppError{code: e.code, message: e.message, err: err}
}

// NewAppError는 새 애플리케이션 에러를 생성합니다
func NewAppError(code string, message string, err error) *AppError {
	return &AppError{
		code:    code,
		message: message,
		err:     err,
	}
}

// Wrap은 기존 에러를 래핑합니다
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}

	// 기존 AppError인 경우 코드를 유지합니다
	var appErr *AppError
	if As(err, &appErr) {
		return NewAppError(appErr.Code(), message, err)
	}

	return NewAppError(ErrInternal, message, err)
}

// CodeOf는 에러 체인에서 찾은 첫 AppError의 코드를 반환합니다. 없으면 ErrInternal.
func CodeOf(err error) string {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr.Code()
	}
	return ErrInternal
}
