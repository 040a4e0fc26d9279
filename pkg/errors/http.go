package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPError는 에러를 Echo HTTP 에러로 변환합니다.
// 메시지는 가장 바깥 AppError의 Message이며 원인은 Internal에 보관됩니다.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	var appErr *AppError
	if As(err, &appErr) {
		he := echo.NewHTTPError(ToHTTPStatus(appErr.Code()), appErr.Message())
		he.Internal = err
		return he
	}

	he := echo.NewHTTPError(http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
	he.Internal = err
	return he
}

// FromHTTPError는 Echo HTTP 에러를 내부 에러로 변환합니다
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var appErr *AppError
	if As(err, &appErr) {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		msg, ok := echoErr.Message.(string)
		if !ok {
			msg = http.StatusText(echoErr.Code)
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, echoErr.Internal)
	}

	return NewAppError(ErrInternal, http.StatusText(http.StatusInternalServerError), err)
}
