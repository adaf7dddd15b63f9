package errorx

import (
	"errors"
	"fmt"

	"spectro/infra/errorx/errCode"
)

// Error 带错误码的错误, 调用方用码区分处理分支
type Error struct {
	Code errCode.Code
	Msg  string
}

func New(code errCode.Code, msg string) *Error {
	return &Error{Code: code, Msg: msg}
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Msg)
}

// CodeOf 提取错误码, 非errorx错误返回OK
func CodeOf(err error) errCode.Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return errCode.OK
}

func IsCode(err error, code errCode.Code) bool {
	return CodeOf(err) == code
}
