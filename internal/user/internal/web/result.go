package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/project52/internal/user/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	invalidInputResult = ginx.Result{
		Code: errs.InvalidInput.Code,
		Msg:  errs.InvalidInput.Msg,
	}
	invalidCredentialResult = ginx.Result{
		Code: errs.InvalidCredential.Code,
		Msg:  errs.InvalidCredential.Msg,
	}
)
