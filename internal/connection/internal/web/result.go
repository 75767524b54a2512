// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/project52/internal/connection/internal/errs"
	"github.com/ecodeclub/project52/internal/connection/internal/service"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	selfRequestResult = ginx.Result{
		Code: errs.SelfRequest.Code,
		Msg:  errs.SelfRequest.Msg,
	}
	userNotFoundResult = ginx.Result{
		Code: errs.UserNotFound.Code,
		Msg:  errs.UserNotFound.Msg,
	}
	requestPendingResult = ginx.Result{
		Code: errs.RequestPending.Code,
		Msg:  errs.RequestPending.Msg,
	}
	requestNotFoundResult = ginx.Result{
		Code: errs.RequestNotFound.Code,
		Msg:  errs.RequestNotFound.Msg,
	}
	requestHandledResult = ginx.Result{
		Code: errs.RequestHandled.Code,
		Msg:  errs.RequestHandled.Msg,
	}
	alreadyConnectedResult = ginx.Result{
		Code: errs.AlreadyConnected.Code,
		Msg:  errs.AlreadyConnected.Msg,
	}
	notRecipientResult = ginx.Result{
		Code: errs.NotRecipient.Code,
		Msg:  errs.NotRecipient.Msg,
	}
)

// errResult 业务错误转成对应的错误码，其余的都是系统错误
func errResult(err error) (ginx.Result, error) {
	switch {
	case errors.Is(err, service.ErrSelfRequest):
		return selfRequestResult, nil
	case errors.Is(err, service.ErrUserNotFound):
		return userNotFoundResult, nil
	case errors.Is(err, service.ErrRequestPending):
		return requestPendingResult, nil
	case errors.Is(err, service.ErrRequestNotFound):
		return requestNotFoundResult, nil
	case errors.Is(err, service.ErrRequestHandled):
		return requestHandledResult, nil
	case errors.Is(err, service.ErrAlreadyConnected):
		return alreadyConnectedResult, nil
	case errors.Is(err, service.ErrNotRecipient):
		return notRecipientResult, nil
	default:
		return systemErrorResult, err
	}
}
