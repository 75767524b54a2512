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

package errs

var (
	SystemError      = ErrorCode{Code: 504001, Msg: "系统错误"}
	SelfRequest      = ErrorCode{Code: 504002, Msg: "不能添加自己"}
	UserNotFound     = ErrorCode{Code: 504003, Msg: "用户不存在"}
	RequestPending   = ErrorCode{Code: 504004, Msg: "已经发送过请求，等待对方处理"}
	RequestNotFound  = ErrorCode{Code: 504005, Msg: "请求不存在"}
	RequestHandled   = ErrorCode{Code: 504006, Msg: "请求已经处理过了"}
	AlreadyConnected = ErrorCode{Code: 504007, Msg: "已经建立连接"}
	NotRecipient     = ErrorCode{Code: 504008, Msg: "只有接收方可以处理请求"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
