package errs

var (
	SystemError       = ErrorCode{Code: 501001, Msg: "系统错误"}
	InvalidInput      = ErrorCode{Code: 501002, Msg: "邮箱和密码不能为空"}
	InvalidCredential = ErrorCode{Code: 501003, Msg: "邮箱或者密码不对"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
