package web

import (
	"errors"
	"strconv"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/internal/pkg/middleware"
	"github.com/ecodeclub/project52/internal/user/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	userSvc service.UserService
	limiter *middleware.RateLimitBuilder
	logger  *elog.Component
}

func NewHandler(userSvc service.UserService, limiter *middleware.RateLimitBuilder) *Handler {
	return &Handler{
		userSvc: userSvc,
		limiter: limiter,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/logout", ginx.S(h.Logout))
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/login", h.limiter.Build(), ginx.B[LoginReq](h.Login))
	users.GET("/token/refresh", ginx.W(h.RefreshAccessToken))
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.userSvc.Login(ctx, req.Email, req.Password, req.Name)
	switch {
	case errors.Is(err, service.ErrInvalidInput):
		return invalidInputResult, nil
	case errors.Is(err, service.ErrInvalidCredential):
		h.logger.Warn("登录失败，密码不对", elog.String("email", req.Email))
		return invalidCredentialResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	_, err = session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			middleware.RoleClaimKey: string(u.Role),
			// 兼容老的前端，还是用 creator 判断能不能进管理后台
			"creator": strconv.FormatBool(u.IsAdmin()),
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}

// Logout 不管 session 是否还有效都算成功
func (h *Handler) Logout(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	err := sess.Destroy(ctx)
	if err != nil {
		h.logger.Error("退出登录失败", elog.FieldErr(err), elog.Int64("uid", sess.Claims().Uid))
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) RefreshAccessToken(ctx *ginx.Context) (ginx.Result, error) {
	err := session.RenewAccessToken(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.userSvc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newProfile(u),
	}, nil
}
