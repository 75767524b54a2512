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
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/ecodeclub/project52/internal/project/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const exportFileName = "projects_export.csv"

// AdminHandler 只挂在 admin server 上面，前面有管理员校验
type AdminHandler struct {
	svc    service.Service
	logger *elog.Component
}

func NewAdminHandler(svc service.Service) *AdminHandler {
	return &AdminHandler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *AdminHandler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/projects")
	g.POST("/list", ginx.B[ListReq](h.List))
	g.POST("/review", ginx.B[ReviewReq](h.Review))
	g.GET("/stats", ginx.W(h.Stats))
	g.POST("/export", h.Export)
}

func (h *AdminHandler) List(ctx *ginx.Context, req ListReq) (ginx.Result, error) {
	offset, limit := req.page()
	ps, total, err := h.svc.ListAll(ctx, req.toDomain(), offset, limit)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ProjectList{
			Projects: newProjects(ps),
			Total:    total,
		},
	}, nil
}

func (h *AdminHandler) Review(ctx *ginx.Context, req ReviewReq) (ginx.Result, error) {
	err := h.svc.Review(ctx, req.Id, domain.ParseStatus(req.Status))
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		return invalidStatusResult, nil
	case errors.Is(err, service.ErrProjectNotFound):
		h.logger.Warn("审核的项目不存在", elog.Int64("id", req.Id))
		return projectNotFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *AdminHandler) Stats(ctx *ginx.Context) (ginx.Result, error) {
	st, err := h.svc.Stats(ctx)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: Stats{
			Total:       st.Total,
			UnderReview: st.UnderReview,
			Approved:    st.Approved,
			Rejected:    st.Rejected,
		},
	}, nil
}

// Export 直接返回文件，所以不走 ginx 的包装
func (h *AdminHandler) Export(ctx *gin.Context) {
	var req FilterReq
	if err := ctx.Bind(&req); err != nil {
		h.logger.Error("绑定参数失败", elog.FieldErr(err))
		return
	}
	data, err := h.svc.Export(ctx.Request.Context(), req.toDomain())
	if err != nil {
		h.logger.Error("导出项目失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	ctx.Header("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	ctx.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}
