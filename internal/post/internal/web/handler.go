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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/internal/post/internal/domain"
	"github.com/ecodeclub/project52/internal/post/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	defaultLimit = 20
	maxLimit     = 100
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	g := server.Group("/posts")
	g.POST("/create", ginx.BS[CreateReq](h.Create))
	g.POST("/like", ginx.B[IdReq](h.Like))
	g.POST("/list", ginx.B[Page](h.List))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	p, err := h.svc.Create(ctx, domain.Post{
		Uid:      sess.Claims().Uid,
		Content:  req.Content,
		ImageURL: req.ImageURL,
		VideoURL: req.VideoURL,
		LinkURL:  req.LinkURL,
	})
	if errors.Is(err, service.ErrEmptyPost) {
		return emptyPostResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newPost(p),
	}, nil
}

func (h *Handler) Like(ctx *ginx.Context, req IdReq) (ginx.Result, error) {
	err := h.svc.Like(ctx, req.Id)
	if errors.Is(err, service.ErrPostNotFound) {
		return postNotFoundResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) List(ctx *ginx.Context, req Page) (ginx.Result, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultLimit
	}
	ps, err := h.svc.List(ctx, max(req.Offset, 0), min(limit, maxLimit))
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PostList{
			Posts: slice.Map(ps, func(idx int, src domain.Post) Post {
				return newPost(src)
			}),
		},
	}, nil
}
