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
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/internal/connection/internal/domain"
	"github.com/ecodeclub/project52/internal/connection/internal/service"
	"github.com/gin-gonic/gin"
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
	g := server.Group("/connections")
	g.POST("/requests/send", ginx.BS[SendReq](h.Send))
	g.POST("/requests/accept", ginx.BS[IdReq](h.Accept))
	g.POST("/requests/reject", ginx.BS[IdReq](h.Reject))
	g.GET("/requests/pending", ginx.S(h.Pending))
	g.GET("/requests/sent", ginx.S(h.Sent))
	g.GET("/list", ginx.S(h.List))
	g.POST("/candidates", ginx.BS[SearchReq](h.Candidates))
}

func (h *Handler) Send(ctx *ginx.Context, req SendReq, sess session.Session) (ginx.Result, error) {
	r, err := h.svc.SendRequest(ctx, sess.Claims().Uid, req.ToUid)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{
		Data: newRequest(r),
	}, nil
}

func (h *Handler) Accept(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Accept(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Reject(ctx *ginx.Context, req IdReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reject(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return errResult(err)
	}
	return ginx.Result{Msg: "OK"}, nil
}

func (h *Handler) Pending(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.PendingRequests(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return h.requestList(rs), nil
}

func (h *Handler) Sent(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	rs, err := h.svc.SentRequests(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return h.requestList(rs), nil
}

func (h *Handler) requestList(rs []domain.Request) ginx.Result {
	return ginx.Result{
		Data: RequestList{
			Requests: slice.Map(rs, func(idx int, src domain.Request) Request {
				return newRequest(src)
			}),
		},
	}
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.Connections(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ConnectionList{
			Connections: slice.Map(cs, func(idx int, src domain.Connection) Connection {
				return newConnection(src)
			}),
		},
	}, nil
}

func (h *Handler) Candidates(ctx *ginx.Context, req SearchReq, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.SearchCandidates(ctx, sess.Claims().Uid, req.Keyword)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CandidateList{
			Candidates: slice.Map(cs, func(idx int, src domain.Candidate) Candidate {
				return Candidate{
					Peer:        newPeer(src.Peer),
					RequestSent: src.RequestSent,
				}
			}),
		},
	}, nil
}
