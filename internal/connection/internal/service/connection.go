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

package service

import (
	"context"
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/project52/internal/connection/internal/domain"
	"github.com/ecodeclub/project52/internal/connection/internal/repository"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrSelfRequest      = errors.New("不能给自己发请求")
	ErrUserNotFound     = errors.New("用户不存在")
	ErrAlreadyConnected = errors.New("已经建立连接")
	ErrNotRecipient     = errors.New("只有接收方可以处理请求")
	ErrRequestNotFound  = repository.ErrRequestNotFound
	ErrRequestPending   = repository.ErrRequestPending
	ErrRequestHandled   = repository.ErrRequestHandled
)

//go:generate mockgen -source=./connection.go -package=svcmocks -destination=mocks/connection.mock.go Service
type Service interface {
	SendRequest(ctx context.Context, fromUid, toUid int64) (domain.Request, error)
	// Accept uid 必须是请求的接收方
	Accept(ctx context.Context, uid, requestId int64) error
	Reject(ctx context.Context, uid, requestId int64) error
	// PendingRequests 别人发给 uid 的，还没有处理的请求
	PendingRequests(ctx context.Context, uid int64) ([]domain.Request, error)
	// SentRequests uid 发出去的，还没有处理的请求
	SentRequests(ctx context.Context, uid int64) ([]domain.Request, error)
	Connections(ctx context.Context, uid int64) ([]domain.Connection, error)
	// SearchCandidates 全部用户去掉自己和已经建立连接的，按照昵称过滤
	SearchCandidates(ctx context.Context, uid int64, keyword string) ([]domain.Candidate, error)
}

type service struct {
	repo    repository.ConnectionRepository
	userSvc user.UserService
	logger  *elog.Component
}

func NewService(repo repository.ConnectionRepository, userSvc user.UserService) Service {
	return &service{
		repo:    repo,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (s *service) SendRequest(ctx context.Context, fromUid, toUid int64) (domain.Request, error) {
	if fromUid == toUid {
		return domain.Request{}, ErrSelfRequest
	}
	users, err := s.userSvc.FindByIds(ctx, []int64{fromUid, toUid})
	if err != nil {
		return domain.Request{}, err
	}
	from, ok1 := users[fromUid]
	_, ok2 := users[toUid]
	if !ok1 || !ok2 {
		return domain.Request{}, ErrUserNotFound
	}
	connected, err := s.repo.ConnectedUids(ctx, fromUid)
	if err != nil {
		return domain.Request{}, err
	}
	if slice.Contains(connected, toUid) {
		return domain.Request{}, ErrAlreadyConnected
	}
	r := domain.Request{
		From:   s.toPeer(from),
		ToUid:  toUid,
		Status: domain.RequestStatusPending,
	}
	r.Id, err = s.repo.CreateRequest(ctx, r)
	if err != nil {
		return domain.Request{}, err
	}
	return r, nil
}

func (s *service) Accept(ctx context.Context, uid, requestId int64) error {
	r, err := s.pending(ctx, uid, requestId)
	if err != nil {
		return err
	}
	err = s.repo.Accept(ctx, r)
	if err == nil {
		s.logger.Info("建立连接",
			elog.Int64("owner", r.ToUid),
			elog.Int64("peer", r.From.Uid),
			elog.Int64("request", r.Id))
	}
	return err
}

func (s *service) Reject(ctx context.Context, uid, requestId int64) error {
	r, err := s.pending(ctx, uid, requestId)
	if err != nil {
		return err
	}
	return s.repo.Reject(ctx, r.Id)
}

// pending 校验请求存在、uid 是接收方并且还没有处理
func (s *service) pending(ctx context.Context, uid, requestId int64) (domain.Request, error) {
	r, err := s.repo.FindRequest(ctx, requestId)
	if err != nil {
		return domain.Request{}, err
	}
	if r.ToUid != uid {
		return domain.Request{}, ErrNotRecipient
	}
	if r.Status != domain.RequestStatusPending {
		return domain.Request{}, ErrRequestHandled
	}
	return r, nil
}

func (s *service) PendingRequests(ctx context.Context, uid int64) ([]domain.Request, error) {
	return s.repo.PendingTo(ctx, uid)
}

func (s *service) SentRequests(ctx context.Context, uid int64) ([]domain.Request, error) {
	return s.repo.PendingFrom(ctx, uid)
}

func (s *service) Connections(ctx context.Context, uid int64) ([]domain.Connection, error) {
	return s.repo.Connections(ctx, uid)
}

func (s *service) SearchCandidates(ctx context.Context, uid int64, keyword string) ([]domain.Candidate, error) {
	var (
		eg        errgroup.Group
		users     []user.User
		connected []int64
		sent      []domain.Request
	)
	eg.Go(func() error {
		var err error
		users, err = s.userSvc.Directory(ctx, keyword)
		return err
	})
	eg.Go(func() error {
		var err error
		connected, err = s.repo.ConnectedUids(ctx, uid)
		return err
	})
	eg.Go(func() error {
		var err error
		sent, err = s.repo.PendingFrom(ctx, uid)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	excluded := make(map[int64]struct{}, len(connected)+1)
	excluded[uid] = struct{}{}
	for _, id := range connected {
		excluded[id] = struct{}{}
	}
	sentTo := make(map[int64]struct{}, len(sent))
	for _, r := range sent {
		sentTo[r.ToUid] = struct{}{}
	}
	res := make([]domain.Candidate, 0, len(users))
	for _, u := range users {
		if _, ok := excluded[u.Id]; ok {
			continue
		}
		_, requested := sentTo[u.Id]
		res = append(res, domain.Candidate{
			Peer:        s.toPeer(u),
			RequestSent: requested,
		})
	}
	return res, nil
}

func (s *service) toPeer(u user.User) domain.Peer {
	return domain.Peer{
		Uid:   u.Id,
		SN:    u.SN,
		Email: u.Email,
		Name:  u.Name,
	}
}
