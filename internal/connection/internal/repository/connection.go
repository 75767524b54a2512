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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/project52/internal/connection/internal/domain"
	"github.com/ecodeclub/project52/internal/connection/internal/repository/dao"
)

var (
	ErrRequestNotFound = dao.ErrRecordNotFound
	ErrRequestPending  = dao.ErrRequestPending
	ErrRequestHandled  = dao.ErrRequestHandled
)

//go:generate mockgen -source=./connection.go -package=repomocks -destination=mocks/connection.mock.go ConnectionRepository
type ConnectionRepository interface {
	CreateRequest(ctx context.Context, r domain.Request) (int64, error)
	FindRequest(ctx context.Context, id int64) (domain.Request, error)
	// Accept 把发送方加到接收方的连接里面
	Accept(ctx context.Context, r domain.Request) error
	Reject(ctx context.Context, id int64) error
	PendingTo(ctx context.Context, uid int64) ([]domain.Request, error)
	PendingFrom(ctx context.Context, uid int64) ([]domain.Request, error)
	Connections(ctx context.Context, uid int64) ([]domain.Connection, error)
	ConnectedUids(ctx context.Context, uid int64) ([]int64, error)
}

type connectionRepository struct {
	dao dao.ConnectionDAO
}

func NewConnectionRepository(d dao.ConnectionDAO) ConnectionRepository {
	return &connectionRepository{dao: d}
}

func (repo *connectionRepository) CreateRequest(ctx context.Context, r domain.Request) (int64, error) {
	return repo.dao.CreateRequest(ctx, dao.ConnectionRequest{
		FromUid:   r.From.Uid,
		FromSN:    r.From.SN,
		FromEmail: r.From.Email,
		FromName:  r.From.Name,
		ToUid:     r.ToUid,
	})
}

func (repo *connectionRepository) FindRequest(ctx context.Context, id int64) (domain.Request, error) {
	r, err := repo.dao.FindRequest(ctx, id)
	if err != nil {
		return domain.Request{}, err
	}
	return repo.toRequest(r), nil
}

func (repo *connectionRepository) Accept(ctx context.Context, r domain.Request) error {
	return repo.dao.Accept(ctx, r.Id, dao.Connection{
		OwnerUid:  r.ToUid,
		PeerUid:   r.From.Uid,
		PeerSN:    r.From.SN,
		PeerEmail: r.From.Email,
		PeerName:  r.From.Name,
	})
}

func (repo *connectionRepository) Reject(ctx context.Context, id int64) error {
	return repo.dao.Reject(ctx, id)
}

func (repo *connectionRepository) PendingTo(ctx context.Context, uid int64) ([]domain.Request, error) {
	rs, err := repo.dao.PendingTo(ctx, uid)
	return repo.toRequests(rs), err
}

func (repo *connectionRepository) PendingFrom(ctx context.Context, uid int64) ([]domain.Request, error) {
	rs, err := repo.dao.PendingFrom(ctx, uid)
	return repo.toRequests(rs), err
}

func (repo *connectionRepository) Connections(ctx context.Context, uid int64) ([]domain.Connection, error) {
	cs, err := repo.dao.Connections(ctx, uid)
	return slice.Map(cs, func(idx int, src dao.Connection) domain.Connection {
		return domain.Connection{
			Id:       src.Id,
			OwnerUid: src.OwnerUid,
			Peer: domain.Peer{
				Uid:   src.PeerUid,
				SN:    src.PeerSN,
				Email: src.PeerEmail,
				Name:  src.PeerName,
			},
			RequestId: src.RequestId,
			Ctime:     time.UnixMilli(src.Ctime),
		}
	}), err
}

func (repo *connectionRepository) ConnectedUids(ctx context.Context, uid int64) ([]int64, error) {
	return repo.dao.ConnectedUids(ctx, uid)
}

func (repo *connectionRepository) toRequests(rs []dao.ConnectionRequest) []domain.Request {
	return slice.Map(rs, func(idx int, src dao.ConnectionRequest) domain.Request {
		return repo.toRequest(src)
	})
}

func (repo *connectionRepository) toRequest(r dao.ConnectionRequest) domain.Request {
	return domain.Request{
		Id: r.Id,
		From: domain.Peer{
			Uid:   r.FromUid,
			SN:    r.FromSN,
			Email: r.FromEmail,
			Name:  r.FromName,
		},
		ToUid:  r.ToUid,
		Status: domain.RequestStatus(r.Status),
		Ctime:  time.UnixMilli(r.Ctime),
		Utime:  time.UnixMilli(r.Utime),
	}
}
