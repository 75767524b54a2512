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
	"time"

	"github.com/ecodeclub/project52/internal/pkg/snowflake"
	"github.com/ecodeclub/project52/internal/post/internal/domain"
	"github.com/ecodeclub/project52/internal/post/internal/repository"
	"github.com/ecodeclub/project52/internal/user"
)

var (
	ErrEmptyPost    = errors.New("帖子内容不能为空")
	ErrPostNotFound = repository.ErrPostNotFound
)

//go:generate mockgen -source=./post.go -package=svcmocks -destination=mocks/post.mock.go Service
type Service interface {
	Create(ctx context.Context, p domain.Post) (domain.Post, error)
	Like(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
}

type service struct {
	repo    repository.PostRepository
	userSvc user.UserService
	idGen   snowflake.Generator
}

func NewService(repo repository.PostRepository, userSvc user.UserService, idGen snowflake.Generator) Service {
	return &service{
		repo:    repo,
		userSvc: userSvc,
		idGen:   idGen,
	}
}

func (s *service) Create(ctx context.Context, p domain.Post) (domain.Post, error) {
	p = p.Trim()
	if p.Blank() {
		return domain.Post{}, ErrEmptyPost
	}
	author, err := s.userSvc.Profile(ctx, p.Uid)
	if err != nil {
		return domain.Post{}, err
	}
	now := time.Now()
	p.Id = s.idGen.Generate().Int64()
	p.AuthorName = author.Name
	p.LikeCnt = 0
	p.CommentCnt = 0
	p.Ctime = now
	p.Utime = now
	err = s.repo.Create(ctx, p)
	if err != nil {
		return domain.Post{}, err
	}
	return p, nil
}

func (s *service) Like(ctx context.Context, id int64) error {
	return s.repo.IncrLike(ctx, id)
}

func (s *service) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	return s.repo.List(ctx, offset, limit)
}
