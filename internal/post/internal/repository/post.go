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
	"github.com/ecodeclub/project52/internal/post/internal/domain"
	"github.com/ecodeclub/project52/internal/post/internal/repository/dao"
)

var ErrPostNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./post.go -package=repomocks -destination=mocks/post.mock.go PostRepository
type PostRepository interface {
	Create(ctx context.Context, p domain.Post) error
	IncrLike(ctx context.Context, id int64) error
	List(ctx context.Context, offset, limit int) ([]domain.Post, error)
}

type postRepository struct {
	dao dao.PostDAO
}

func NewPostRepository(d dao.PostDAO) PostRepository {
	return &postRepository{dao: d}
}

func (repo *postRepository) Create(ctx context.Context, p domain.Post) error {
	return repo.dao.Insert(ctx, dao.Post{
		Id:         p.Id,
		Uid:        p.Uid,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		ImageURL:   p.ImageURL,
		VideoURL:   p.VideoURL,
		LinkURL:    p.LinkURL,
	})
}

func (repo *postRepository) IncrLike(ctx context.Context, id int64) error {
	return repo.dao.IncrLike(ctx, id)
}

func (repo *postRepository) List(ctx context.Context, offset, limit int) ([]domain.Post, error) {
	ps, err := repo.dao.List(ctx, offset, limit)
	return slice.Map(ps, func(idx int, src dao.Post) domain.Post {
		return domain.Post{
			Id:         src.Id,
			Uid:        src.Uid,
			AuthorName: src.AuthorName,
			Content:    src.Content,
			ImageURL:   src.ImageURL,
			VideoURL:   src.VideoURL,
			LinkURL:    src.LinkURL,
			LikeCnt:    src.LikeCnt,
			CommentCnt: src.CommentCnt,
			Ctime:      time.UnixMilli(src.Ctime),
			Utime:      time.UnixMilli(src.Utime),
		}
	}), err
}
