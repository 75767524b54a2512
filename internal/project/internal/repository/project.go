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
	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/ecodeclub/project52/internal/project/internal/repository/cache"
	"github.com/ecodeclub/project52/internal/project/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var ErrProjectNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./project.go -package=repomocks -destination=mocks/project.mock.go ProjectRepository
type ProjectRepository interface {
	Create(ctx context.Context, p domain.Project) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Project, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status) error
	FindByUid(ctx context.Context, uid int64) ([]domain.Project, error)
	List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Project, error)
	Count(ctx context.Context, filter domain.Filter) (int64, error)
	Stats(ctx context.Context) (domain.Stats, error)

	// Progress 只查缓存，没有的时候返回 cache.ErrKeyNotExist
	Progress(ctx context.Context, uid int64) (domain.Progress, error)
	SetProgress(ctx context.Context, uid int64, p domain.Progress) error
	ClearProgress(ctx context.Context, uid int64) error
}

var _ ProjectRepository = &CachedProjectRepository{}

type CachedProjectRepository struct {
	dao    dao.ProjectDAO
	cache  cache.ProgressCache
	logger *elog.Component
}

func NewCachedProjectRepository(d dao.ProjectDAO, c cache.ProgressCache) ProjectRepository {
	return &CachedProjectRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (repo *CachedProjectRepository) Create(ctx context.Context, p domain.Project) (int64, error) {
	id, err := repo.dao.Insert(ctx, repo.toEntity(p))
	if err != nil {
		return 0, err
	}
	repo.clear(ctx, p.Uid)
	return id, nil
}

func (repo *CachedProjectRepository) FindById(ctx context.Context, id int64) (domain.Project, error) {
	p, err := repo.dao.FindById(ctx, id)
	return repo.toDomain(p), err
}

func (repo *CachedProjectRepository) UpdateStatus(ctx context.Context, id int64, status domain.Status) error {
	return repo.dao.UpdateStatus(ctx, id, status.ToUint8())
}

func (repo *CachedProjectRepository) FindByUid(ctx context.Context, uid int64) ([]domain.Project, error) {
	ps, err := repo.dao.FindByUid(ctx, uid)
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), err
}

func (repo *CachedProjectRepository) List(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Project, error) {
	ps, err := repo.dao.List(ctx, repo.toCondition(filter), offset, limit)
	return slice.Map(ps, func(idx int, src dao.Project) domain.Project {
		return repo.toDomain(src)
	}), err
}

func (repo *CachedProjectRepository) Count(ctx context.Context, filter domain.Filter) (int64, error) {
	return repo.dao.Count(ctx, repo.toCondition(filter))
}

func (repo *CachedProjectRepository) Stats(ctx context.Context) (domain.Stats, error) {
	cnts, err := repo.dao.CountByStatus(ctx)
	if err != nil {
		return domain.Stats{}, err
	}
	res := domain.Stats{
		UnderReview: cnts[domain.StatusUnderReview.ToUint8()],
		Approved:    cnts[domain.StatusApproved.ToUint8()],
		Rejected:    cnts[domain.StatusRejected.ToUint8()],
	}
	for _, cnt := range cnts {
		res.Total += cnt
	}
	return res, nil
}

func (repo *CachedProjectRepository) Progress(ctx context.Context, uid int64) (domain.Progress, error) {
	return repo.cache.Get(ctx, uid)
}

func (repo *CachedProjectRepository) SetProgress(ctx context.Context, uid int64, p domain.Progress) error {
	return repo.cache.Set(ctx, uid, p)
}

func (repo *CachedProjectRepository) ClearProgress(ctx context.Context, uid int64) error {
	return repo.cache.Delete(ctx, uid)
}

func (repo *CachedProjectRepository) clear(ctx context.Context, uid int64) {
	err := repo.cache.Delete(ctx, uid)
	if err != nil {
		repo.logger.Error("清除进度缓存失败",
			elog.FieldErr(err),
			elog.Int64("uid", uid))
	}
}

func (repo *CachedProjectRepository) toCondition(f domain.Filter) dao.Condition {
	return dao.Condition{
		Keyword: f.Keyword,
		Week:    f.Week,
		Status:  f.Status.ToUint8(),
	}
}

func (repo *CachedProjectRepository) toEntity(p domain.Project) dao.Project {
	return dao.Project{
		Id:          p.Id,
		Uid:         p.Uid,
		Title:       p.Title,
		RepoURL:     p.RepoURL,
		Description: p.Description,
		Week:        p.Week,
		Status:      p.Status.ToUint8(),
	}
}

func (repo *CachedProjectRepository) toDomain(p dao.Project) domain.Project {
	return domain.Project{
		Id:          p.Id,
		Uid:         p.Uid,
		Title:       p.Title,
		RepoURL:     p.RepoURL,
		Description: p.Description,
		Week:        p.Week,
		Status:      domain.Status(p.Status),
		Ctime:       time.UnixMilli(p.Ctime),
		Utime:       time.UnixMilli(p.Utime),
	}
}
