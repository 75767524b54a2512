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
	"strings"
	"time"

	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/ecodeclub/project52/internal/project/internal/event"
	"github.com/ecodeclub/project52/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/sync/errgroup"
)

var (
	ErrProjectNotFound = repository.ErrProjectNotFound
	ErrInvalidStatus   = errors.New("审核状态只能是通过或者拒绝")
)

//go:generate mockgen -source=./project.go -package=svcmocks -destination=mocks/project.mock.go Service
type Service interface {
	// Submit 校验失败返回 *ValidationError
	Submit(ctx context.Context, p domain.Project) (domain.Project, error)
	// Review 可以重复审核，也可以在通过和拒绝之间切换
	Review(ctx context.Context, id int64, status domain.Status) error
	ListMine(ctx context.Context, uid int64) ([]domain.Project, error)
	ListAll(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Project, int64, error)
	Progress(ctx context.Context, uid int64) (domain.Progress, error)
	Stats(ctx context.Context) (domain.Stats, error)
	// Export 导出全部符合条件的项目，不分页
	Export(ctx context.Context, filter domain.Filter) ([]byte, error)
}

type service struct {
	repo     repository.ProjectRepository
	producer event.ReviewEventProducer
	logger   *elog.Component
}

func NewService(repo repository.ProjectRepository, producer event.ReviewEventProducer) Service {
	return &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
}

func (s *service) Submit(ctx context.Context, p domain.Project) (domain.Project, error) {
	p.Title = strings.TrimSpace(p.Title)
	p.RepoURL = strings.TrimSpace(p.RepoURL)
	if err := validateSubmission(p); err != nil {
		return domain.Project{}, err
	}
	now := time.Now()
	p.Status = domain.StatusUnderReview
	p.Ctime = now
	p.Utime = now
	id, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Project{}, err
	}
	p.Id = id
	return p, nil
}

func (s *service) Review(ctx context.Context, id int64, status domain.Status) error {
	if !status.Reviewed() {
		return ErrInvalidStatus
	}
	p, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	err = s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return err
	}
	evt := event.ReviewEvent{Pid: p.Id, Uid: p.Uid, Status: status.ToUint8()}
	if er := s.producer.Produce(ctx, evt); er != nil {
		s.logger.Error("发送审核消息失败",
			elog.FieldErr(er),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt))
		// 消息发不出去就直接清缓存
		if er = s.repo.ClearProgress(ctx, p.Uid); er != nil {
			s.logger.Error("清除进度缓存失败", elog.FieldErr(er), elog.Int64("uid", p.Uid))
		}
	}
	return nil
}

func (s *service) ListMine(ctx context.Context, uid int64) ([]domain.Project, error) {
	return s.repo.FindByUid(ctx, uid)
}

func (s *service) ListAll(ctx context.Context, filter domain.Filter, offset, limit int) ([]domain.Project, int64, error) {
	filter = s.normalize(filter)
	var (
		eg    errgroup.Group
		list  []domain.Project
		total int64
	)
	eg.Go(func() error {
		var err error
		list, err = s.repo.List(ctx, filter, offset, limit)
		return err
	})
	eg.Go(func() error {
		var err error
		total, err = s.repo.Count(ctx, filter)
		return err
	})
	return list, total, eg.Wait()
}

func (s *service) Progress(ctx context.Context, uid int64) (domain.Progress, error) {
	p, err := s.repo.Progress(ctx, uid)
	if err == nil {
		return p, nil
	}
	ps, err := s.repo.FindByUid(ctx, uid)
	if err != nil {
		return domain.Progress{}, err
	}
	p = domain.NewProgress(ps)
	if er := s.repo.SetProgress(ctx, uid, p); er != nil {
		s.logger.Error("回写进度缓存失败", elog.FieldErr(er), elog.Int64("uid", uid))
	}
	return p, nil
}

func (s *service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.repo.Stats(ctx)
}

func (s *service) Export(ctx context.Context, filter domain.Filter) ([]byte, error) {
	ps, err := s.repo.List(ctx, s.normalize(filter), 0, 0)
	if err != nil {
		return nil, err
	}
	return ExportCSV(ps), nil
}

func (s *service) normalize(filter domain.Filter) domain.Filter {
	filter.Keyword = strings.ToLower(strings.TrimSpace(filter.Keyword))
	return filter
}
