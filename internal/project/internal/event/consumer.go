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

package event

import (
	"context"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/project52/internal/pkg/mqx"
	"github.com/ecodeclub/project52/internal/project/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// ReviewEventConsumer 审核之后作者的进度变了，把缓存清掉
type ReviewEventConsumer struct {
	consumer *mqx.GeneralConsumer[ReviewEvent]
	repo     repository.ProjectRepository
	logger   *elog.Component
}

func NewReviewEventConsumer(q mq.MQ, repo repository.ProjectRepository) (*ReviewEventConsumer, error) {
	c := &ReviewEventConsumer{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
	consumer, err := mqx.NewGeneralConsumer[ReviewEvent](q, "project_progress", c.handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *ReviewEventConsumer) handle(ctx context.Context, evt ReviewEvent) error {
	err := c.repo.ClearProgress(ctx, evt.Uid)
	if err != nil {
		return err
	}
	c.logger.Debug("清除进度缓存",
		elog.Int64("uid", evt.Uid),
		elog.Int64("pid", evt.Pid))
	return nil
}

func (c *ReviewEventConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}

func (c *ReviewEventConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *ReviewEventConsumer) Stop(ctx context.Context) error {
	return c.consumer.Stop(ctx)
}
