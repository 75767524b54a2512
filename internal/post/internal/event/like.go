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
	"errors"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/project52/internal/pkg/mqx"
	"github.com/ecodeclub/project52/internal/post/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// LikeEvent 别的服务异步点赞，没有按照用户去重。
// 这里只消费，生产方是外部服务，消息格式就是对外的约定：
// {"pid": 帖子 id, "uid": 点赞的用户}，topic 是 post_like_events。
// 本服务自己的点赞走 /posts/like 同步加一，不发这个消息。
type LikeEvent struct {
	Pid int64 `json:"pid"`
	Uid int64 `json:"uid"`
}

func (LikeEvent) Topic() string {
	return "post_like_events"
}

type LikeEventConsumer struct {
	consumer *mqx.GeneralConsumer[LikeEvent]
	repo     repository.PostRepository
	logger   *elog.Component
}

func NewLikeEventConsumer(q mq.MQ, repo repository.PostRepository) (*LikeEventConsumer, error) {
	c := &LikeEventConsumer{
		repo:   repo,
		logger: elog.DefaultLogger,
	}
	consumer, err := mqx.NewGeneralConsumer[LikeEvent](q, "post_like", c.handle)
	if err != nil {
		return nil, err
	}
	c.consumer = consumer
	return c, nil
}

func (c *LikeEventConsumer) handle(ctx context.Context, evt LikeEvent) error {
	err := c.repo.IncrLike(ctx, evt.Pid)
	if errors.Is(err, repository.ErrPostNotFound) {
		// 帖子不存在，重试也没有意义
		c.logger.Warn("点赞的帖子不存在", elog.Int64("pid", evt.Pid))
		return nil
	}
	return err
}

func (c *LikeEventConsumer) Consume(ctx context.Context) error {
	return c.consumer.Consume(ctx)
}

func (c *LikeEventConsumer) Start(ctx context.Context) {
	c.consumer.Start(ctx)
}

func (c *LikeEventConsumer) Stop(ctx context.Context) error {
	return c.consumer.Stop(ctx)
}
