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

package mqx

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ecodeclub/ekit/retry"
	"github.com/ecodeclub/mq-api"
	"github.com/gotomicro/ego/core/elog"
)

type HandleFunc[T Event] func(ctx context.Context, evt T) error

const (
	defaultInitialInterval = 100 * time.Millisecond
	defaultMaxInterval     = 10 * time.Second
)

// GeneralConsumer 一条消息对应一个 T，处理失败只记录日志，不重试
type GeneralConsumer[T Event] struct {
	consumer mq.Consumer
	handle   HandleFunc[T]
	topic    string
	logger   *elog.Component

	// 连续失败的时候指数退避，成功一次之后重新计算
	initialInterval time.Duration
	maxInterval     time.Duration
}

func NewGeneralConsumer[T Event](q mq.MQ, group string, handle HandleFunc[T]) (*GeneralConsumer[T], error) {
	var evt T
	topic := evt.Topic()
	c, err := q.Consumer(topic, group)
	if err != nil {
		return nil, fmt.Errorf("创建topic=%s的consumer失败: %w", topic, err)
	}
	return &GeneralConsumer[T]{
		consumer: c,
		handle:   handle,
		topic:    topic,
		logger:   elog.DefaultLogger,

		initialInterval: defaultInitialInterval,
		maxInterval:     defaultMaxInterval,
	}, nil
}

func (c *GeneralConsumer[T]) Consume(ctx context.Context) error {
	msg, err := c.consumer.Consume(ctx)
	if err != nil {
		return fmt.Errorf("获取消息失败: %w", err)
	}
	var evt T
	err = json.Unmarshal(msg.Value, &evt)
	if err != nil {
		return fmt.Errorf("解析消息失败: %w", err)
	}
	err = c.handle(ctx, evt)
	if err != nil {
		c.logger.Error("处理消息失败",
			elog.String("topic", c.topic),
			elog.Any("event", evt))
	}
	return err
}

// Start 异步消费，ctx 取消之后退出
func (c *GeneralConsumer[T]) Start(ctx context.Context) {
	go c.loop(ctx)
}

func (c *GeneralConsumer[T]) loop(ctx context.Context) {
	strategy, err := c.newBackoff()
	if err != nil {
		c.logger.Error("退避策略配置不对，不启动消费", elog.String("topic", c.topic), elog.FieldErr(err))
		return
	}
	failed := false
	for {
		err = c.Consume(ctx)
		if ctx.Err() != nil {
			return
		}
		if err == nil || errors.Is(err, context.Canceled) {
			if failed {
				strategy, _ = c.newBackoff()
				failed = false
			}
			continue
		}
		failed = true
		// maxRetries 为 0，Next 一直返回 true
		interval, _ := strategy.Next()
		c.logger.Error("消费事件失败",
			elog.String("topic", c.topic),
			elog.Duration("backoff", interval),
			elog.FieldErr(err))
		select {
		case <-ctx.Done():
			return
		case <-time.After(interval):
		}
	}
}

func (c *GeneralConsumer[T]) newBackoff() (*retry.ExponentialBackoffRetryStrategy, error) {
	return retry.NewExponentialBackoffRetryStrategy(c.initialInterval, c.maxInterval, 0)
}

func (c *GeneralConsumer[T]) Stop(_ context.Context) error {
	return c.consumer.Close()
}
