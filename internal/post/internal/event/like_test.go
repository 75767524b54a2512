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
	"testing"
	"time"

	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/project52/internal/pkg/mqx"
	"github.com/ecodeclub/project52/internal/post/internal/repository"
	repomocks "github.com/ecodeclub/project52/internal/post/internal/repository/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestLikeEventConsumer_Consume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), LikeEvent{}.Topic(), 1)
	require.NoError(t, err)

	repo := repomocks.NewMockPostRepository(ctrl)
	repo.EXPECT().IncrLike(gomock.Any(), int64(101)).Return(nil)
	// 不存在的帖子直接忽略
	repo.EXPECT().IncrLike(gomock.Any(), int64(404)).Return(repository.ErrPostNotFound)

	consumer, err := NewLikeEventConsumer(q, repo)
	require.NoError(t, err)
	producer, err := mqx.NewGeneralProducer[LikeEvent](q)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	require.NoError(t, producer.Produce(ctx, LikeEvent{Pid: 101, Uid: 2}))
	require.NoError(t, producer.Produce(ctx, LikeEvent{Pid: 404, Uid: 2}))
	require.NoError(t, consumer.Consume(ctx))
	require.NoError(t, consumer.Consume(ctx))
	require.NoError(t, consumer.Stop(ctx))
}
