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
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/gotomicro/ego/core/elog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	Uid  int64  `json:"uid"`
	Name string `json:"name"`
}

func (testEvent) Topic() string {
	return "mqx_test_events"
}

func TestGeneralProducerAndConsumer(t *testing.T) {
	q := memory.NewMQ()
	err := q.CreateTopic(context.Background(), testEvent{}.Topic(), 1)
	require.NoError(t, err)

	var got []testEvent
	consumer, err := NewGeneralConsumer[testEvent](q, "mqx_test", func(ctx context.Context, evt testEvent) error {
		got = append(got, evt)
		if evt.Uid < 0 {
			return errors.New("mock error")
		}
		return nil
	})
	require.NoError(t, err)
	producer, err := NewGeneralProducer[testEvent](q)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err = producer.Produce(ctx, testEvent{Uid: 1, Name: "alice"})
	require.NoError(t, err)
	err = producer.Produce(ctx, testEvent{Uid: -1, Name: "bob"})
	require.NoError(t, err)

	err = consumer.Consume(ctx)
	require.NoError(t, err)
	err = consumer.Consume(ctx)
	assert.Error(t, err)

	assert.Equal(t, []testEvent{
		{Uid: 1, Name: "alice"},
		{Uid: -1, Name: "bob"},
	}, got)
	assert.NoError(t, consumer.Stop(ctx))
}

// scriptedConsumer 按照顺序返回预先设置好的结果，用完之后阻塞到 ctx 取消
type scriptedConsumer struct {
	mu      sync.Mutex
	results []error
	calls   []time.Time
	done    chan struct{}
}

func newScriptedConsumer(results ...error) *scriptedConsumer {
	return &scriptedConsumer{results: results, done: make(chan struct{})}
}

func (s *scriptedConsumer) Consume(ctx context.Context) (*mq.Message, error) {
	s.mu.Lock()
	s.calls = append(s.calls, time.Now())
	if len(s.results) == 0 {
		s.mu.Unlock()
		close(s.done)
		<-ctx.Done()
		return nil, ctx.Err()
	}
	err := s.results[0]
	s.results = s.results[1:]
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return &mq.Message{Value: []byte(`{"uid":1,"name":"alice"}`)}, nil
}

func (s *scriptedConsumer) ConsumeChan(ctx context.Context) (<-chan *mq.Message, error) {
	return nil, errors.New("不支持")
}

func (s *scriptedConsumer) Close() error {
	return nil
}

func (s *scriptedConsumer) gaps() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	res := make([]time.Duration, 0, len(s.calls))
	for i := 1; i < len(s.calls); i++ {
		res = append(res, s.calls[i].Sub(s.calls[i-1]))
	}
	return res
}

func newTestConsumer(sc *scriptedConsumer, initial, maxInterval time.Duration) *GeneralConsumer[testEvent] {
	return &GeneralConsumer[testEvent]{
		consumer: sc,
		handle: func(ctx context.Context, evt testEvent) error {
			return nil
		},
		topic:           testEvent{}.Topic(),
		logger:          elog.DefaultLogger,
		initialInterval: initial,
		maxInterval:     maxInterval,
	}
}

func TestGeneralConsumer_StartBackoff(t *testing.T) {
	mockErr := errors.New("broker unavailable")
	// 三次失败，一次成功，再失败一次
	sc := newScriptedConsumer(mockErr, mockErr, mockErr, nil, mockErr)
	c := newTestConsumer(sc, 20*time.Millisecond, time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	c.Start(ctx)
	select {
	case <-sc.done:
	case <-ctx.Done():
		t.Fatal("消费没有跑完")
	}

	gaps := sc.gaps()
	require.Len(t, gaps, 5)
	// 连续失败，间隔翻倍
	assert.GreaterOrEqual(t, gaps[0], 20*time.Millisecond)
	assert.GreaterOrEqual(t, gaps[1], 40*time.Millisecond)
	assert.GreaterOrEqual(t, gaps[2], 80*time.Millisecond)
	// 成功之后马上拉下一条
	assert.Less(t, gaps[3], gaps[2])
	// 成功之后重新从初始间隔开始
	assert.GreaterOrEqual(t, gaps[4], 20*time.Millisecond)
	assert.Less(t, gaps[4], gaps[2])
}

func TestGeneralConsumer_StartStopsWhileBackingOff(t *testing.T) {
	sc := newScriptedConsumer(errors.New("broker unavailable"))
	c := newTestConsumer(sc, time.Minute, time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	exited := make(chan struct{})
	go func() {
		c.loop(ctx)
		close(exited)
	}()
	time.Sleep(50 * time.Millisecond)
	cancel()
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("退避的时候没有响应 ctx 取消")
	}
	// 只调用了一次，剩下的时间都在等待
	assert.Len(t, sc.calls, 1)
}

func TestGeneralConsumer_InvalidBackoff(t *testing.T) {
	sc := newScriptedConsumer()
	c := newTestConsumer(sc, 0, time.Second)
	// 配置不对直接退出，不会调用 Consume
	c.loop(context.Background())
	assert.Empty(t, sc.calls)
}
