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

package ioc

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/mq-api/kafka"
	"github.com/ecodeclub/mq-api/memory"
	"github.com/ecodeclub/project52/internal/post"
	"github.com/ecodeclub/project52/internal/project"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/gotomicro/ego/core/econf"
)

type Topic struct {
	Name       string `yaml:"name"`
	Partitions int    `yaml:"partitions"`
}

// Topics 所有模块用到的 topic，启动的时候统一创建
var Topics = []Topic{
	{Name: user.RegistrationEvent{}.Topic(), Partitions: 1},
	{Name: project.ReviewEvent{}.Topic(), Partitions: 1},
	{Name: post.LikeEvent{}.Topic(), Partitions: 1},
}

func InitMQ() mq.MQ {
	type Config struct {
		// Type kafka 或者 memory，memory 只适合单机跑
		Type      string   `yaml:"type"`
		Network   string   `yaml:"network"`
		Addresses []string `yaml:"addresses"`
	}

	var cfg Config
	err := econf.UnmarshalKey("mq", &cfg)
	if err != nil {
		panic(err)
	}

	var q mq.MQ
	switch cfg.Type {
	case "memory":
		q = memory.NewMQ()
	default:
		q, err = kafka.NewMQ(cfg.Network, cfg.Addresses)
		if err != nil {
			panic(err)
		}
	}

	ctx, cancelFunc := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFunc()
	for _, t := range Topics {
		if e := q.CreateTopic(ctx, t.Name, t.Partitions); e != nil {
			panic(fmt.Sprintf("创建Topic失败: %s : Topic = %s, Partitions = %d", e.Error(), t.Name, t.Partitions))
		}
	}
	return q
}
