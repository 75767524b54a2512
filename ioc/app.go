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

	"github.com/ecodeclub/project52/internal/post"
	"github.com/ecodeclub/project52/internal/project"
	"github.com/gotomicro/ego/server/egin"
)

type App struct {
	Web       *egin.Component
	Admin     AdminServer
	Consumers []Consumer
}

// Consumer 启动之后在后台一直消费，直到 ctx 被取消
type Consumer interface {
	Start(ctx context.Context)
	Stop(ctx context.Context) error
}

func initConsumers(prj *project.ReviewEventConsumer, p *post.LikeEventConsumer) []Consumer {
	return []Consumer{prj, p}
}
