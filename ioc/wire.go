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

//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/project52/internal/connection"
	"github.com/ecodeclub/project52/internal/post"
	"github.com/ecodeclub/project52/internal/project"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitRedis, InitCache, InitMQ, InitIDGenerator)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		InitUserModule,
		project.InitModule,
		post.InitModule,
		connection.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*project.Module), "Hdl", "AdminHdl", "ReviewConsumer"),
		wire.FieldsOf(new(*post.Module), "Hdl", "LikeConsumer"),
		wire.FieldsOf(new(*connection.Module), "Hdl"),
		initConsumers,
		initGinxServer,
		InitAdminServer,
	)
	return new(App), nil
}
