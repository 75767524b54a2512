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

package connection

import (
	"github.com/ecodeclub/project52/internal/connection/internal/repository"
	"github.com/ecodeclub/project52/internal/connection/internal/service"
	"github.com/ecodeclub/project52/internal/connection/internal/web"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
)

func InitModule(db *egorm.Component, userModule *user.Module) *Module {
	wire.Build(
		initDAO,
		repository.NewConnectionRepository,
		service.NewService,
		web.NewHandler,
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
