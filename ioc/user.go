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
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/project52/config"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
)

// InitUserModule 顺便把管理员和示例用户建好
func InitUserModule(db *egorm.Component, ec ecache.Cache, q mq.MQ) *user.Module {
	var cfg config.UserConfig
	if econf.Get("user") != nil {
		err := econf.UnmarshalKey("user", &cfg)
		if err != nil {
			panic(err)
		}
	}
	m := user.InitModule(db, ec, q)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	err := m.Svc.EnsureAccounts(ctx, cfg.Accounts())
	if err != nil {
		panic(err)
	}
	return m
}
