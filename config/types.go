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

package config

import "github.com/ecodeclub/project52/internal/user"

// UserConfig 对应 user 节点
type UserConfig struct {
	Admin user.Account   `yaml:"admin"`
	Seeds []user.Account `yaml:"seeds"`
}

// DefaultAdmin 没有配置管理员的时候用
var DefaultAdmin = user.Account{
	Email:    "admin@52projects.com",
	Password: "admin123",
	Name:     "Admin",
	Role:     user.RoleAdmin,
}

// DefaultSeeds 示例用户，方便搜索和建立连接
var DefaultSeeds = []user.Account{
	{Email: "alice@example.com", Name: "Alice Johnson"},
	{Email: "bob@example.com", Name: "Bob Smith"},
	{Email: "charlie@example.com", Name: "Charlie Brown"},
	{Email: "diana@example.com", Name: "Diana Prince"},
	{Email: "eve@example.com", Name: "Eve Wilson"},
}

// Accounts 启动的时候要确保存在的账号，管理员排第一个
func (c UserConfig) Accounts() []user.Account {
	admin := c.Admin
	if admin.Email == "" {
		admin = DefaultAdmin
	}
	admin.Role = user.RoleAdmin
	seeds := c.Seeds
	if seeds == nil {
		seeds = DefaultSeeds
	}
	res := make([]user.Account, 0, len(seeds)+1)
	res = append(res, admin)
	for _, s := range seeds {
		// 示例账号不允许通过配置变成管理员
		s.Role = user.RoleUser
		res = append(res, s)
	}
	return res
}

type CORSConfig struct {
	// AllowOrigins 前缀匹配，localhost 总是允许
	AllowOrigins []string `yaml:"allowOrigins"`
}
