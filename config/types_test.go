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

import (
	"testing"

	"github.com/ecodeclub/project52/internal/user"
	"github.com/stretchr/testify/assert"
)

func TestUserConfig_Accounts(t *testing.T) {
	testCases := []struct {
		name string
		cfg  UserConfig
		want []user.Account
	}{
		{
			name: "全部默认",
			want: append([]user.Account{DefaultAdmin}, []user.Account{
				{Email: "alice@example.com", Name: "Alice Johnson", Role: user.RoleUser},
				{Email: "bob@example.com", Name: "Bob Smith", Role: user.RoleUser},
				{Email: "charlie@example.com", Name: "Charlie Brown", Role: user.RoleUser},
				{Email: "diana@example.com", Name: "Diana Prince", Role: user.RoleUser},
				{Email: "eve@example.com", Name: "Eve Wilson", Role: user.RoleUser},
			}...),
		},
		{
			name: "自定义管理员，不要示例用户",
			cfg: UserConfig{
				Admin: user.Account{Email: "root@example.com", Password: "123"},
				Seeds: []user.Account{},
			},
			want: []user.Account{
				{Email: "root@example.com", Password: "123", Role: user.RoleAdmin},
			},
		},
		{
			name: "示例用户不能是管理员",
			cfg: UserConfig{
				Seeds: []user.Account{{Email: "x@example.com", Role: user.RoleAdmin}},
			},
			want: []user.Account{
				DefaultAdmin,
				{Email: "x@example.com", Role: user.RoleUser},
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.cfg.Accounts())
		})
	}
}
