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

//go:build e2e

package integration

import (
	"context"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/config"
	"github.com/ecodeclub/project52/internal/test"
	testioc "github.com/ecodeclub/project52/internal/test/ioc"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/ecodeclub/project52/internal/user/internal/web"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uidKey = "X-Test-Uid"

type UserTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	module *user.Module
}

func (s *UserTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.module = user.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		if val := ctx.GetHeader(uidKey); val != "" {
			id, _ := strconv.ParseInt(val, 10, 64)
			ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: id}))
		}
	})
	s.module.Hdl.PublicRoutes(server.Engine)
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *UserTestSuite) SetupTest() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	// 和启动的时候一样，默认管理员加上示例账号
	err := s.module.Svc.EnsureAccounts(ctx, config.UserConfig{}.Accounts())
	require.NoError(s.T(), err)
}

func (s *UserTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *UserTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `users`").Error
	require.NoError(s.T(), err)
}

func (s *UserTestSuite) login(email, password string) test.Result[web.Profile] {
	req, err := http.NewRequest(http.MethodPost, "/users/login",
		iox.NewJSONReader(web.LoginReq{Email: email, Password: password}))
	require.NoError(s.T(), err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(s.T(), http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *UserTestSuite) TestAdminLogin() {
	t := s.T()
	res := s.login("admin@52projects.com", "admin123")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "admin", res.Data.Role)
	assert.True(t, res.Data.IsAdmin)
	assert.Equal(t, "Admin", res.Data.Name)

	res = s.login("admin@52projects.com", "wrong")
	assert.Equal(t, 501003, res.Code)
}

func (s *UserTestSuite) TestSeedLogin() {
	t := s.T()
	// 示例账号第一次登录的密码就是之后的密码
	res := s.login("alice@example.com", "password1")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "user", res.Data.Role)
	assert.False(t, res.Data.IsAdmin)
	assert.Equal(t, "Alice Johnson", res.Data.Name)
	alice := res.Data.Id

	res = s.login("alice@example.com", "password1")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, alice, res.Data.Id)

	res = s.login("alice@example.com", "another")
	assert.Equal(t, 501003, res.Code)

	// 别的示例账号不受影响
	res = s.login("bob@example.com", "another")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "Bob Smith", res.Data.Name)
}

func (s *UserTestSuite) TestSignupAndProfile() {
	t := s.T()
	res := s.login("frank@example.com", "hello#world")
	require.Equal(t, 0, res.Code)
	assert.Equal(t, "user", res.Data.Role)
	// 没有传昵称，用邮箱前缀
	assert.Equal(t, "frank", res.Data.Name)

	req, err := http.NewRequest(http.MethodGet, "/users/profile", nil)
	require.NoError(t, err)
	req.Header.Set(uidKey, strconv.FormatInt(res.Data.Id, 10))
	recorder := test.NewJSONResponseRecorder[web.Profile]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	profile := recorder.MustScan()
	assert.Equal(t, "frank@example.com", profile.Data.Email)
}

func (s *UserTestSuite) TestDirectoryExcludesAdmin() {
	t := s.T()
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	us, err := s.module.Svc.Directory(ctx, "")
	require.NoError(t, err)
	assert.Len(t, us, len(config.DefaultSeeds))
	for _, u := range us {
		assert.Equal(t, user.RoleUser, u.Role)
	}
}

func TestUser(t *testing.T) {
	suite.Run(t, new(UserTestSuite))
}
