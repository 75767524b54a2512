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
	"github.com/ecodeclub/project52/internal/pkg/snowflake"
	"github.com/ecodeclub/project52/internal/post"
	"github.com/ecodeclub/project52/internal/post/internal/web"
	"github.com/ecodeclub/project52/internal/test"
	testioc "github.com/ecodeclub/project52/internal/test/ioc"
	"github.com/ecodeclub/project52/internal/user"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uidKey = "X-Test-Uid"

type PostTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	uid    int64
}

func (s *PostTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	q := testioc.InitMQ()
	userModule := user.InitModule(s.db, testioc.InitCache(), q)
	idGen, err := snowflake.NewNodeGenerator(1)
	require.NoError(s.T(), err)
	module := post.InitModule(s.db, q, userModule, idGen)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	alice, err := userModule.Svc.Login(ctx, "alice@example.com", "password1", "Alice Johnson")
	require.NoError(s.T(), err)
	s.uid = alice.Id

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		id, _ := strconv.ParseInt(ctx.GetHeader(uidKey), 10, 64)
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: id}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *PostTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `posts`").Error
	require.NoError(s.T(), err)
}

func (s *PostTestSuite) TearDownSuite() {
	for _, table := range []string{"posts", "users"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func doPost[T any](t *testing.T, server http.Handler, path string, body any, uid int64) test.Result[T] {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(uidKey, strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *PostTestSuite) list() []web.Post {
	res := doPost[web.PostList](s.T(), s.server, "/posts/list", web.Page{Limit: 50}, s.uid)
	require.Equal(s.T(), 0, res.Code)
	return res.Data.Posts
}

func (s *PostTestSuite) TestCreateAndLike() {
	t := s.T()
	created := doPost[web.Post](t, s.server, "/posts/create", web.CreateReq{
		Content: "week 1 done",
		LinkURL: " https://example.com ",
	}, s.uid)
	require.Equal(t, 0, created.Code)
	assert.Equal(t, "Alice Johnson", created.Data.AuthorName)
	assert.Equal(t, "https://example.com", created.Data.LinkURL)
	assert.Equal(t, int64(0), created.Data.Likes)

	const n = 5
	for i := 0; i < n; i++ {
		res := doPost[any](t, s.server, "/posts/like", web.IdReq{Id: created.Data.Id}, s.uid)
		require.Equal(t, "OK", res.Msg)
	}

	posts := s.list()
	require.Len(t, posts, 1)
	assert.Equal(t, created.Data.Id, posts[0].Id)
	assert.Equal(t, int64(n), posts[0].Likes)

	// 空帖子不落库
	blank := doPost[web.Post](t, s.server, "/posts/create", web.CreateReq{
		Content:  " \n ",
		ImageURL: "  ",
		VideoURL: "\t",
		LinkURL:  " ",
	}, s.uid)
	assert.Equal(t, 503002, blank.Code)
	assert.Len(t, s.list(), 1)
}

func (s *PostTestSuite) TestListNewestFirst() {
	t := s.T()
	var ids []int64
	for _, content := range []string{"first", "second", "third"} {
		res := doPost[web.Post](t, s.server, "/posts/create", web.CreateReq{Content: content}, s.uid)
		require.Equal(t, 0, res.Code)
		ids = append(ids, res.Data.Id)
	}
	posts := s.list()
	require.Len(t, posts, 3)
	assert.Equal(t, []int64{ids[2], ids[1], ids[0]}, []int64{posts[0].Id, posts[1].Id, posts[2].Id})
}

func (s *PostTestSuite) TestLikeNotFound() {
	res := doPost[any](s.T(), s.server, "/posts/like", web.IdReq{Id: 404404}, s.uid)
	assert.Equal(s.T(), 503003, res.Code)
}

func TestPost(t *testing.T) {
	suite.Run(t, new(PostTestSuite))
}
