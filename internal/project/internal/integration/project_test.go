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
	"strings"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/internal/project"
	"github.com/ecodeclub/project52/internal/project/internal/repository/cache"
	"github.com/ecodeclub/project52/internal/project/internal/web"
	"github.com/ecodeclub/project52/internal/test"
	testioc "github.com/ecodeclub/project52/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	uid      = int64(2051)
	adminUid = int64(1)
	uidKey   = "X-Test-Uid"
)

type ProjectTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	module *project.Module
}

func (s *ProjectTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.module = project.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		// 不同的用例用不同的用户
		id, err := strconv.ParseInt(ctx.GetHeader(uidKey), 10, 64)
		if err != nil {
			id = uid
		}
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: id}))
	})
	s.module.Hdl.PrivateRoutes(server.Engine)
	s.module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ProjectTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `projects`").Error
	require.NoError(s.T(), err)
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	err = cache.NewProgressECache(testioc.InitCache()).Delete(ctx, uid)
	require.NoError(s.T(), err)
}

func (s *ProjectTestSuite) TearDownSuite() {
	err := s.db.Exec("DROP TABLE `projects`").Error
	require.NoError(s.T(), err)
}

func (s *ProjectTestSuite) post(t *testing.T, path string, body any, asUid int64) *http.Request {
	req, err := http.NewRequest(http.MethodPost, path, iox.NewJSONReader(body))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	req.Header.Set(uidKey, strconv.FormatInt(asUid, 10))
	return req
}

func (s *ProjectTestSuite) submit(t *testing.T, req web.SubmitReq) test.Result[web.Project] {
	recorder := test.NewJSONResponseRecorder[web.Project]()
	s.server.ServeHTTP(recorder, s.post(t, "/projects/submit", req, uid))
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan()
}

func (s *ProjectTestSuite) progress(t *testing.T) web.Progress {
	req, err := http.NewRequest(http.MethodGet, "/projects/progress", nil)
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[web.Progress]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *ProjectTestSuite) TestSubmit() {
	testCases := []struct {
		name     string
		req      web.SubmitReq
		wantCode int
		wantMsg  string
	}{
		{
			name: "提交成功",
			req: web.SubmitReq{
				Title:   "Todo App",
				RepoURL: "https://github.com/alice/todo",
				Week:    1,
			},
		},
		{
			name: "不是 GitHub 仓库",
			req: web.SubmitReq{
				Title:   "Todo App",
				RepoURL: "https://gitlab.com/alice/todo",
				Week:    1,
			},
			wantCode: 502002,
			wantMsg:  "repoUrl",
		},
		{
			name: "周数超出范围",
			req: web.SubmitReq{
				Title:   "Todo App",
				RepoURL: "https://github.com/alice/todo",
				Week:    53,
			},
			wantCode: 502002,
			wantMsg:  "week",
		},
	}
	for _, tc := range testCases {
		s.T().Run(tc.name, func(t *testing.T) {
			res := s.submit(t, tc.req)
			assert.Equal(t, tc.wantCode, res.Code)
			if tc.wantCode != 0 {
				assert.Contains(t, res.Msg, tc.wantMsg)
				return
			}
			assert.Equal(t, "Under Review", res.Data.Status)
			assert.Equal(t, uid, res.Data.Uid)
			assert.True(t, res.Data.Id > 0)
		})
	}
}

// TestReviewInvalidatesProgress 审核之后通过消息把进度缓存清掉
func (s *ProjectTestSuite) TestReviewInvalidatesProgress() {
	t := s.T()
	first := s.submit(t, web.SubmitReq{Title: "Todo App", RepoURL: "https://github.com/alice/todo", Week: 1})
	require.Equal(t, 0, first.Code)
	second := s.submit(t, web.SubmitReq{Title: "Chat, Server", RepoURL: "https://github.com/alice/chat", Week: 2})
	require.Equal(t, 0, second.Code)

	p := s.progress(t)
	assert.Equal(t, 52, len(p.Weeks))
	assert.Equal(t, 0, p.CompletedWeeks)
	assert.Equal(t, 2, p.UnderReview)
	assert.Equal(t, "pending", p.Weeks[0].State)

	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.post(t, "/projects/review", web.ReviewReq{
		Id:     first.Data.Id,
		Status: "Approved",
	}, adminUid))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "OK", recorder.MustScan().Msg)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := s.module.ReviewConsumer.Consume(ctx)
	require.NoError(t, err)

	p = s.progress(t)
	assert.Equal(t, 1, p.CompletedWeeks)
	assert.Equal(t, 1, p.UnderReview)
	assert.Equal(t, 2, p.CompletionRate)
	assert.Equal(t, "completed", p.Weeks[0].State)
	assert.Equal(t, first.Data.Id, p.Weeks[0].ProjectId)
}

func (s *ProjectTestSuite) TestReviewNotFound() {
	t := s.T()
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, s.post(t, "/projects/review", web.ReviewReq{
		Id:     404,
		Status: "Rejected",
	}, adminUid))
	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, 502003, recorder.MustScan().Code)
}

func (s *ProjectTestSuite) TestListAndExport() {
	t := s.T()
	for i, title := range []string{"Todo App", "Weather CLI", "Todo Server"} {
		res := s.submit(t, web.SubmitReq{
			Title:   title,
			RepoURL: "https://github.com/alice/repo" + strconv.Itoa(i),
			Week:    i + 1,
		})
		require.Equal(t, 0, res.Code)
	}

	recorder := test.NewJSONResponseRecorder[web.ProjectList]()
	s.server.ServeHTTP(recorder, s.post(t, "/projects/list", web.ListReq{
		FilterReq: web.FilterReq{Keyword: "TODO"},
	}, adminUid))
	require.Equal(t, http.StatusOK, recorder.Code)
	list := recorder.MustScan().Data
	assert.Equal(t, int64(2), list.Total)
	require.Len(t, list.Projects, 2)
	assert.Equal(t, "Todo App", list.Projects[0].Title)
	assert.Equal(t, "Todo Server", list.Projects[1].Title)

	req := s.post(t, "/projects/export", web.FilterReq{Keyword: "todo"}, adminUid)
	resp := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, `attachment; filename="projects_export.csv"`, resp.Header().Get("Content-Disposition"))
	lines := strings.Split(resp.Body.String(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "User ID,Project Title,GitHub Repo,Week,Status,Submission Date", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], `2051,"Todo App",https://github.com/alice/repo0,1,Under Review,`))

	stats := test.NewJSONResponseRecorder[web.Stats]()
	statsReq, err := http.NewRequest(http.MethodGet, "/projects/stats", nil)
	require.NoError(t, err)
	s.server.ServeHTTP(stats, statsReq)
	require.Equal(t, http.StatusOK, stats.Code)
	assert.Equal(t, web.Stats{Total: 3, UnderReview: 3}, stats.MustScan().Data)
}

func TestProject(t *testing.T) {
	suite.Run(t, new(ProjectTestSuite))
}
