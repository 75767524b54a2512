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
	"github.com/ecodeclub/project52/internal/connection"
	"github.com/ecodeclub/project52/internal/connection/internal/web"
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

type ConnectionTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	users  map[string]user.User
}

func (s *ConnectionTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	userModule := user.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	module := connection.InitModule(s.db, userModule)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	err := userModule.Svc.EnsureAccounts(ctx, []user.Account{
		{Email: "alice@example.com", Name: "Alice Johnson"},
		{Email: "bob@example.com", Name: "Bob Smith"},
		{Email: "eve@example.com", Name: "Eve Wilson"},
	})
	require.NoError(s.T(), err)
	us, err := userModule.Svc.Directory(ctx, "")
	require.NoError(s.T(), err)
	s.users = make(map[string]user.User, len(us))
	for _, u := range us {
		s.users[u.Name] = u
	}
	require.Len(s.T(), s.users, 3)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		id, _ := strconv.ParseInt(ctx.GetHeader(uidKey), 10, 64)
		ctx.Set(test.SessionKey, session.NewMemorySession(session.Claims{Uid: id}))
	})
	module.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ConnectionTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `connection_requests`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `connections`").Error
	require.NoError(s.T(), err)
}

func (s *ConnectionTestSuite) TearDownSuite() {
	for _, table := range []string{"connection_requests", "connections", "users"} {
		err := s.db.Exec("DROP TABLE `" + table + "`").Error
		require.NoError(s.T(), err)
	}
}

func (s *ConnectionTestSuite) uid(name string) int64 {
	return s.users[name].Id
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

func doGet[T any](t *testing.T, server http.Handler, path string, uid int64) T {
	req, err := http.NewRequest(http.MethodGet, path, nil)
	require.NoError(t, err)
	req.Header.Set(uidKey, strconv.FormatInt(uid, 10))
	recorder := test.NewJSONResponseRecorder[T]()
	server.ServeHTTP(recorder, req)
	require.Equal(t, http.StatusOK, recorder.Code)
	return recorder.MustScan().Data
}

func (s *ConnectionTestSuite) TestRequestLifecycle() {
	t := s.T()
	alice, bob := s.uid("Alice Johnson"), s.uid("Bob Smith")

	sent := doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: bob}, alice)
	require.Equal(t, 0, sent.Code)
	assert.Equal(t, "pending", sent.Data.Status)
	assert.Equal(t, "Alice Johnson", sent.Data.From.Name)

	// 重复发送
	dup := doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: bob}, alice)
	assert.Equal(t, 504004, dup.Code)

	pending := doGet[web.RequestList](t, s.server, "/connections/requests/pending", bob)
	require.Len(t, pending.Requests, 1)
	assert.Equal(t, sent.Data.Id, pending.Requests[0].Id)
	mine := doGet[web.RequestList](t, s.server, "/connections/requests/sent", alice)
	require.Len(t, mine.Requests, 1)

	candidates := doPost[web.CandidateList](t, s.server, "/connections/candidates", web.SearchReq{}, alice)
	require.Equal(t, 0, candidates.Code)
	got := make(map[int64]bool, len(candidates.Data.Candidates))
	for _, c := range candidates.Data.Candidates {
		got[c.Uid] = c.RequestSent
	}
	assert.Equal(t, map[int64]bool{bob: true, s.uid("Eve Wilson"): false}, got)

	// 发送方不能接受自己的请求
	res := doPost[any](t, s.server, "/connections/requests/accept", web.IdReq{Id: sent.Data.Id}, alice)
	assert.Equal(t, 504008, res.Code)

	res = doPost[any](t, s.server, "/connections/requests/accept", web.IdReq{Id: sent.Data.Id}, bob)
	assert.Equal(t, "OK", res.Msg)
	res = doPost[any](t, s.server, "/connections/requests/accept", web.IdReq{Id: sent.Data.Id}, bob)
	assert.Equal(t, 504006, res.Code)

	bobConns := doGet[web.ConnectionList](t, s.server, "/connections/list", bob)
	require.Len(t, bobConns.Connections, 1)
	assert.Equal(t, alice, bobConns.Connections[0].Peer.Uid)
	assert.Equal(t, "connected", bobConns.Connections[0].Status)
	// 连接只记在接收方名下
	aliceConns := doGet[web.ConnectionList](t, s.server, "/connections/list", alice)
	assert.Empty(t, aliceConns.Connections)

	again := doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: alice}, bob)
	assert.Equal(t, 504007, again.Code)
	pending = doGet[web.RequestList](t, s.server, "/connections/requests/pending", bob)
	assert.Empty(t, pending.Requests)
}

func (s *ConnectionTestSuite) TestReject() {
	t := s.T()
	alice, eve := s.uid("Alice Johnson"), s.uid("Eve Wilson")

	sent := doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: eve}, alice)
	require.Equal(t, 0, sent.Code)
	res := doPost[any](t, s.server, "/connections/requests/reject", web.IdReq{Id: sent.Data.Id}, eve)
	assert.Equal(t, "OK", res.Msg)

	conns := doGet[web.ConnectionList](t, s.server, "/connections/list", eve)
	assert.Empty(t, conns.Connections)
	// 拒绝之后可以重新发送
	sent = doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: eve}, alice)
	assert.Equal(t, 0, sent.Code)
}

func (s *ConnectionTestSuite) TestSendToSelfAndUnknown() {
	t := s.T()
	alice := s.uid("Alice Johnson")
	res := doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: alice}, alice)
	assert.Equal(t, 504002, res.Code)
	res = doPost[web.Request](t, s.server, "/connections/requests/send", web.SendReq{ToUid: 404404}, alice)
	assert.Equal(t, 504003, res.Code)
}

func TestConnection(t *testing.T) {
	suite.Run(t, new(ConnectionTestSuite))
}
