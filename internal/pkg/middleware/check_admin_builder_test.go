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

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/project52/internal/test"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCheckAdminBuilder_Build(t *testing.T) {
	testCases := []struct {
		name     string
		sess     session.Session
		wantCode int
	}{
		{
			name: "管理员",
			sess: session.NewMemorySession(session.Claims{
				Uid:  1,
				Data: map[string]string{RoleClaimKey: RoleAdmin},
			}),
			wantCode: http.StatusOK,
		},
		{
			name: "普通用户",
			sess: session.NewMemorySession(session.Claims{
				Uid:  2,
				Data: map[string]string{RoleClaimKey: "user"},
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name: "没有角色",
			sess: session.NewMemorySession(session.Claims{
				Uid: 3,
			}),
			wantCode: http.StatusForbidden,
		},
		{
			name:     "没有登录",
			wantCode: http.StatusUnauthorized,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := gin.New()
			server.Use(func(ctx *gin.Context) {
				if tc.sess != nil {
					ctx.Set(test.SessionKey, tc.sess)
				}
			})
			server.GET("/projects/stats", NewCheckAdminBuilder().Build(), func(ctx *gin.Context) {
				ctx.Status(http.StatusOK)
			})
			req := httptest.NewRequest(http.MethodGet, "/projects/stats", nil)
			recorder := httptest.NewRecorder()
			server.ServeHTTP(recorder, req)
			assert.Equal(t, tc.wantCode, recorder.Code)
		})
	}
}
