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
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimitBuilder_Build(t *testing.T) {
	gin.SetMode(gin.ReleaseMode)
	now := time.UnixMilli(1700000000000)
	builder := NewRateLimitBuilder(RateLimitConfig{
		RequestsPerMinute: 2,
		Burst:             2,
		IdleTimeout:       time.Minute,
	})
	builder.now = func() time.Time {
		return now
	}
	builder.KeyFunc(func(ctx *gin.Context) string {
		return ctx.GetHeader("X-Key")
	})
	server := gin.New()
	server.POST("/users/login", builder.Build(), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	do := func(key string) int {
		req := httptest.NewRequest(http.MethodPost, "/users/login", nil)
		req.Header.Set("X-Key", key)
		recorder := httptest.NewRecorder()
		server.ServeHTTP(recorder, req)
		return recorder.Code
	}

	testCases := []struct {
		name     string
		key      string
		advance  time.Duration
		wantCode int
	}{
		{name: "第一次", key: "a", wantCode: http.StatusOK},
		{name: "burst 以内", key: "a", wantCode: http.StatusOK},
		{name: "超过 burst", key: "a", wantCode: http.StatusTooManyRequests},
		{name: "别的 key 不受影响", key: "b", wantCode: http.StatusOK},
		{name: "过了半分钟补充了一个令牌", key: "a", advance: 30 * time.Second, wantCode: http.StatusOK},
		{name: "令牌又用完了", key: "a", wantCode: http.StatusTooManyRequests},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			now = now.Add(tc.advance)
			assert.Equal(t, tc.wantCode, do(tc.key))
		})
	}
}

func TestRateLimitBuilder_Evict(t *testing.T) {
	now := time.UnixMilli(1700000000000)
	builder := NewRateLimitBuilder(RateLimitConfig{
		RequestsPerMinute: 60,
		IdleTimeout:       time.Minute,
	})
	builder.now = func() time.Time {
		return now
	}
	assert.True(t, builder.allow("a"))
	now = now.Add(2 * time.Minute)
	assert.True(t, builder.allow("b"))
	_, ok := builder.visitors["a"]
	assert.False(t, ok)
	_, ok = builder.visitors["b"]
	assert.True(t, ok)
}
