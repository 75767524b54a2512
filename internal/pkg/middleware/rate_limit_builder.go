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
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"golang.org/x/time/rate"
)

type RateLimitConfig struct {
	// 每分钟允许的请求数
	RequestsPerMinute int `yaml:"requestsPerMinute"`
	Burst             int `yaml:"burst"`
	// 超过这个时间没有访问的 key 会被清理掉
	IdleTimeout time.Duration `yaml:"idleTimeout"`
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitBuilder 按照 key 限流，默认 key 是客户端 IP
type RateLimitBuilder struct {
	mutex    sync.Mutex
	visitors map[string]*visitor
	limit    rate.Limit
	burst    int
	idle     time.Duration
	keyFunc  func(ctx *gin.Context) string
	now      func() time.Time
	logger   *elog.Component
}

func NewRateLimitBuilder(cfg RateLimitConfig) *RateLimitBuilder {
	if cfg.RequestsPerMinute <= 0 {
		cfg.RequestsPerMinute = 30
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerMinute
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 10 * time.Minute
	}
	return &RateLimitBuilder{
		visitors: make(map[string]*visitor),
		limit:    rate.Every(time.Minute / time.Duration(cfg.RequestsPerMinute)),
		burst:    cfg.Burst,
		idle:     cfg.IdleTimeout,
		keyFunc: func(ctx *gin.Context) string {
			return ctx.ClientIP()
		},
		now:    time.Now,
		logger: elog.DefaultLogger,
	}
}

func (b *RateLimitBuilder) KeyFunc(fn func(ctx *gin.Context) string) *RateLimitBuilder {
	b.keyFunc = fn
	return b
}

func (b *RateLimitBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		key := b.keyFunc(ctx)
		if b.allow(key) {
			ctx.Next()
			return
		}
		b.logger.Warn("触发限流", elog.String("key", key), elog.String("path", ctx.FullPath()))
		ctx.AbortWithStatus(http.StatusTooManyRequests)
	}
}

func (b *RateLimitBuilder) allow(key string) bool {
	b.mutex.Lock()
	defer b.mutex.Unlock()
	now := b.now()
	v, ok := b.visitors[key]
	if !ok {
		b.evict(now)
		v = &visitor{limiter: rate.NewLimiter(b.limit, b.burst)}
		b.visitors[key] = v
	}
	v.lastSeen = now
	return v.limiter.AllowN(now, 1)
}

// evict 只在新 key 进来的时候顺手清理，调用方持有锁
func (b *RateLimitBuilder) evict(now time.Time) {
	for key, v := range b.visitors {
		if now.Sub(v.lastSeen) > b.idle {
			delete(b.visitors, key)
		}
	}
}
