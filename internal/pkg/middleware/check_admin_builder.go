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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

const (
	// RoleClaimKey 登录的时候写入 jwt data
	RoleClaimKey = "role"
	RoleAdmin    = "admin"
)

// CheckAdminBuilder 要求 session 里面的角色是 admin
// 必须放在 session.CheckLoginMiddleware 之后
type CheckAdminBuilder struct {
	logger *elog.Component
}

func NewCheckAdminBuilder() *CheckAdminBuilder {
	return &CheckAdminBuilder{
		logger: elog.DefaultLogger,
	}
}

func (b *CheckAdminBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		gctx := &ginx.Context{Context: ctx}
		sess, err := session.Get(gctx)
		if err != nil {
			ctx.AbortWithStatus(http.StatusUnauthorized)
			b.logger.Error("非法访问 admin 接口", elog.FieldErr(err))
			return
		}
		claims := sess.Claims()
		if claims.Get(RoleClaimKey).StringOrDefault("") != RoleAdmin {
			ctx.AbortWithStatus(http.StatusForbidden)
			b.logger.Error("非法访问 admin 接口，不是管理员", elog.Int64("uid", claims.Uid))
			return
		}
		ctx.Next()
	}
}
