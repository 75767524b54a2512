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

package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotExist = errors.New("key不存在")

type ProgressCache interface {
	Get(ctx context.Context, uid int64) (domain.Progress, error)
	Set(ctx context.Context, uid int64, p domain.Progress) error
	Delete(ctx context.Context, uid int64) error
}

type ProgressECache struct {
	cache      ecache.Cache
	expiration time.Duration
}

func NewProgressECache(c ecache.Cache) ProgressCache {
	return &ProgressECache{
		cache: &ecache.NamespaceCache{
			Namespace: "project:",
			C:         c,
		},
		expiration: time.Hour,
	}
}

func (c *ProgressECache) Get(ctx context.Context, uid int64) (domain.Progress, error) {
	val := c.cache.Get(ctx, c.key(uid))
	if val.KeyNotFound() {
		return domain.Progress{}, ErrKeyNotExist
	}
	if val.Err != nil {
		return domain.Progress{}, errors.Wrap(val.Err, "查询进度缓存出错")
	}
	var p domain.Progress
	err := val.JSONScan(&p)
	if err != nil {
		return domain.Progress{}, errors.Wrap(err, "反序列化进度失败")
	}
	return p, nil
}

func (c *ProgressECache) Set(ctx context.Context, uid int64, p domain.Progress) error {
	data, err := json.Marshal(p)
	if err != nil {
		return errors.Wrap(err, "序列化进度失败")
	}
	return c.cache.Set(ctx, c.key(uid), string(data), c.expiration)
}

func (c *ProgressECache) Delete(ctx context.Context, uid int64) error {
	_, err := c.cache.Delete(ctx, c.key(uid))
	return err
}

func (c *ProgressECache) key(uid int64) string {
	return fmt.Sprintf("progress:%d", uid)
}
