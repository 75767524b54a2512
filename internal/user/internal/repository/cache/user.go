package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/project52/internal/user/internal/domain"
	"github.com/pkg/errors"
)

var ErrKeyNotExist = errors.New("缓存中没有用户信息")

//go:generate mockgen -source=./user.go -package=cachemocks -destination=mocks/user.mock.go UserCache
type UserCache interface {
	Delete(ctx context.Context, id int64) error
	Get(ctx context.Context, id int64) (domain.User, error)
	Set(ctx context.Context, u domain.User) error
}

type UserECache struct {
	cache ecache.Cache
	// 过期时间
	expiration time.Duration
}

// NewUserECache 注意缓存前缀
func NewUserECache(c ecache.Cache) UserCache {
	return &UserECache{
		cache: &ecache.NamespaceCache{
			Namespace: "user:",
			C:         c,
		},
		expiration: time.Minute * 15,
	}
}

func (cache *UserECache) Delete(ctx context.Context, id int64) error {
	_, err := cache.cache.Delete(ctx, cache.key(id))
	return err
}

func (cache *UserECache) Get(ctx context.Context, id int64) (domain.User, error) {
	val := cache.cache.Get(ctx, cache.key(id))
	if val.KeyNotFound() {
		return domain.User{}, ErrKeyNotExist
	}
	if val.Err != nil {
		return domain.User{}, errors.Wrap(val.Err, "查询用户缓存出错")
	}
	var u domain.User
	err := val.JSONScan(&u)
	if err != nil {
		return domain.User{}, errors.Wrap(err, "反序列化用户失败")
	}
	return u, nil
}

// Set 密码不进缓存
func (cache *UserECache) Set(ctx context.Context, u domain.User) error {
	u.Password = ""
	data, err := json.Marshal(u)
	if err != nil {
		return errors.Wrap(err, "序列化用户失败")
	}
	return cache.cache.Set(ctx, cache.key(u.Id), string(data), cache.expiration)
}

func (cache *UserECache) key(id int64) string {
	return fmt.Sprintf("info:%d", id)
}
