package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/project52/internal/user/internal/domain"
	"github.com/ecodeclub/project52/internal/user/internal/repository/cache"
	"github.com/ecodeclub/project52/internal/user/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

var (
	ErrUserNotFound  = dao.ErrDataNotFound
	ErrUserDuplicate = dao.ErrUserDuplicate
	ErrPasswordSet   = dao.ErrPasswordSet
)

//go:generate mockgen -source=./user.go -package=repomocks -destination=mocks/user.mock.go UserRepository
type UserRepository interface {
	Create(ctx context.Context, u domain.User) (int64, error)
	FindByEmail(ctx context.Context, email string) (domain.User, error)
	FindById(ctx context.Context, id int64) (domain.User, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
	SearchByName(ctx context.Context, keyword string, limit int) ([]domain.User, error)
	// SetPassword 给还没有密码的账号设置密码，已经有了返回 ErrPasswordSet
	SetPassword(ctx context.Context, id int64, hash string) error
}

// CachedUserRepository 只有按照 id 查询走缓存
type CachedUserRepository struct {
	dao    dao.UserDAO
	cache  cache.UserCache
	logger *elog.Component
}

func NewCachedUserRepository(d dao.UserDAO,
	c cache.UserCache) UserRepository {
	return &CachedUserRepository{
		dao:    d,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (ur *CachedUserRepository) Create(ctx context.Context, u domain.User) (int64, error) {
	return ur.dao.Insert(ctx, ur.domainToEntity(u))
}

func (ur *CachedUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	u, err := ur.dao.FindByEmail(ctx, email)
	return ur.entityToDomain(u), err
}

func (ur *CachedUserRepository) FindById(ctx context.Context, id int64) (domain.User, error) {
	u, err := ur.cache.Get(ctx, id)
	if err == nil {
		return u, nil
	}
	ue, err := ur.dao.FindById(ctx, id)
	if err != nil {
		return domain.User{}, err
	}
	u = ur.entityToDomain(ue)
	if er := ur.cache.Set(ctx, u); er != nil {
		// 缓存失败不影响业务
		ur.logger.Error("回写用户缓存失败", elog.FieldErr(er), elog.Int64("uid", id))
	}
	return u, nil
}

func (ur *CachedUserRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	us, err := ur.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) SearchByName(ctx context.Context, keyword string, limit int) ([]domain.User, error) {
	us, err := ur.dao.SearchByName(ctx, keyword, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(us, func(idx int, src dao.User) domain.User {
		return ur.entityToDomain(src)
	}), nil
}

func (ur *CachedUserRepository) SetPassword(ctx context.Context, id int64, hash string) error {
	err := ur.dao.SetPassword(ctx, id, hash)
	if err != nil {
		return err
	}
	if er := ur.cache.Delete(ctx, id); er != nil {
		ur.logger.Error("删除用户缓存失败", elog.FieldErr(er), elog.Int64("uid", id))
	}
	return nil
}

func (ur *CachedUserRepository) domainToEntity(u domain.User) dao.User {
	return dao.User{
		Id:       u.Id,
		SN:       u.SN,
		Email:    u.Email,
		Name:     u.Name,
		Role:     string(u.Role),
		Password: u.Password,
	}
}

func (ur *CachedUserRepository) entityToDomain(ue dao.User) domain.User {
	return domain.User{
		Id:       ue.Id,
		SN:       ue.SN,
		Email:    ue.Email,
		Name:     ue.Name,
		Role:     domain.Role(ue.Role),
		Password: ue.Password,
		Ctime:    time.UnixMilli(ue.Ctime),
	}
}
