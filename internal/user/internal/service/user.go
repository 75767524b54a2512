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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/ecodeclub/project52/internal/user/internal/domain"
	"github.com/ecodeclub/project52/internal/user/internal/event"
	"github.com/ecodeclub/project52/internal/user/internal/repository"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidInput      = errors.New("邮箱和密码不能为空")
	ErrInvalidCredential = errors.New("邮箱或者密码不对")
	ErrUserNotFound      = repository.ErrUserNotFound
)

// 通讯录一次最多返回这么多人
const directoryLimit = 200

//go:generate mockgen -source=./user.go -package=svcmocks -destination=mocks/user.mock.go UserService
type UserService interface {
	// Login 邮箱第一次出现的时候等于注册，后续登录校验密码
	Login(ctx context.Context, email, password, name string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// CheckAdmin 邮箱密码能对上，并且是管理员
	CheckAdmin(ctx context.Context, email, password string) bool
	FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error)
	// Directory 普通用户里面按照昵称搜索，keyword 为空就是全部，不包含管理员
	Directory(ctx context.Context, keyword string) ([]domain.User, error)
	// EnsureAccounts 预置账号，已经存在的跳过
	EnsureAccounts(ctx context.Context, accounts []domain.Account) error
}

type userService struct {
	repo     repository.UserRepository
	producer event.RegistrationEventProducer
	logger   *elog.Component
}

func NewUserService(repo repository.UserRepository, p event.RegistrationEventProducer) UserService {
	return &userService{
		repo:     repo,
		producer: p,
		logger:   elog.DefaultLogger,
	}
}

func (svc *userService) Login(ctx context.Context, email, password, name string) (domain.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return domain.User{}, ErrInvalidInput
	}
	u, err := svc.repo.FindByEmail(ctx, email)
	switch {
	case err == nil && u.Password == "":
		return svc.claim(ctx, u, password)
	case err == nil:
		if er := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); er != nil {
			return domain.User{}, ErrInvalidCredential
		}
		return u, nil
	case errors.Is(err, repository.ErrUserNotFound):
		return svc.signup(ctx, email, password, name)
	default:
		return domain.User{}, err
	}
}

// claim 预置的示例账号没有密码，第一次登录的密码就是它的密码
func (svc *userService) claim(ctx context.Context, u domain.User, password string) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	err = svc.repo.SetPassword(ctx, u.Id, string(hash))
	if errors.Is(err, repository.ErrPasswordSet) {
		// 别的请求先设置了密码，重新按照密码校验
		u, err = svc.repo.FindByEmail(ctx, u.Email)
		if err != nil {
			return domain.User{}, err
		}
		if er := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); er != nil {
			return domain.User{}, ErrInvalidCredential
		}
		return u, nil
	}
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	return u, nil
}

func (svc *userService) signup(ctx context.Context, email, password, name string) (domain.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = domain.DefaultName(email)
	}
	u, err := svc.create(ctx, domain.Account{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     domain.RoleUser,
	})
	if errors.Is(err, repository.ErrUserDuplicate) {
		// 并发注册，另外一个请求先落库了，按照登录处理
		return svc.Login(ctx, email, password, name)
	}
	if err != nil {
		return domain.User{}, err
	}

	evt := event.RegistrationEvent{Uid: u.Id, Email: u.Email, Name: u.Name}
	if e := svc.producer.Produce(ctx, evt); e != nil {
		svc.logger.Error("发送注册成功消息失败",
			elog.FieldErr(e),
			elog.FieldKey("event"),
			elog.FieldValueAny(evt),
		)
	}
	return u, nil
}

// create 密码为空的时候不生成 hash，留给第一次登录设置
func (svc *userService) create(ctx context.Context, acc domain.Account) (domain.User, error) {
	var hash string
	if acc.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(acc.Password), bcrypt.DefaultCost)
		if err != nil {
			return domain.User{}, err
		}
		hash = string(h)
	}
	u := domain.User{
		SN:       shortuuid.New(),
		Email:    acc.Email,
		Name:     acc.Name,
		Role:     acc.Role,
		Password: hash,
	}
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	return svc.repo.FindById(ctx, id)
}

func (svc *userService) CheckAdmin(ctx context.Context, email, password string) bool {
	u, err := svc.repo.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil || !u.IsAdmin() {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)) == nil
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) (map[int64]domain.User, error) {
	us, err := svc.repo.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	res := make(map[int64]domain.User, len(us))
	for _, u := range us {
		res[u.Id] = u.Snapshot()
	}
	return res, nil
}

func (svc *userService) Directory(ctx context.Context, keyword string) ([]domain.User, error) {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	return svc.repo.SearchByName(ctx, keyword, directoryLimit)
}

func (svc *userService) EnsureAccounts(ctx context.Context, accounts []domain.Account) error {
	for _, acc := range accounts {
		if acc.Email == "" {
			continue
		}
		_, err := svc.repo.FindByEmail(ctx, acc.Email)
		if err == nil {
			continue
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		if acc.Name == "" {
			acc.Name = domain.DefaultName(acc.Email)
		}
		if acc.Role == "" {
			acc.Role = domain.RoleUser
		}
		_, err = svc.create(ctx, acc)
		if err != nil && !errors.Is(err, repository.ErrUserDuplicate) {
			return err
		}
		svc.logger.Info("初始化账号", elog.String("email", acc.Email), elog.String("role", string(acc.Role)))
	}
	return nil
}
