package domain

import (
	"strings"
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	Id int64
	// SN 对外暴露的不透明标识，创建之后不会变
	SN    string
	Email string
	Name  string
	Role  Role
	// Password 加密之后的密码，不会返回给前端
	Password string
	Ctime    time.Time
}

func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Snapshot 别的模块按值保存的用户信息
func (u User) Snapshot() User {
	return User{
		Id:    u.Id,
		SN:    u.SN,
		Email: u.Email,
		Name:  u.Name,
		Role:  u.Role,
	}
}

// DefaultName 没有填昵称就用邮箱 @ 前面的部分
func DefaultName(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}

// Account 配置文件里面预置的账号
type Account struct {
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
	Role     Role   `yaml:"role"`
}
