package web

import "github.com/ecodeclub/project52/internal/user/internal/domain"

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	// Name 只有注册的时候用得上
	Name string `json:"name"`
}

type Profile struct {
	Id      int64  `json:"id"`
	SN      string `json:"sn"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Role    string `json:"role"`
	IsAdmin bool   `json:"isAdmin"`
}

func newProfile(u domain.User) Profile {
	return Profile{
		Id:      u.Id,
		SN:      u.SN,
		Email:   u.Email,
		Name:    u.Name,
		Role:    string(u.Role),
		IsAdmin: u.IsAdmin(),
	}
}
