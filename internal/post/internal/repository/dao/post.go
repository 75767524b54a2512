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

package dao

import (
	"context"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type PostDAO interface {
	// Insert id 由调用方生成
	Insert(ctx context.Context, p Post) error
	FindById(ctx context.Context, id int64) (Post, error)
	// IncrLike 原子加一，帖子不存在返回 ErrRecordNotFound
	IncrLike(ctx context.Context, id int64) error
	// List 按照 id 倒序，也就是最新的在前面
	List(ctx context.Context, offset, limit int) ([]Post, error)
}

type GORMPostDAO struct {
	db *egorm.Component
}

func NewGORMPostDAO(db *egorm.Component) PostDAO {
	return &GORMPostDAO{db: db}
}

func (dao *GORMPostDAO) Insert(ctx context.Context, p Post) error {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	return dao.db.WithContext(ctx).Create(&p).Error
}

func (dao *GORMPostDAO) FindById(ctx context.Context, id int64) (Post, error) {
	var p Post
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (dao *GORMPostDAO) IncrLike(ctx context.Context, id int64) error {
	res := dao.db.WithContext(ctx).Model(&Post{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"like_cnt": gorm.Expr("like_cnt + 1"),
			"utime":    time.Now().UnixMilli(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}

func (dao *GORMPostDAO) List(ctx context.Context, offset, limit int) ([]Post, error) {
	var res []Post
	err := dao.db.WithContext(ctx).
		Order("id DESC").
		Offset(offset).Limit(limit).
		Find(&res).Error
	return res, err
}

type Post struct {
	Id         int64  `gorm:"primaryKey;autoIncrement:false"`
	Uid        int64  `gorm:"index;not null"`
	AuthorName string `gorm:"type:varchar(256);not null;default:''"`
	Content    string `gorm:"type:text"`
	ImageURL   string `gorm:"column:image_url;type:varchar(1024)"`
	VideoURL   string `gorm:"column:video_url;type:varchar(1024)"`
	LinkURL    string `gorm:"column:link_url;type:varchar(1024)"`
	LikeCnt    int64  `gorm:"not null;default:0"`
	CommentCnt int64  `gorm:"not null;default:0"`
	Ctime      int64
	Utime      int64
}
