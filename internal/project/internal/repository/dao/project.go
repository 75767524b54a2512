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

type ProjectDAO interface {
	Insert(ctx context.Context, p Project) (int64, error)
	FindById(ctx context.Context, id int64) (Project, error)
	UpdateStatus(ctx context.Context, id int64, status uint8) error
	// FindByUid 按照 id 升序，也就是提交顺序
	FindByUid(ctx context.Context, uid int64) ([]Project, error)
	// List limit <= 0 的时候不分页，导出用
	List(ctx context.Context, cond Condition, offset, limit int) ([]Project, error)
	Count(ctx context.Context, cond Condition) (int64, error)
	CountByStatus(ctx context.Context) (map[uint8]int64, error)
}

// Condition 零值的字段不参与过滤，Keyword 需要调用方转成小写
type Condition struct {
	Keyword string
	Week    int
	Status  uint8
}

var _ ProjectDAO = &GORMProjectDAO{}

type GORMProjectDAO struct {
	db *egorm.Component
}

func NewGORMProjectDAO(db *egorm.Component) ProjectDAO {
	return &GORMProjectDAO{db: db}
}

func (dao *GORMProjectDAO) Insert(ctx context.Context, p Project) (int64, error) {
	now := time.Now().UnixMilli()
	p.Ctime = now
	p.Utime = now
	err := dao.db.WithContext(ctx).Create(&p).Error
	return p.Id, err
}

func (dao *GORMProjectDAO) FindById(ctx context.Context, id int64) (Project, error) {
	var p Project
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&p).Error
	return p, err
}

func (dao *GORMProjectDAO) UpdateStatus(ctx context.Context, id int64, status uint8) error {
	return dao.db.WithContext(ctx).Model(&Project{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status": status,
			"utime":  time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMProjectDAO) FindByUid(ctx context.Context, uid int64) ([]Project, error) {
	var res []Project
	err := dao.db.WithContext(ctx).Where("uid = ?", uid).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) List(ctx context.Context, cond Condition, offset, limit int) ([]Project, error) {
	var res []Project
	db := dao.where(dao.db.WithContext(ctx), cond).Order("id ASC")
	if limit > 0 {
		db = db.Offset(offset).Limit(limit)
	}
	err := db.Find(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) Count(ctx context.Context, cond Condition) (int64, error) {
	var res int64
	err := dao.where(dao.db.WithContext(ctx).Model(&Project{}), cond).Count(&res).Error
	return res, err
}

func (dao *GORMProjectDAO) CountByStatus(ctx context.Context) (map[uint8]int64, error) {
	var rows []struct {
		Status uint8
		Cnt    int64
	}
	err := dao.db.WithContext(ctx).Model(&Project{}).
		Select("status, COUNT(*) AS cnt").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	res := make(map[uint8]int64, len(rows))
	for _, r := range rows {
		res[r.Status] = r.Cnt
	}
	return res, nil
}

func (dao *GORMProjectDAO) where(db *gorm.DB, cond Condition) *gorm.DB {
	if cond.Keyword != "" {
		kw := "%" + cond.Keyword + "%"
		db = db.Where("(LOWER(title) LIKE ? OR LOWER(repo_url) LIKE ?)", kw, kw)
	}
	if cond.Week > 0 {
		db = db.Where("week = ?", cond.Week)
	}
	if cond.Status > 0 {
		db = db.Where("status = ?", cond.Status)
	}
	return db
}

type Project struct {
	Id          int64  `gorm:"primaryKey;autoIncrement"`
	Uid         int64  `gorm:"index;not null"`
	Title       string `gorm:"type:varchar(512);not null"`
	RepoURL     string `gorm:"column:repo_url;type:varchar(512);not null"`
	Description string `gorm:"type:text"`
	Week        int    `gorm:"index;not null"`
	Status      uint8  `gorm:"type:tinyint unsigned;index;not null;default:1;comment:1-审核中 2-通过 3-拒绝"`
	Ctime       int64
	Utime       int64
}
