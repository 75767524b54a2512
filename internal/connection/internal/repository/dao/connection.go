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
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	StatusPending  uint8 = 1
	StatusAccepted uint8 = 2
	StatusRejected uint8 = 3
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	ErrRequestPending = errors.New("已经有待处理的请求")
	// ErrRequestHandled 请求已经不是 pending 了
	ErrRequestHandled = errors.New("请求已经处理过了")
)

type ConnectionDAO interface {
	// CreateRequest 同一个人对同一个人只能有一个 pending 的请求
	CreateRequest(ctx context.Context, r ConnectionRequest) (int64, error)
	FindRequest(ctx context.Context, id int64) (ConnectionRequest, error)
	// Accept 建立连接和修改请求状态在同一个事务里面
	Accept(ctx context.Context, id int64, c Connection) error
	Reject(ctx context.Context, id int64) error
	PendingTo(ctx context.Context, uid int64) ([]ConnectionRequest, error)
	PendingFrom(ctx context.Context, uid int64) ([]ConnectionRequest, error)
	Connections(ctx context.Context, uid int64) ([]Connection, error)
	// ConnectedUids 不管 uid 是哪一边，返回对方的 uid
	ConnectedUids(ctx context.Context, uid int64) ([]int64, error)
}

type GORMConnectionDAO struct {
	db *egorm.Component
}

func NewGORMConnectionDAO(db *egorm.Component) ConnectionDAO {
	return &GORMConnectionDAO{db: db}
}

func (dao *GORMConnectionDAO) CreateRequest(ctx context.Context, r ConnectionRequest) (int64, error) {
	now := time.Now().UnixMilli()
	r.Status = StatusPending
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing ConnectionRequest
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("from_uid = ? AND to_uid = ? AND status = ?", r.FromUid, r.ToUid, StatusPending).
			First(&existing).Error
		switch {
		case err == nil:
			return ErrRequestPending
		case !errors.Is(err, gorm.ErrRecordNotFound):
			return err
		}
		return tx.Create(&r).Error
	})
	return r.Id, err
}

func (dao *GORMConnectionDAO) FindRequest(ctx context.Context, id int64) (ConnectionRequest, error) {
	var r ConnectionRequest
	err := dao.db.WithContext(ctx).Where("id = ?", id).First(&r).Error
	return r, err
}

func (dao *GORMConnectionDAO) Accept(ctx context.Context, id int64, c Connection) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := dao.finish(tx, id, StatusAccepted, now)
		if err != nil {
			return err
		}
		c.RequestId = id
		c.Ctime = now
		c.Utime = now
		return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&c).Error
	})
}

func (dao *GORMConnectionDAO) Reject(ctx context.Context, id int64) error {
	return dao.finish(dao.db.WithContext(ctx), id, StatusRejected, time.Now().UnixMilli())
}

// finish 只有 pending 的请求才能改，状态不对返回 ErrRequestHandled
func (dao *GORMConnectionDAO) finish(db *gorm.DB, id int64, status uint8, now int64) error {
	res := db.Model(&ConnectionRequest{}).
		Where("id = ? AND status = ?", id, StatusPending).
		Updates(map[string]any{
			"status": status,
			"utime":  now,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRequestHandled
	}
	return nil
}

func (dao *GORMConnectionDAO) PendingTo(ctx context.Context, uid int64) ([]ConnectionRequest, error) {
	var res []ConnectionRequest
	err := dao.db.WithContext(ctx).
		Where("to_uid = ? AND status = ?", uid, StatusPending).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMConnectionDAO) PendingFrom(ctx context.Context, uid int64) ([]ConnectionRequest, error) {
	var res []ConnectionRequest
	err := dao.db.WithContext(ctx).
		Where("from_uid = ? AND status = ?", uid, StatusPending).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMConnectionDAO) Connections(ctx context.Context, uid int64) ([]Connection, error) {
	var res []Connection
	err := dao.db.WithContext(ctx).
		Where("owner_uid = ?", uid).
		Order("id ASC").Find(&res).Error
	return res, err
}

func (dao *GORMConnectionDAO) ConnectedUids(ctx context.Context, uid int64) ([]int64, error) {
	var cs []Connection
	err := dao.db.WithContext(ctx).
		Select("owner_uid", "peer_uid").
		Where("owner_uid = ? OR peer_uid = ?", uid, uid).
		Find(&cs).Error
	if err != nil {
		return nil, err
	}
	res := make([]int64, 0, len(cs))
	for _, c := range cs {
		if c.OwnerUid == uid {
			res = append(res, c.PeerUid)
		} else {
			res = append(res, c.OwnerUid)
		}
	}
	return res, nil
}

// ConnectionRequest 发送方的信息按值冗余一份
type ConnectionRequest struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	FromUid   int64  `gorm:"index:idx_from_to;not null"`
	FromSN    string `gorm:"column:from_sn;type:varchar(64)"`
	FromEmail string `gorm:"type:varchar(256)"`
	FromName  string `gorm:"type:varchar(256)"`
	ToUid     int64  `gorm:"index:idx_from_to;index:idx_to;not null"`
	Status    uint8  `gorm:"type:tinyint unsigned;not null;default:1;comment:1-pending 2-accepted 3-rejected"`
	Ctime     int64
	Utime     int64
}

// Connection 属于 OwnerUid
type Connection struct {
	Id        int64  `gorm:"primaryKey;autoIncrement"`
	OwnerUid  int64  `gorm:"uniqueIndex:uniq_owner_peer;not null"`
	PeerUid   int64  `gorm:"uniqueIndex:uniq_owner_peer;index;not null"`
	PeerSN    string `gorm:"column:peer_sn;type:varchar(64)"`
	PeerEmail string `gorm:"type:varchar(256)"`
	PeerName  string `gorm:"type:varchar(256)"`
	RequestId int64
	Ctime     int64
	Utime     int64
}
