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
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormMysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var requestColumns = []string{"id", "from_uid", "from_sn", "from_email", "from_name", "to_uid", "status", "ctime", "utime"}

func TestGORMConnectionDAO_CreateRequest(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		wantId  int64
		wantErr error
	}{
		{
			name: "创建成功",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `connection_requests` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(requestColumns))
				mock.ExpectExec("INSERT INTO `connection_requests` .*").
					WillReturnResult(sqlmock.NewResult(7, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
			wantId: 7,
		},
		{
			name: "已经有待处理的请求",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `connection_requests` WHERE .* FOR UPDATE").
					WillReturnRows(sqlmock.NewRows(requestColumns).
						AddRow(6, 2, "sn-alice", "alice@example.com", "alice", 3, 1, 100, 100))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: ErrRequestPending,
		},
		{
			name: "查询失败",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectQuery("SELECT \\* FROM `connection_requests` WHERE .* FOR UPDATE").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewGORMConnectionDAO(newMockGORM(t, mockDB))
			id, err := d.CreateRequest(context.Background(), ConnectionRequest{
				FromUid:   2,
				FromSN:    "sn-alice",
				FromEmail: "alice@example.com",
				FromName:  "alice",
				ToUid:     3,
			})
			assert.Equal(t, tc.wantErr, err)
			if err == nil {
				assert.Equal(t, tc.wantId, id)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMConnectionDAO_Accept(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(t *testing.T) (*sql.DB, sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "接受成功",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `connection_requests` SET .* WHERE id = \\? AND status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `connections` .*").
					WillReturnResult(sqlmock.NewResult(9, 1))
				mock.ExpectCommit()
				return mockDB, mock
			},
		},
		{
			name: "已经处理过",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `connection_requests` SET .* WHERE id = \\? AND status = \\?").
					WillReturnResult(sqlmock.NewResult(0, 0))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: ErrRequestHandled,
		},
		{
			name: "建立连接失败回滚",
			mock: func(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
				mockDB, mock, err := sqlmock.New()
				require.NoError(t, err)
				mock.ExpectBegin()
				mock.ExpectExec("UPDATE `connection_requests` SET .*").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("INSERT INTO `connections` .*").
					WillReturnError(errors.New("mock db error"))
				mock.ExpectRollback()
				return mockDB, mock
			},
			wantErr: errors.New("mock db error"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mockDB, mock := tc.mock(t)
			d := NewGORMConnectionDAO(newMockGORM(t, mockDB))
			err := d.Accept(context.Background(), 7, Connection{
				OwnerUid:  3,
				PeerUid:   2,
				PeerSN:    "sn-alice",
				PeerEmail: "alice@example.com",
				PeerName:  "alice",
			})
			assert.Equal(t, tc.wantErr, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGORMConnectionDAO_Reject(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	mock.ExpectExec("UPDATE `connection_requests` SET .* WHERE id = \\? AND status = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	d := NewGORMConnectionDAO(newMockGORM(t, mockDB))
	err = d.Reject(context.Background(), 7)
	assert.Equal(t, ErrRequestHandled, err)
}

func TestGORMConnectionDAO_ConnectedUids(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	rows := sqlmock.NewRows([]string{"owner_uid", "peer_uid"}).
		AddRow(3, 2).
		AddRow(4, 3)
	mock.ExpectQuery("SELECT `owner_uid`,`peer_uid` FROM `connections` WHERE owner_uid = \\? OR peer_uid = \\?").
		WillReturnRows(rows)
	d := NewGORMConnectionDAO(newMockGORM(t, mockDB))
	uids, err := d.ConnectedUids(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{2, 4}, uids)
}

func newMockGORM(t *testing.T, mockDB *sql.DB) *gorm.DB {
	db, err := gorm.Open(gormMysql.New(gormMysql.Config{
		Conn:                      mockDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)
	return db
}
