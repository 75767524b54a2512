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

package domain

import "time"

type RequestStatus uint8

func (s RequestStatus) ToUint8() uint8 {
	return uint8(s)
}

const (
	RequestStatusUnknown RequestStatus = iota
	RequestStatusPending
	// RequestStatusAccepted 和 RequestStatusRejected 都是终态
	RequestStatusAccepted
	RequestStatusRejected
)

func (s RequestStatus) String() string {
	switch s {
	case RequestStatusPending:
		return "pending"
	case RequestStatusAccepted:
		return "accepted"
	case RequestStatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// ConnectionStatus 连接只有这一种状态
const ConnectionStatus = "connected"

// Peer 用户信息快照，按值保存，后面用户改名也不会变
type Peer struct {
	Uid   int64
	SN    string
	Email string
	Name  string
}

type Request struct {
	Id     int64
	From   Peer
	ToUid  int64
	Status RequestStatus
	Ctime  time.Time
	Utime  time.Time
}

// Connection 属于 OwnerUid，Peer 是对方
type Connection struct {
	Id        int64
	OwnerUid  int64
	Peer      Peer
	RequestId int64
	Ctime     time.Time
}

type Candidate struct {
	Peer Peer
	// RequestSent 已经发过请求，还没有处理
	RequestSent bool
}
