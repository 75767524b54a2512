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

type Status uint8

func (s Status) ToUint8() uint8 {
	return uint8(s)
}

const (
	// StatusUnknown 未知
	StatusUnknown Status = iota
	// StatusUnderReview 提交之后等待审核
	StatusUnderReview
	// StatusApproved 审核通过，算作完成了这一周
	StatusApproved
	// StatusRejected 审核拒绝
	StatusRejected
)

func (s Status) String() string {
	switch s {
	case StatusUnderReview:
		return "Under Review"
	case StatusApproved:
		return "Approved"
	case StatusRejected:
		return "Rejected"
	default:
		return "Unknown"
	}
}

// Reviewed 审核的目标状态只有通过和拒绝
func (s Status) Reviewed() bool {
	return s == StatusApproved || s == StatusRejected
}

// ParseStatus 前端传过来的是展示用的文案
func ParseStatus(s string) Status {
	switch s {
	case StatusUnderReview.String():
		return StatusUnderReview
	case StatusApproved.String():
		return StatusApproved
	case StatusRejected.String():
		return StatusRejected
	default:
		return StatusUnknown
	}
}

type Project struct {
	Id          int64
	Uid         int64
	Title       string
	RepoURL     string
	Description string
	// Week 取值 1 到 52，同一个人同一周可以提交多个
	Week   int
	Status Status
	// Ctime 也就是提交时间
	Ctime time.Time
	Utime time.Time
}

// Filter 几个条件之间是 AND 的关系，零值表示不过滤
type Filter struct {
	// Keyword 匹配标题或者仓库地址，不区分大小写
	Keyword string
	Week    int
	Status  Status
}

type Stats struct {
	Total       int64
	UnderReview int64
	Approved    int64
	Rejected    int64
}
