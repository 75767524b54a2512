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

import "math"

const TotalWeeks = 52

type CellState uint8

const (
	CellEmpty CellState = iota
	CellPending
	CellCompleted
)

func (c CellState) String() string {
	switch c {
	case CellPending:
		return "pending"
	case CellCompleted:
		return "completed"
	default:
		return "empty"
	}
}

type WeekCell struct {
	Week  int
	State CellState
	// ProjectId 决定这一格状态的项目，没有就是 0
	ProjectId int64
}

type Progress struct {
	Weeks []WeekCell
	// CompletedWeeks 审核通过的项目数
	CompletedWeeks int
	UnderReview    int
	// CompletionRate 百分比，四舍五入
	CompletionRate int
}

// NewProgress projects 要按照 id 升序排列，每一周以最早提交的那个项目为准
func NewProgress(projects []Project) Progress {
	cells := make([]WeekCell, TotalWeeks)
	for i := range cells {
		cells[i].Week = i + 1
	}
	res := Progress{Weeks: cells}
	for _, p := range projects {
		switch p.Status {
		case StatusApproved:
			res.CompletedWeeks++
		case StatusUnderReview:
			res.UnderReview++
		}
		if p.Week < 1 || p.Week > TotalWeeks {
			continue
		}
		cell := &cells[p.Week-1]
		if cell.ProjectId != 0 {
			continue
		}
		cell.ProjectId = p.Id
		if p.Status == StatusApproved {
			cell.State = CellCompleted
		} else {
			cell.State = CellPending
		}
	}
	res.CompletionRate = int(math.Round(float64(res.CompletedWeeks) / TotalWeeks * 100))
	return res
}
