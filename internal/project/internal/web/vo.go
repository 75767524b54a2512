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

package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/project52/internal/project/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

type SubmitReq struct {
	Title       string `json:"title"`
	RepoURL     string `json:"repoUrl"`
	Description string `json:"description"`
	Week        int    `json:"week"`
}

func (r SubmitReq) toDomain(uid int64) domain.Project {
	return domain.Project{
		Uid:         uid,
		Title:       r.Title,
		RepoURL:     r.RepoURL,
		Description: r.Description,
		Week:        r.Week,
	}
}

type Project struct {
	Id          int64  `json:"id"`
	Uid         int64  `json:"uid"`
	Title       string `json:"title"`
	RepoURL     string `json:"repoUrl"`
	Description string `json:"description"`
	Week        int    `json:"week"`
	Status      string `json:"status"`
	// SubmissionDate 毫秒
	SubmissionDate int64 `json:"submissionDate"`
}

func newProject(p domain.Project) Project {
	return Project{
		Id:             p.Id,
		Uid:            p.Uid,
		Title:          p.Title,
		RepoURL:        p.RepoURL,
		Description:    p.Description,
		Week:           p.Week,
		Status:         p.Status.String(),
		SubmissionDate: p.Ctime.UnixMilli(),
	}
}

func newProjects(ps []domain.Project) []Project {
	return slice.Map(ps, func(idx int, src domain.Project) Project {
		return newProject(src)
	})
}

type ProjectList struct {
	Projects []Project `json:"projects"`
	Total    int64     `json:"total"`
}

// FilterReq Status 为空或者 all 表示不过滤，Week 为 0 表示不过滤
type FilterReq struct {
	Keyword string `json:"keyword"`
	Week    int    `json:"week"`
	Status  string `json:"status"`
}

func (r FilterReq) toDomain() domain.Filter {
	return domain.Filter{
		Keyword: r.Keyword,
		Week:    r.Week,
		Status:  domain.ParseStatus(r.Status),
	}
}

type ListReq struct {
	FilterReq
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

func (r ListReq) page() (int, int) {
	offset, limit := r.Offset, r.Limit
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	return offset, min(limit, maxLimit)
}

type ReviewReq struct {
	Id     int64  `json:"id"`
	Status string `json:"status"`
}

type WeekCell struct {
	Week      int    `json:"week"`
	State     string `json:"state"`
	ProjectId int64  `json:"projectId,omitempty"`
}

type Progress struct {
	Weeks          []WeekCell `json:"weeks"`
	CompletedWeeks int        `json:"completedWeeks"`
	TotalWeeks     int        `json:"totalWeeks"`
	UnderReview    int        `json:"underReview"`
	CompletionRate int        `json:"completionRate"`
}

func newProgress(p domain.Progress) Progress {
	return Progress{
		Weeks: slice.Map(p.Weeks, func(idx int, src domain.WeekCell) WeekCell {
			return WeekCell{
				Week:      src.Week,
				State:     src.State.String(),
				ProjectId: src.ProjectId,
			}
		}),
		CompletedWeeks: p.CompletedWeeks,
		TotalWeeks:     domain.TotalWeeks,
		UnderReview:    p.UnderReview,
		CompletionRate: p.CompletionRate,
	}
}

type Stats struct {
	Total       int64 `json:"total"`
	UnderReview int64 `json:"underReview"`
	Approved    int64 `json:"approved"`
	Rejected    int64 `json:"rejected"`
}
