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

package service

import (
	"strconv"
	"strings"

	"github.com/ecodeclub/project52/internal/project/internal/domain"
)

const csvHeader = "User ID,Project Title,GitHub Repo,Week,Status,Submission Date"

// ExportCSV 只有标题加了双引号，其余字段原样输出，不做转义
// 日期格式和浏览器 en-US 的 toLocaleDateString 一致
func ExportCSV(projects []domain.Project) []byte {
	var sb strings.Builder
	sb.WriteString(csvHeader)
	for _, p := range projects {
		sb.WriteByte('\n')
		sb.WriteString(strconv.FormatInt(p.Uid, 10))
		sb.WriteByte(',')
		sb.WriteString(`"` + p.Title + `"`)
		sb.WriteByte(',')
		sb.WriteString(p.RepoURL)
		sb.WriteByte(',')
		sb.WriteString(strconv.Itoa(p.Week))
		sb.WriteByte(',')
		sb.WriteString(p.Status.String())
		sb.WriteByte(',')
		sb.WriteString(p.Ctime.Format("1/2/2006"))
	}
	return []byte(sb.String())
}
