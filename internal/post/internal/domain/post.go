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

import (
	"strings"
	"time"
)

type Post struct {
	// Id 雪花算法生成，越大越新
	Id  int64
	Uid int64
	// AuthorName 发帖时候的昵称快照
	AuthorName string
	Content    string
	ImageURL   string
	VideoURL   string
	LinkURL    string
	LikeCnt    int64
	// CommentCnt 目前没有评论功能，一直是 0
	CommentCnt int64
	Ctime      time.Time
	Utime      time.Time
}

// Trim 去掉正文和各个链接两端的空白
func (p Post) Trim() Post {
	p.Content = strings.TrimSpace(p.Content)
	p.ImageURL = strings.TrimSpace(p.ImageURL)
	p.VideoURL = strings.TrimSpace(p.VideoURL)
	p.LinkURL = strings.TrimSpace(p.LinkURL)
	return p
}

// Blank 去掉空白之后，正文、图片、视频、链接都没有
func (p Post) Blank() bool {
	p = p.Trim()
	return p.Content == "" &&
		p.ImageURL == "" &&
		p.VideoURL == "" &&
		p.LinkURL == ""
}
