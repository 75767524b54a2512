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

import "github.com/ecodeclub/project52/internal/post/internal/domain"

type CreateReq struct {
	Content  string `json:"content"`
	ImageURL string `json:"imageUrl"`
	VideoURL string `json:"videoUrl"`
	LinkURL  string `json:"linkUrl"`
}

type IdReq struct {
	Id int64 `json:"id,string"`
}

type Page struct {
	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// Post 不合法的地址直接不返回
type Post struct {
	// Id 雪花 id 超出了 js 的精度，用字符串
	Id            int64  `json:"id,string"`
	Uid           int64  `json:"uid"`
	AuthorName    string `json:"authorName"`
	Content       string `json:"content,omitempty"`
	ImageURL      string `json:"imageUrl,omitempty"`
	VideoURL      string `json:"videoUrl,omitempty"`
	VideoEmbedURL string `json:"videoEmbedUrl,omitempty"`
	VideoKind     string `json:"videoKind,omitempty"`
	LinkURL       string `json:"linkUrl,omitempty"`
	Likes         int64  `json:"likes"`
	Comments      int64  `json:"comments"`
	// Timestamp 毫秒
	Timestamp int64 `json:"timestamp"`
}

func newPost(p domain.Post) Post {
	res := Post{
		Id:         p.Id,
		Uid:        p.Uid,
		AuthorName: p.AuthorName,
		Content:    p.Content,
		Likes:      p.LikeCnt,
		Comments:   p.CommentCnt,
		Timestamp:  p.Ctime.UnixMilli(),
	}
	if domain.IsValidURL(p.ImageURL) {
		res.ImageURL = p.ImageURL
	}
	if domain.IsValidURL(p.VideoURL) {
		res.VideoURL = p.VideoURL
		res.VideoKind = string(domain.ClassifyVideo(p.VideoURL))
		if res.VideoKind == string(domain.VideoKindEmbed) {
			res.VideoEmbedURL = domain.EmbedURL(p.VideoURL)
		}
	}
	if domain.IsValidURL(p.LinkURL) {
		res.LinkURL = p.LinkURL
	}
	return res
}

type PostList struct {
	Posts []Post `json:"posts"`
}
