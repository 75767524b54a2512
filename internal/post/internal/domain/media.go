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
	"net/url"
	"strings"
)

const youtubeEmbedPrefix = "https://www.youtube.com/embed/"

type VideoKind string

const (
	// VideoKindEmbed 用 iframe 嵌入
	VideoKindEmbed VideoKind = "embed"
	// VideoKindNative 直接用 video 标签播放
	VideoKindNative VideoKind = "native"
)

// IsValidURL 必须是带 scheme 的绝对地址
func IsValidURL(u string) bool {
	res, err := url.Parse(u)
	return err == nil && res.Scheme != ""
}

func IsVideoURL(u string) bool {
	return strings.Contains(u, "youtube.com") ||
		strings.Contains(u, "youtu.be") ||
		strings.Contains(u, "vimeo.com") ||
		strings.HasSuffix(u, ".mp4") ||
		strings.HasSuffix(u, ".webm")
}

// EmbedURL 只转换 YouTube 的两种分享地址，其余的原样返回
func EmbedURL(u string) string {
	if strings.Contains(u, "youtube.com/watch?v=") {
		_, after, _ := strings.Cut(u, "v=")
		id, _, _ := strings.Cut(after, "&")
		return youtubeEmbedPrefix + id
	}
	if strings.Contains(u, "youtu.be/") {
		_, after, _ := strings.Cut(u, "youtu.be/")
		id, _, _ := strings.Cut(after, "?")
		return youtubeEmbedPrefix + id
	}
	return u
}

func ClassifyVideo(u string) VideoKind {
	if IsVideoURL(u) {
		return VideoKindEmbed
	}
	return VideoKindNative
}
