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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVideoURL(t *testing.T) {
	testCases := []struct {
		url  string
		want bool
	}{
		{url: "https://www.youtube.com/watch?v=abc", want: true},
		{url: "https://youtu.be/abc", want: true},
		{url: "https://vimeo.com/123", want: true},
		{url: "https://cdn.example.com/a.mp4", want: true},
		{url: "https://cdn.example.com/a.webm", want: true},
		{url: "https://cdn.example.com/a.mp4?t=1", want: false},
		{url: "https://cdn.example.com/a.mov", want: false},
		{url: "", want: false},
	}
	for _, tc := range testCases {
		t.Run(tc.url, func(t *testing.T) {
			assert.Equal(t, tc.want, IsVideoURL(tc.url))
		})
	}
}

func TestEmbedURL(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "watch 地址",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "watch 地址带别的参数",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "短链接",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "短链接带参数",
			url:  "https://youtu.be/dQw4w9WgXcQ?si=xyz",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "vimeo 原样返回",
			url:  "https://vimeo.com/123",
			want: "https://vimeo.com/123",
		},
		{
			name: "普通视频原样返回",
			url:  "https://cdn.example.com/a.mp4",
			want: "https://cdn.example.com/a.mp4",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EmbedURL(tc.url))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	assert.True(t, IsValidURL("https://example.com/a.png"))
	assert.True(t, IsValidURL("mailto:alice@example.com"))
	assert.False(t, IsValidURL("example.com/a.png"))
	assert.False(t, IsValidURL("not a url"))
	assert.False(t, IsValidURL("http://[::1"))
	assert.False(t, IsValidURL(""))
}

func TestClassifyVideo(t *testing.T) {
	assert.Equal(t, VideoKindEmbed, ClassifyVideo("https://youtu.be/abc"))
	assert.Equal(t, VideoKindNative, ClassifyVideo("https://cdn.example.com/a.mov"))
}

func TestPost_BlankMedia(t *testing.T) {
	assert.True(t, Post{Content: "  \n\t"}.Blank())
	assert.False(t, Post{Content: "hello"}.Blank())
	assert.False(t, Post{ImageURL: "https://example.com/a.png"}.Blank())
	assert.False(t, Post{VideoURL: "https://youtu.be/abc"}.Blank())
	assert.False(t, Post{LinkURL: "https://example.com"}.Blank())
}
