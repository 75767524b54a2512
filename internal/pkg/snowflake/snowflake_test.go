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

package snowflake

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNodeGenerator(t *testing.T) {
	testcases := []struct {
		name        string
		nodeId      uint
		wantErrFunc require.ErrorAssertionFunc
	}{
		{
			name:   "nodeId超出限制",
			nodeId: 1024,
			wantErrFunc: func(t require.TestingT, err error, _ ...interface{}) {
				require.ErrorIs(t, err, ErrExceedNode)
			},
		},
		{
			name:        "最大的nodeId",
			nodeId:      1023,
			wantErrFunc: require.NoError,
		},
		{
			name:        "生成正常",
			nodeId:      0,
			wantErrFunc: require.NoError,
		},
	}
	for _, tt := range testcases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewNodeGenerator(tt.nodeId)
			tt.wantErrFunc(t, err)
		})
	}
}

func TestNodeGenerator_Generate(t *testing.T) {
	gen, err := NewNodeGenerator(3)
	require.NoError(t, err)
	const cnt = 100000
	idmap := make(map[int64]struct{}, cnt)
	prev := int64(0)
	for i := 0; i < cnt; i++ {
		id := gen.Generate()
		_, ok := idmap[id.Int64()]
		// 不能重复
		require.False(t, ok)
		idmap[id.Int64()] = struct{}{}
		// 必须递增
		require.Greater(t, id.Int64(), prev)
		prev = id.Int64()
		assert.Equal(t, int64(3), id.Node())
	}
}

func TestID_Time(t *testing.T) {
	gen, err := NewNodeGenerator(1)
	require.NoError(t, err)
	before := time.Now().Add(-time.Second)
	id := gen.Generate()
	after := time.Now().Add(time.Second)
	assert.True(t, id.Time().After(before))
	assert.True(t, id.Time().Before(after))
}
