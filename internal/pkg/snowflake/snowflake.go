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
	"errors"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
)

//go:generate mockgen -source=./snowflake.go -package=snowflakemocks -destination=mocks/snowflake.mock.go Generator
type Generator interface {
	Generate() ID
}

// 10 bit 的 node，和 bwmarrin/snowflake 的默认布局保持一致
const maxNode uint = 1<<10 - 1

var ErrExceedNode = errors.New("node超出限制")

// +----------------------------------------------------------------------+
// | 1 Bit Unused | 41 Bit Timestamp |  10 Bit NodeID  | 12 Bit Sequence ID |
// +----------------------------------------------------------------------+

// NodeGenerator 同一个进程里面只需要一个
// 生成的 ID 单调递增，所以可以直接用 ID 排序代替按照时间排序
type NodeGenerator struct {
	node *snowflake.Node
}

func NewNodeGenerator(nodeId uint) (*NodeGenerator, error) {
	if nodeId > maxNode {
		return nil, fmt.Errorf("%w, node: %d", ErrExceedNode, nodeId)
	}
	n, err := snowflake.NewNode(int64(nodeId))
	if err != nil {
		return nil, err
	}
	return &NodeGenerator{node: n}, nil
}

func (g *NodeGenerator) Generate() ID {
	return ID(g.node.Generate())
}

type ID int64

func (f ID) Int64() int64 {
	return int64(f)
}

// Time 生成这个 ID 的时间
func (f ID) Time() time.Time {
	return time.UnixMilli(snowflake.ID(f).Time())
}

func (f ID) Node() int64 {
	return snowflake.ID(f).Node()
}
