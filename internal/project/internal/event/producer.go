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

package event

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/project52/internal/pkg/mqx"
)

// ReviewEvent 管理员审核了一个项目
type ReviewEvent struct {
	Pid    int64 `json:"pid"`
	Uid    int64 `json:"uid"`
	Status uint8 `json:"status"`
}

func (ReviewEvent) Topic() string {
	return "project_review_events"
}

//go:generate mockgen -source=./producer.go -package=evtmocks -destination=mocks/producer.mock.go ReviewEventProducer
type ReviewEventProducer interface {
	mqx.Producer[ReviewEvent]
}

func NewReviewEventProducer(q mq.MQ) (ReviewEventProducer, error) {
	return mqx.NewGeneralProducer[ReviewEvent](q)
}
