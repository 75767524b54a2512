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

package project

import (
	"sync"

	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/project52/internal/project/internal/event"
	"github.com/ecodeclub/project52/internal/project/internal/repository"
	"github.com/ecodeclub/project52/internal/project/internal/repository/dao"
	"github.com/ego-component/egorm"
)

var (
	projectDAO     dao.ProjectDAO
	projectDAOOnce sync.Once
)

func initDAO(db *egorm.Component) dao.ProjectDAO {
	projectDAOOnce.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
		projectDAO = dao.NewGORMProjectDAO(db)
	})
	return projectDAO
}

func initReviewEventProducer(q mq.MQ) event.ReviewEventProducer {
	res, err := event.NewReviewEventProducer(q)
	if err != nil {
		panic(err)
	}
	return res
}

func initReviewEventConsumer(q mq.MQ, repo repository.ProjectRepository) *event.ReviewEventConsumer {
	res, err := event.NewReviewEventConsumer(q, repo)
	if err != nil {
		panic(err)
	}
	return res
}
