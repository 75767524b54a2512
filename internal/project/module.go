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
	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/ecodeclub/project52/internal/project/internal/event"
	"github.com/ecodeclub/project52/internal/project/internal/service"
	"github.com/ecodeclub/project52/internal/project/internal/web"
)

type Module struct {
	Hdl            *Handler
	AdminHdl       *AdminHandler
	Svc            Service
	ReviewConsumer *ReviewEventConsumer
}

type Handler = web.Handler
type AdminHandler = web.AdminHandler
type Service = service.Service
type ReviewEventConsumer = event.ReviewEventConsumer
type ReviewEvent = event.ReviewEvent

type Project = domain.Project
type Status = domain.Status
