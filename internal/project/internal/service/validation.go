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
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/ecodeclub/project52/internal/project/internal/domain"
	"github.com/go-playground/validator/v10"
)

var (
	githubRepoPattern = regexp.MustCompile(`^https://github\.com/[\w-]+/[\w-]+/?$`)
	validate          = newValidator()
)

// ValidationError Field 是前端用的字段名
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

type submission struct {
	Title   string `json:"title" validate:"required"`
	RepoURL string `json:"repoUrl" validate:"required,githubrepo"`
	Week    int    `json:"week" validate:"required,min=1,max=52"`
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		return name
	})
	err := v.RegisterValidation("githubrepo", func(fl validator.FieldLevel) bool {
		return githubRepoPattern.MatchString(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
	return v
}

// validateSubmission 只返回第一个不合法的字段
func validateSubmission(p domain.Project) error {
	err := validate.Struct(submission{
		Title:   p.Title,
		RepoURL: p.RepoURL,
		Week:    p.Week,
	})
	var fes validator.ValidationErrors
	if errors.As(err, &fes) && len(fes) > 0 {
		return &ValidationError{
			Field:  fes[0].Field(),
			Reason: reason(fes[0]),
		}
	}
	return err
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "不能为空"
	case "githubrepo":
		return "必须是 GitHub 仓库地址，例如 https://github.com/owner/repo"
	case "min", "max":
		return fmt.Sprintf("必须在 1 到 %d 之间", domain.TotalWeeks)
	default:
		return "不合法: " + fe.Tag()
	}
}
