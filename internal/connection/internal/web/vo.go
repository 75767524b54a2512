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

import "github.com/ecodeclub/project52/internal/connection/internal/domain"

type SendReq struct {
	ToUid int64 `json:"toUid"`
}

type IdReq struct {
	Id int64 `json:"id"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
}

type Peer struct {
	Uid   int64  `json:"uid"`
	SN    string `json:"sn"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

func newPeer(p domain.Peer) Peer {
	return Peer{
		Uid:   p.Uid,
		SN:    p.SN,
		Email: p.Email,
		Name:  p.Name,
	}
}

type Request struct {
	Id     int64  `json:"id"`
	From   Peer   `json:"from"`
	ToUid  int64  `json:"toUid"`
	Status string `json:"status"`
	Ctime  int64  `json:"ctime"`
}

func newRequest(r domain.Request) Request {
	return Request{
		Id:     r.Id,
		From:   newPeer(r.From),
		ToUid:  r.ToUid,
		Status: r.Status.String(),
		Ctime:  r.Ctime.UnixMilli(),
	}
}

type Connection struct {
	Id        int64  `json:"id"`
	Peer      Peer   `json:"peer"`
	Status    string `json:"status"`
	RequestId int64  `json:"requestId"`
	Ctime     int64  `json:"ctime"`
}

func newConnection(c domain.Connection) Connection {
	return Connection{
		Id:        c.Id,
		Peer:      newPeer(c.Peer),
		Status:    domain.ConnectionStatus,
		RequestId: c.RequestId,
		Ctime:     c.Ctime.UnixMilli(),
	}
}

type Candidate struct {
	Peer
	RequestSent bool `json:"requestSent"`
}

type RequestList struct {
	Requests []Request `json:"requests"`
}

type ConnectionList struct {
	Connections []Connection `json:"connections"`
}

type CandidateList struct {
	Candidates []Candidate `json:"candidates"`
}
