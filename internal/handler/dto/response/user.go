package response

import (
	"time"

	"venue-scheduler/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type WorkerResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func FromWorkerList(rms []*readmodel.WorkerRM) []*WorkerResponse {
	res := make([]*WorkerResponse, len(rms))
	for i, rm := range rms {
		res[i] = &WorkerResponse{ID: rm.ID, Name: rm.Name}
	}
	return res
}

type MemberResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"is_admin"`
	IsWorker  bool       `json:"is_worker"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

func FromMember(rm *readmodel.AuthorizedUserRM) *MemberResponse {
	return &MemberResponse{
		ID:        rm.ID,
		Email:     rm.Email,
		Name:      rm.Name,
		IsAdmin:   rm.IsAdmin,
		IsWorker:  rm.IsWorker,
		IsActive:  rm.IsActive,
		LastLogin: rm.LastLogin,
	}
}

func FromMemberList(rms []*readmodel.AuthorizedUserRM) []*MemberResponse {
	res := make([]*MemberResponse, len(rms))
	for i, rm := range rms {
		res[i] = FromMember(rm)
	}
	return res
}
