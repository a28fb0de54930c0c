package request

import (
	"github.com/google/uuid"
)

type AssignWorkersRequest struct {
	WorkerIDs []uuid.UUID `json:"worker_ids" binding:"required,len=2"`
}
