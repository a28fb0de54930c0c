package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type AuthorizedUserRM struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Name      string     `json:"name"`
	IsAdmin   bool       `json:"is_admin"`
	IsWorker  bool       `json:"is_worker"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// WorkerRM is the identity surface shown in assignment pickers and
// conflict messages.
type WorkerRM struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}
