package handler

import "time"

// --- Request / Response types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=1"`
	Description string `json:"description"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
}

// updateTaskRequest uses pointers so an omitted JSON key is distinguishable
// from an explicit empty value; only provided fields are applied.
type updateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=1"`
	Description *string `json:"description"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in_progress done"`
}

// taskResponse is the transport representation of a task. It is
// intentionally separate from the domain type so the JSON contract is not
// coupled to internal changes.
type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Status      string    `json:"status"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
