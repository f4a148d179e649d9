package dto

// CreateTaskRequest is the only shape accepted on create. Ownership and the
// completed flag are never taken from the payload.
type CreateTaskRequest struct {
	Title Text `json:"title" validate:"required,notblank,max=255"`
}

// UpdateTaskRequest replaces the title. A missing completed keeps the stored value.
type UpdateTaskRequest struct {
	Title     Text  `json:"title" validate:"required,notblank,max=255"`
	Completed *bool `json:"completed"`
}

type TaskResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Completed bool   `json:"completed"`
	User      uint   `json:"user"`
}
