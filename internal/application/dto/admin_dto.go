package dto

import "time"

// AdminUserResponse proyección de usuario para el panel de administración.
type AdminUserResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// AdminUserListResponse salida de GET /admin/users.
type AdminUserListResponse struct {
	Users      []AdminUserResponse `json:"users"`
	Pagination PageResponse        `json:"pagination"`
}

// AdminJobListResponse salida de GET /admin/jobs.
type AdminJobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	Pagination PageResponse  `json:"pagination"`
}
