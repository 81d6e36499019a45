package handler

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3,max=40"`
	Password string `json:"password" validate:"required,min=6"`
}

type roleRequest struct {
	Name string `json:"name" validate:"required"`
}

type updateRoleRequest struct {
	Role roleRequest `json:"role" validate:"required"`
}

type userResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
	RoleCode string `json:"roleCode"`
}

type userSummaryResponse struct {
	UserID   int    `json:"userId"`
	Username string `json:"username"`
	Role     string `json:"role"`
}
