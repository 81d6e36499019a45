package handler

// errorResponse mirrors the envelope rendered by the central error handler;
// declared here for the swagger annotations on failure responses.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	Username string `json:"username"`
	RoleCode string `json:"roleCode"`
	UserID   int    `json:"userId"`
}

type messageResponse struct {
	Message string `json:"message"`
}
