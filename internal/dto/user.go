package dto

// LoginRequest is the JSON body for POST /api/login.
type LoginRequest struct {
	UserName string `json:"userName"`
}

// UserResponse is the user object echoed on successful login.
type UserResponse struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Success bool         `json:"success"`
	User    UserResponse `json:"user"`
}

// LoginFailureResponse is returned with status 200 when the name does
// not match any user.
type LoginFailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
