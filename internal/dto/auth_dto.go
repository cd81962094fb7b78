package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// CreateUserRequest — status_index is the role rank: 0 admin, 1 director,
// 2 manager, 3 user.
type CreateUserRequest struct {
	Username    string `json:"username"     validate:"required,min=1,max=150"`
	Password    string `json:"password"     validate:"required,min=4"`
	StatusIndex *int   `json:"status_index" validate:"required,min=0,max=3"`
}

type UpdateUserRequest struct {
	Password    *string `json:"password"     validate:"omitempty,min=4"`
	StatusIndex *int    `json:"status_index" validate:"omitempty,min=0,max=3"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type UserResponse struct {
	ID          string `json:"id"`
	Username    string `json:"username"`
	StatusIndex int    `json:"status_index"`
	Role        string `json:"role"`
	CreatedAt   string `json:"created_at"`
}

type LoginResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	TokenType    string       `json:"token_type"`
	ExpiresIn    int          `json:"expires_in"` // seconds
	User         UserResponse `json:"user"`
}
