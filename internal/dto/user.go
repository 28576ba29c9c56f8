package dto

// TokenRequest is the JSON body for POST /auth/token.
type TokenRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest is the JSON body for POST /auth/register.
type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=1,max=150"`
	Name     string `json:"name" binding:"required,min=1,max=255"`
	Password string `json:"password" binding:"required,min=1"`
}

// RefreshRequest carries a refresh token for rotation or revocation.
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// TokenResponse is the issued access/refresh pair.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// UpdateProfileRequest is the JSON body for PATCH /users/me.
type UpdateProfileRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1,max=255"`
	Password *string `json:"password" binding:"omitempty,min=1"`
}

// UserResponse is the public shape of a user.
type UserResponse struct {
	ID       int64  `json:"id"`
	Login    string `json:"login"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
	IsStaff  bool   `json:"is_staff"`
}
