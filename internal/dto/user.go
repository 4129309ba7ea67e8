package dto

// RegisterRequest carries the fields required to create a local account.
// Name fields are validated by the custom "personname" binding rule.
type RegisterRequest struct {
	FirstName string `json:"firstName" form:"firstName" binding:"required,min=1,max=50,personname"`
	LastName  string `json:"lastName" form:"lastName" binding:"omitempty,max=50,personname"`
	Email     string `json:"email" form:"email" binding:"required,email"`
	Password  string `json:"password" form:"password" binding:"required"`
}

// LoginRequest carries local login credentials.
type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// ChangePasswordRequest carries a password rotation request for the session user.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" form:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
}

// UpdateProfileRequest defines the data allowed for updating a profile.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateProfileRequest struct {
	FirstName *string `json:"firstName" binding:"omitempty,min=1,max=50,personname"`
	LastName  *string `json:"lastName" binding:"omitempty,max=50,personname"`
	Phone     *string `json:"phone" binding:"omitempty,max=20"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,max=500"`
}

// ExchangeCodeRequest is the body for the Google OAuth code exchange endpoint.
type ExchangeCodeRequest struct {
	Code string `json:"code" binding:"required"`
}
