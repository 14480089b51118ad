package dto

// LoginRequest is the admin login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email" example:"admin@placemate.app"`
	Password string `json:"password" binding:"required" example:"changeme"`
}

// LoginResponse carries the issued access token
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType" example:"Bearer"`
	ExpiresIn   int    `json:"expiresIn" example:"43200"` // Seconds
}
