package dto

// LoginRequest represents login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents JWT token information
type TokenResponse struct {
	AccessToken           string `json:"accessToken"`
	TokenType             string `json:"tokenType" example:"Bearer"`
	ExpiresIn             int64  `json:"expiresIn"`
	RefreshToken          string `json:"refreshToken,omitempty"`
	RefreshTokenExpiresIn int64  `json:"refreshTokenExpiresIn,omitempty"`
}

// RefreshTokenRequest represents refresh token request
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// LogoutRequest revokes the presented refresh token
type LogoutRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// IdentityResponse is the authenticated identity carried by the access token
type IdentityResponse struct {
	Email    string `json:"email" example:"student@example.com"`
	Name     string `json:"name" example:"Jane Doe"`
	RoleType string `json:"roleType" example:"STUDENT"`
}

// LoginResponse bundles the token pair with the authenticated identity
type LoginResponse struct {
	Token TokenResponse    `json:"token"`
	User  IdentityResponse `json:"user"`
}
