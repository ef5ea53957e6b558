package model

// RegisterDTO is the payload for creating an account
type RegisterDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginDTO is the payload for authenticating
type LoginDTO struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse carries the signed bearer token returned by login
type TokenResponse struct {
	Token string `json:"token"`
}

// UserResponse is the public representation of an account
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}
