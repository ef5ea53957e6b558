package auth

import (
	"todo-api/internal/domain/model"
)

type UseCase interface {
	Register(dto model.RegisterDTO) (*model.UserResponse, error)
	// Login verifies credentials and returns a signed bearer token;
	// model.ErrInvalidCredentials on any mismatch.
	Login(dto model.LoginDTO) (*model.TokenResponse, error)
	// VerifyToken parses a bearer token and returns the user id it carries
	VerifyToken(token string) (uint, error)
}
