package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"todo-api/internal/domain/entity"
	"todo-api/internal/domain/gateway/db"
	"todo-api/internal/domain/model"
	"todo-api/pkg/msg"
)

const (
	maxUsernameLength = 150
	minPasswordLength = 8
)

type authUseCase struct {
	gateway  db.UserGateway
	secret   []byte
	tokenTTL time.Duration
}

func NewAuthUseCase(gateway db.UserGateway, secret string, tokenTTL time.Duration) UseCase {
	return &authUseCase{
		gateway:  gateway,
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
	}
}

func (uc *authUseCase) Register(dto model.RegisterDTO) (*model.UserResponse, error) {
	errs := model.ValidationErrors{}

	username := strings.TrimSpace(dto.Username)
	if username == "" {
		errs.Add("username", msg.GetMessage("auth.error.field-required"))
	} else if utf8.RuneCountInString(username) > maxUsernameLength {
		errs.Add("username", msg.GetMessage("auth.error.username-max-length", maxUsernameLength))
	}

	if dto.Password == "" {
		errs.Add("password", msg.GetMessage("auth.error.field-required"))
	} else if len(dto.Password) < minPasswordLength {
		errs.Add("password", msg.GetMessage("auth.error.password-min-length", minPasswordLength))
	}

	if errs.HasErrors() {
		return nil, errs
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		PasswordHash: string(hash),
	}

	if err := uc.gateway.Create(user); err != nil {
		if errors.Is(err, model.ErrDuplicateKey) {
			errs.Add("username", msg.GetMessage("auth.error.username-taken"))
			return nil, errs
		}
		return nil, err
	}

	return &model.UserResponse{ID: user.ID, Username: user.Username}, nil
}

func (uc *authUseCase) Login(dto model.LoginDTO) (*model.TokenResponse, error) {
	user, err := uc.gateway.FindByUsername(strings.TrimSpace(dto.Username))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, model.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(dto.Password)); err != nil {
		return nil, model.ErrInvalidCredentials
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id":  user.ID,
		"username": user.Username,
		"iat":      now.Unix(),
		"exp":      now.Add(uc.tokenTTL).Unix(),
	})

	signed, err := token.SignedString(uc.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &model.TokenResponse{Token: signed}, nil
}

func (uc *authUseCase) VerifyToken(tokenString string) (uint, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return uc.secret, nil
	})
	if err != nil || !token.Valid {
		return 0, model.ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, model.ErrInvalidCredentials
	}
	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, model.ErrInvalidCredentials
	}

	return uint(userID), nil
}
