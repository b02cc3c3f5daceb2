package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"nostalgic/nostalgic/services/token"
	"nostalgic/nostalgic/sources/psql/dao"
	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthController struct {
	db         *gorm.DB
	tokens     *token.Service
	bcryptCost int
}

func NewAuthController(db *gorm.DB, tokens *token.Service, bcryptCost int) *AuthController {
	return &AuthController{
		db:         db,
		tokens:     tokens,
		bcryptCost: bcryptCost,
	}
}

const maxPasswordBytes = 72

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Register creates a user after checking for blank fields, mismatched
// passwords, password length and an existing username, in that order.
func (c *AuthController) Register(ctx context.Context, req types.CreateUserRequest) error {
	fields := []struct{ name, value string }{
		{"username", req.Username},
		{"password1", req.Password1},
		{"password2", req.Password2},
	}
	for _, f := range fields {
		if blank(f.value) {
			return fmt.Errorf("%w: %s", ErrEmptyField, f.name)
		}
	}
	if req.Password1 != req.Password2 {
		return ErrPasswordMismatch
	}
	// bcrypt only looks at the first 72 bytes and rejects anything longer.
	if len(req.Password1) > maxPasswordBytes {
		return ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password1), c.bcryptCost)
	if err != nil {
		return err
	}

	err = dao.WithTx(ctx, c.db, func(tx *gorm.DB) error {
		users := dao.NewUserDAO(tx)
		existing, err := users.GetUserByUsername(ctx, req.Username)
		if err != nil {
			return err
		}
		if existing != nil {
			return ErrUserExists
		}
		_, err = users.CreateUser(ctx, req.Username, string(hash))
		return err
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrUserExists
	}
	if err != nil {
		return err
	}
	logging.AppLogger.Info("user registered", zap.String("username", req.Username))
	return nil
}

// Login verifies the password and issues a bearer token. Unknown users and
// wrong passwords produce the same error.
func (c *AuthController) Login(ctx context.Context, username, password string) (*types.LoginResponse, error) {
	defer logging.LogDuration(ctx, "AuthController.Login")()

	user, err := dao.NewUserDAO(c.db).GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	accessToken, err := c.tokens.Issue(user.Username)
	if err != nil {
		return nil, err
	}
	return &types.LoginResponse{
		AccessToken: accessToken,
		TokenType:   token.TokenType,
		Username:    user.Username,
	}, nil
}

// Authenticate resolves a bearer token to the caller's identity.
func (c *AuthController) Authenticate(tokenStr string) (types.Identity, error) {
	username, err := c.tokens.Parse(tokenStr)
	if err != nil {
		return types.Identity{}, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}
	return types.Identity{Username: username}, nil
}
