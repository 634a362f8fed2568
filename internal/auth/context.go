package auth

import (
	"errors"

	jwtv5 "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobsreport/internal/model"
)

// TokenInfo is the authenticated identity extracted from a request.
type TokenInfo struct {
	UserID   uuid.UUID
	Username string
	Role     model.Role
}

// FromContext extracts the authenticated identity from the JWT the
// echo-jwt middleware stored on the request context.
func FromContext(c echo.Context) (*TokenInfo, error) {
	token, ok := c.Get("user").(*jwtv5.Token)
	if !ok {
		return nil, errors.New("missing token in context")
	}
	claims, ok := token.Claims.(jwtv5.MapClaims)
	if !ok {
		return nil, errors.New("unexpected claims type")
	}

	rawID, _ := claims["user_id"].(string)
	userID, err := uuid.Parse(rawID)
	if err != nil {
		return nil, errors.New("invalid user id in token")
	}
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)

	return &TokenInfo{
		UserID:   userID,
		Username: username,
		Role:     model.Role(role),
	}, nil
}
