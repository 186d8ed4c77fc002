package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/antonkovh/medminder/internal/models"
	"github.com/golang-jwt/jwt/v5"
)

const authTokenTTL = 24 * time.Hour

var errInvalidToken = errors.New("invalid token")

type authClaims struct {
	UserID uint   `json:"uid"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (handler *Handler) buildToken(user *models.User) (string, error) {
	now := time.Now()

	claims := authClaims{
		UserID: user.ID,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			ExpiresAt: jwt.NewNumericDate(now.Add(authTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(handler.secretKey)
}

func (handler *Handler) parseToken(tokenString string) (*authClaims, error) {
	claims := &authClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errInvalidToken
		}
		return handler.secretKey, nil
	})
	if err != nil || !token.Valid {
		return nil, errInvalidToken
	}
	return claims, nil
}
