package authutils

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"

	"page-control-backend/config"
	"page-control-backend/models"
)

const (
	ClaimName   = "name"
	ClaimUserID = "sub"
	ClaimRole   = "role"
)

func GetToken(userID, name string, role models.UserRole) (string, error) {
	claims := jwt.MapClaims{
		ClaimName:   name,
		ClaimUserID: userID,
		ClaimRole:   string(role),
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Duration(config.Conf.Auth.JWTExpireInSec) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Conf.Auth.JWTSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return signed, nil
}

func GetRefreshToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		ClaimUserID: userID,
		"iat":       time.Now().Unix(),
		"exp":       time.Now().Add(time.Duration(config.Conf.Auth.JWTRefreshExpireInSec) * time.Second).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(config.Conf.Auth.JWTSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}
	return signed, nil
}

func ParseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(config.Conf.Auth.JWTSecret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

// GetClaims reads the claims the jwt middleware stored in locals.
func GetClaims(ctx *fiber.Ctx) jwt.MapClaims {
	token, ok := ctx.Locals("user").(*jwt.Token)
	if !ok || token == nil {
		return nil
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil
	}
	return claims
}

func GetUserID(ctx *fiber.Ctx) string {
	claims := GetClaims(ctx)
	if claims == nil {
		return ""
	}
	id, _ := claims[ClaimUserID].(string)
	return id
}

func GetUserRole(ctx *fiber.Ctx) models.UserRole {
	claims := GetClaims(ctx)
	if claims == nil {
		return ""
	}
	role, _ := claims[ClaimRole].(string)
	return models.UserRole(role)
}
