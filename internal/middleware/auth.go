package middleware

import (
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"TRIPMATE_BACK-END/internal/config"
	"TRIPMATE_BACK-END/internal/utils"
)

// IdentityClaims represents the claims carried by the identity provider's
// bearer token.
type IdentityClaims struct {
	UserID      string `json:"user_id"`
	PhoneNumber string `json:"phone_number"`
	jwt.RegisteredClaims
}

// ValidateToken validates a bearer token and returns the identity claims
func ValidateToken(tokenString string, cfg *config.AuthConfig) (*IdentityClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &IdentityClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(cfg.Secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*IdentityClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrTokenMalformed
}

// AuthMiddleware validates bearer tokens in the Authorization header and
// injects the caller identity into the request context.
func AuthMiddleware(next http.HandlerFunc, cfg *config.AuthConfig) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Authorization header required")
			return
		}

		// Extract token from "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid authorization header format")
			return
		}

		claims, err := ValidateToken(tokenParts[1], cfg)
		if err != nil {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Invalid token")
			return
		}
		if claims.UserID == "" {
			utils.WriteErrorResponse(w, http.StatusUnauthorized, "Unauthorized", "Token missing user identity")
			return
		}

		ctx := utils.WithIdentity(r.Context(), claims.UserID, claims.PhoneNumber)
		next.ServeHTTP(w, r.WithContext(ctx))
	}
}
