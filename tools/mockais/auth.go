// Package mockais provides an in-process, single-node, AIS-compatible gateway
// that implements the subset of the AIS v1 API used by `api` package and CLI.
/*
 * Copyright (c) 2024-2026, NVIDIA CORPORATION. All rights reserved.
 */
package mockais

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/NVIDIA/aisclient/api/apc"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoToken      = errors.New("token required")
	ErrInvalidToken = errors.New("invalid token")
)

type AISClaims struct {
	UserID  string `json:"username"`
	IsAdmin bool   `json:"admin"`
	jwt.RegisteredClaims
}

// IssueToken creates HMAC-signed token that the gateway (configured with the same
// secret) accepts
func IssueToken(secret, userID string, expires time.Time, admin bool) (string, error) {
	if secret == "" {
		return "", errors.New("empty secret")
	}
	claims := &AISClaims{
		UserID:  userID,
		IsAdmin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}

func ValidateToken(tokenStr, secret string) (*AISClaims, error) {
	claims := &AISClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(tk *jwt.Token) (any, error) {
		if _, ok := tk.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", tk.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithExpirationRequired())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// 'Authorization: Bearer <token>'
func tokenFromHeader(hdr string) (string, error) {
	if hdr == "" {
		return "", ErrNoToken
	}
	scheme, token, ok := strings.Cut(hdr, " ")
	if !ok || scheme != apc.AuthenticationTypeBearer || token == "" {
		return "", ErrInvalidToken
	}
	return token, nil
}
