// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/booknotes/models"
	"github.com/golang-jwt/jwt/v5"
)

// GenerateSessionToken creates a signed HMAC-SHA256 JWT carrying the session
// payload for an authenticated user.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user's canonical ID
//   - IssuedAt  (iat): the current time
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// plus the "user" claim holding the [models.SessionUser] snapshot.
//
// All parameters are required. Returns an error if any of them are empty or zero.
func GenerateSessionToken(issuer string, sessionUser models.SessionUser, tokenDuration time.Duration, signKey string) (string, error) {
	if issuer == "" || tokenDuration == 0 || signKey == "" || sessionUser.UserID == "" {
		return "", errors.New("invalid params for generating session token")
	}

	now := time.Now()
	claims := &models.SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   sessionUser.UserID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		User: sessionUser,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return "", fmt.Errorf("error occurred during signing session token: %w", err)
	}

	return tokenString, nil
}

// ValidateAndParseSessionToken validates the given session token string and
// extracts its session payload.
//
// Validation includes:
//   - Signature verification using the provided sign key
//   - Issuer (iss) claim check against the provided tokenIssuer
//   - Expiration (exp) claim check
//   - Presence of a non-empty user ID in the session payload
//
// Returns the [models.SessionUser] carried by the token, or an error if
// validation fails or the payload is incomplete.
func ValidateAndParseSessionToken(tokenString, tokenSignKey, tokenIssuer string) (models.SessionUser, error) {
	var claims models.SessionClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("error occurred validating and parsing session token: %w", err)
	}

	if claims.User.UserID == "" {
		return models.SessionUser{}, errors.New("session token carries no user")
	}

	return claims.User, nil
}
