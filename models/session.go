// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// SessionUser is the value object carried inside the session cookie for the
// lifetime of a login. It holds only the public profile fields the templates
// need on every page, never credentials.
//
// A SessionUser is a snapshot: whenever the underlying User row is mutated
// (profile edit), a fresh session token must be issued so the cookie copy and
// the store never diverge.
type SessionUser struct {
	// UserID is the canonical opaque identifier, identical to [User.UserID].
	UserID string `json:"uid"`

	// Username as stored at the time the session was issued.
	Username string `json:"username"`

	// ProfilePicture is the resolved avatar URL (generated fallback already
	// applied), ready for rendering.
	ProfilePicture string `json:"profile_picture"`

	// Bio as stored at the time the session was issued.
	Bio string `json:"bio"`
}

// NewSessionUser builds the session snapshot for a user record.
func NewSessionUser(user User) SessionUser {
	return SessionUser{
		UserID:         user.UserID,
		Username:       user.Username,
		ProfilePicture: user.AvatarURL(),
		Bio:            user.Bio,
	}
}

// SessionClaims is the JWT claim set stored in the session cookie.
// The registered claims carry issuer/expiry; the User claim carries the
// session payload itself.
type SessionClaims struct {
	jwt.RegisteredClaims

	User SessionUser `json:"user"`
}
