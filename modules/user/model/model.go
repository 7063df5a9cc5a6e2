package model

import (
	"github.com/golang-jwt/jwt/v5"
)

type (
	// Claims is the subset of identity provider token claims we read.
	Claims struct {
		jwt.RegisteredClaims
		Name     string `json:"name,omitempty"`
		Nickname string `json:"nickname,omitempty"`
		Email    string `json:"email,omitempty"`
		Picture  string `json:"picture,omitempty"`
	}

	User struct {
		Subject  string `json:"sub"`
		Name     string `json:"name"`
		Nickname string `json:"nickname"`
		Email    string `json:"email"`
		Picture  string `json:"picture"`
	}
)

func (q *Claims) User() *User {
	return &User{
		Subject:  q.Subject,
		Name:     q.Name,
		Nickname: q.Nickname,
		Email:    q.Email,
		Picture:  q.Picture,
	}
}
