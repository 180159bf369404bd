package jwttoken

import (
	authmw "greatglobal/pkg/platform/middleware/auth"
)

// JWTServiceAdapter exposes JWTService as the auth middleware's validator.
type JWTServiceAdapter struct {
	service *JWTService
}

func NewJWTServiceAdapter(service *JWTService) *JWTServiceAdapter {
	return &JWTServiceAdapter{service: service}
}

func (a *JWTServiceAdapter) ValidateToken(tokenString string) (*authmw.CallerClaims, error) {
	account, err := a.service.ExtractAccount(tokenString)
	if err != nil {
		return nil, err
	}
	return &authmw.CallerClaims{Account: account}, nil
}
