package helper

import (
	"errors"

	"kodevidecamp/internal/config"
)

var (
	ErrNoClaims    = errors.New("missing token claims")
	ErrInvalidRole = errors.New("role not allowed")
)

func HasRole(role string, allowedRoles ...string) bool {
	for _, allowedRole := range allowedRoles {
		if role == allowedRole {
			return true
		}
	}
	return false
}

// CheckClaimsRole validates a parsed admin token against the allowed roles.
func CheckClaimsRole(claims *config.JWTClaims, allowedRoles ...string) error {
	if claims == nil {
		return ErrNoClaims
	}
	if !HasRole(claims.Role, allowedRoles...) {
		return ErrInvalidRole
	}
	return nil
}
