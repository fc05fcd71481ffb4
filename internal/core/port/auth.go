package port

import "github.com/dinehall/backend/internal/core/domain"

// TokenPayload is the authenticated principal. Handlers resolve it from the
// request token and pass it explicitly into every service operation.
type TokenPayload struct {
	UserID uint64
	Role   domain.UserRole
}

func (p TokenPayload) IsAdmin() bool {
	return p.Role == domain.RoleAdmin
}

//go:generate mockgen -source=auth.go -destination=mock/auth.go -package=mock
type TokenService interface {
	CreateToken(user *domain.User) (string, error)
	VerifyToken(token string) (*TokenPayload, error)
}
