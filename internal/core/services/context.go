package services

import (
	"github.com/google/uuid"
	"github.com/krizzk/backend-koshunter-ukk2025/internal/core/domain"
)

// RequestContext carries the authenticated caller identity. The HTTP layer
// builds it from verified token claims and passes it to every operation
// explicitly.
type RequestContext struct {
	UserID uuid.UUID
	Role   domain.Role
}

func (r RequestContext) IsAdmin() bool {
	return r.Role == domain.RoleAdmin
}
