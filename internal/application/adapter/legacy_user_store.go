// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "github.com/invoice-hub/backend/internal/domain/entity"

// LegacyUserStore is the process-scoped store for the pre-OAuth credential
// records. It starts empty, is never persisted, and exists only so older
// integrations keep compiling against the same surface.
type LegacyUserStore interface {
	Save(user entity.LegacyUser)
	FindByID(id int64) (entity.LegacyUser, bool)
	FindByUsername(username string) (entity.LegacyUser, bool)
}
