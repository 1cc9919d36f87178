package dbctx

import (
	"context"

	"gorm.io/gorm"
)

// Context bundles the request context with an optional open transaction.
// Repos fall back to their own *gorm.DB handle when Tx is nil, so the same
// repo method serves both transactional and standalone reads.
type Context struct {
	Ctx context.Context
	Tx  *gorm.DB
}
