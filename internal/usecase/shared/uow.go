package shared

import (
	"context"

	"hotel-frontdesk/internal/infra/db"
)

// UnitOfWork hides transaction handling from the usecase layer. All storage
// access goes through it; nothing else holds a database handle.
type UnitOfWork interface {
	// Within: full transaction for write operations with retry on
	// serialization failures.
	Within(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error
	// WithDB: single-query reads using implicit transactions.
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
}
