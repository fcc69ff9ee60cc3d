package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/sameoldmason/finance-web-sub000/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SnapshotRepo: newPgxSnapshotRepository(dbPool),
		ProfileRepo:  newPgxProfileRepository(dbPool),
	}
}
