package pgsql

import (
	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the PostgreSQL repositories. The rate cache is chosen
// separately and attached by the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BondRepo: NewPgxBondRepository(dbPool),
	}
}
