package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/bond_catalog/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite repositories. The rate cache is attached by the caller.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BondRepo: NewSQLiteBondRepository(db),
	}
}
