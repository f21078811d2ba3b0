package pgsql

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/tokosakti/pos_ledger_app/internal/apperrors"
	"github.com/tokosakti/pos_ledger_app/internal/core/domain"
	portsrepo "github.com/tokosakti/pos_ledger_app/internal/core/ports/repositories"
	"github.com/tokosakti/pos_ledger_app/internal/models"
	"github.com/tokosakti/pos_ledger_app/internal/utils/mapping"
)

type PgxBankRepository struct {
	BaseRepository
}

// newPgxBankRepository creates a new repository for the bank directory.
func newPgxBankRepository(pool *pgxpool.Pool) portsrepo.BankRepositoryFacade {
	return &PgxBankRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxBankRepository implements portsrepo.BankRepositoryFacade
var _ portsrepo.BankRepositoryFacade = (*PgxBankRepository)(nil)

const bankColumns = `bank_id, name, account_number, account_holder,
		created_at, created_by, last_updated_at, last_updated_by`

func scanBank(row pgx.Row) (models.Bank, error) {
	var m models.Bank
	err := row.Scan(
		&m.BankID,
		&m.Name,
		&m.AccountNumber,
		&m.AccountHolder,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindBankByID retrieves a bank account by id.
func (r *PgxBankRepository) FindBankByID(ctx context.Context, bankID string) (*domain.BankAccount, error) {
	row := r.Pool.QueryRow(ctx, `SELECT `+bankColumns+` FROM banks WHERE bank_id = $1;`, bankID)
	m, err := scanBank(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("bank " + bankID + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find bank "+bankID, err)
	}
	bank := mapping.ToDomainBank(m)
	return &bank, nil
}

// ListBanks retrieves all bank accounts ordered by name.
func (r *PgxBankRepository) ListBanks(ctx context.Context) ([]domain.BankAccount, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+bankColumns+` FROM banks ORDER BY name;`)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query banks", err)
	}
	defer rows.Close()

	banks := []domain.BankAccount{}
	for rows.Next() {
		m, err := scanBank(rows)
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan bank row", err)
		}
		banks = append(banks, mapping.ToDomainBank(m))
	}
	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating bank rows", err)
	}
	return banks, nil
}

// SaveBank inserts a bank row.
func (r *PgxBankRepository) SaveBank(ctx context.Context, bank domain.BankAccount) error {
	m := mapping.ToModelBank(bank)
	query := `
		INSERT INTO banks (
			bank_id, name, account_number, account_holder,
			created_at, created_by, last_updated_at, last_updated_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BankID,
		m.Name,
		m.AccountNumber,
		m.AccountHolder,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return apperrors.NewAppError(500, "failed to insert bank "+m.BankID, err)
	}
	return nil
}
