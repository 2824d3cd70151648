package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"petcare-service/internal/module/wallet/models/entity"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type repositories struct {
	db  *sqlx.DB
	log log.Logger
}

type Repositories interface {
	CreateWallet(ctx context.Context, providerID int64) (entity.Wallet, error)
	FindWalletByProviderID(ctx context.Context, providerID int64) (entity.Wallet, error)
	ListTransactions(ctx context.Context, walletID int64) ([]entity.WalletTransaction, error)
	CreditEarningTx(ctx context.Context, tx *sqlx.Tx, providerID int64, bookingID uuid.UUID, amount float64) error
	SumActiveWithdrawalsSince(ctx context.Context, walletID int64, since time.Time) (float64, error)
	CreateWithdrawal(ctx context.Context, withdrawal entity.Withdrawal) (entity.Withdrawal, error)
	FindWithdrawalByID(ctx context.Context, withdrawalID int64) (entity.Withdrawal, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID, adminID int64) (entity.Withdrawal, error)
	RejectWithdrawal(ctx context.Context, withdrawalID, adminID int64, reason string) (entity.Withdrawal, error)
	CompleteWithdrawal(ctx context.Context, withdrawalID, adminID int64, transactionRef string) (entity.Withdrawal, error)
	ListWithdrawalsByWallet(ctx context.Context, walletID int64) ([]entity.Withdrawal, error)
	ListPendingWithdrawals(ctx context.Context) ([]entity.Withdrawal, error)
}

func New(db *sqlx.DB, log log.Logger) Repositories {
	return &repositories{
		db:  db,
		log: log,
	}
}

// CreateWallet implements Repositories. One wallet per provider, enforced by
// the unique constraint on provider_id.
func (r *repositories) CreateWallet(ctx context.Context, providerID int64) (entity.Wallet, error) {
	query := `INSERT INTO wallets (provider_id, available, pending, created_at)
		VALUES ($1, 0, 0, NOW())
		RETURNING id, provider_id, available, pending, created_at, updated_at`
	var wallet entity.Wallet
	err := r.db.GetContext(ctx, &wallet, query, providerID)
	if err != nil {
		if isUniqueViolation(err) {
			return entity.Wallet{}, errors.Conflict("wallet already exists for this provider")
		}
		return entity.Wallet{}, errors.InternalServerError("error creating wallet")
	}
	return wallet, nil
}

// FindWalletByProviderID implements Repositories.
func (r *repositories) FindWalletByProviderID(ctx context.Context, providerID int64) (entity.Wallet, error) {
	query := `SELECT * FROM wallets WHERE provider_id = $1`
	var wallet entity.Wallet
	err := r.db.GetContext(ctx, &wallet, query, providerID)
	if err == sql.ErrNoRows {
		return entity.Wallet{}, errors.NotFound("wallet not found")
	}
	if err != nil {
		return entity.Wallet{}, errors.InternalServerError("error find wallet by provider id")
	}
	return wallet, nil
}

// ListTransactions implements Repositories.
func (r *repositories) ListTransactions(ctx context.Context, walletID int64) ([]entity.WalletTransaction, error) {
	query := `SELECT * FROM wallet_transactions WHERE wallet_id = $1 ORDER BY created_at DESC`
	var transactions []entity.WalletTransaction
	if err := r.db.SelectContext(ctx, &transactions, query, walletID); err != nil {
		return nil, errors.InternalServerError("error list wallet transactions")
	}
	return transactions, nil
}

// CreditEarningTx credits a provider's available balance and appends the
// earning ledger entry, inside the caller's transaction. Invoked by the
// booking module when a booking completes.
func (r *repositories) CreditEarningTx(ctx context.Context, tx *sqlx.Tx, providerID int64, bookingID uuid.UUID, amount float64) error {
	var walletID int64
	query := `UPDATE wallets SET available = available + $2, updated_at = NOW() WHERE provider_id = $1 RETURNING id`
	err := tx.GetContext(ctx, &walletID, query, providerID, amount)
	if err == sql.ErrNoRows {
		return errors.NotFound("provider wallet not found")
	}
	if err != nil {
		return errors.InternalServerError("error crediting provider wallet")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (wallet_id, amount, type, status, booking_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, walletID, amount, entity.TransactionEarning, entity.TransactionStatusCompleted, bookingID, fmt.Sprintf("earning from booking %s", bookingID))
	if err != nil {
		return errors.InternalServerError("error appending earning transaction")
	}

	return nil
}

// SumActiveWithdrawalsSince sums withdrawals counted against daily/monthly
// caps: everything not rejected.
func (r *repositories) SumActiveWithdrawalsSince(ctx context.Context, walletID int64, since time.Time) (float64, error) {
	query := `SELECT COALESCE(SUM(amount), 0) FROM withdrawals
		WHERE wallet_id = $1 AND status != 'rejected' AND created_at >= $2`
	var total float64
	if err := r.db.GetContext(ctx, &total, query, walletID, since); err != nil {
		return 0, errors.InternalServerError("error summing withdrawals")
	}
	return total, nil
}

// CreateWithdrawal atomically holds the amount (available -> pending) and
// records the withdrawal plus its negative ledger entry. The guarded update
// makes concurrent requests for the same funds fail on the affected-row
// count instead of racing, so the available balance can never go negative.
func (r *repositories) CreateWithdrawal(ctx context.Context, withdrawal entity.Withdrawal) (entity.Withdrawal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error starting transaction")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE wallets SET available = available - $2, pending = pending + $2, updated_at = NOW()
		WHERE id = $1 AND available >= $2
	`, withdrawal.WalletID, withdrawal.Amount)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error holding withdrawal amount")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return entity.Withdrawal{}, errors.Conflict("insufficient available balance")
	}

	query := `INSERT INTO withdrawals (wallet_id, provider_id, amount, fee, net_amount, status, bank_name, bank_account_number, bank_account_holder, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		withdrawal.WalletID, withdrawal.ProviderID, withdrawal.Amount, withdrawal.Fee, withdrawal.NetAmount,
		entity.WithdrawalPending, withdrawal.BankName, withdrawal.BankAccountNumber, withdrawal.BankAccountHolder,
	).Scan(&withdrawal.ID, &withdrawal.CreatedAt)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error inserting withdrawal")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (wallet_id, amount, type, status, withdrawal_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, withdrawal.WalletID, -withdrawal.Amount, entity.TransactionWithdrawal, entity.TransactionStatusPending, withdrawal.ID, fmt.Sprintf("withdrawal request #%d", withdrawal.ID))
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error appending withdrawal transaction")
	}

	if err := tx.Commit(); err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error committing transaction")
	}

	withdrawal.Status = entity.WithdrawalPending
	return withdrawal, nil
}

// FindWithdrawalByID implements Repositories.
func (r *repositories) FindWithdrawalByID(ctx context.Context, withdrawalID int64) (entity.Withdrawal, error) {
	query := `SELECT * FROM withdrawals WHERE id = $1`
	var withdrawal entity.Withdrawal
	err := r.db.GetContext(ctx, &withdrawal, query, withdrawalID)
	if err == sql.ErrNoRows {
		return entity.Withdrawal{}, errors.NotFound("withdrawal not found")
	}
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error find withdrawal by id")
	}
	return withdrawal, nil
}

// ApproveWithdrawal implements Repositories. No balance movement, the hold
// stays in pending until completion.
func (r *repositories) ApproveWithdrawal(ctx context.Context, withdrawalID, adminID int64) (entity.Withdrawal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error starting transaction")
	}

	withdrawal, err := r.lockWithdrawal(ctx, tx, withdrawalID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, err
	}

	if withdrawal.Status != entity.WithdrawalPending {
		tx.Rollback()
		return entity.Withdrawal{}, errors.Conflict(fmt.Sprintf("withdrawal is %s, only pending withdrawals can be approved", withdrawal.Status))
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status = $2, processed_by = $3, processed_at = NOW(), updated_at = NOW() WHERE id = $1
	`, withdrawalID, entity.WithdrawalApproved, adminID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error approving withdrawal")
	}

	if err := tx.Commit(); err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error committing transaction")
	}

	withdrawal.Status = entity.WithdrawalApproved
	withdrawal.ProcessedBy = sql.NullInt64{Int64: adminID, Valid: true}
	return withdrawal, nil
}

// RejectWithdrawal reverses the hold: pending -> available, plus a positive
// system adjustment entry in the ledger.
func (r *repositories) RejectWithdrawal(ctx context.Context, withdrawalID, adminID int64, reason string) (entity.Withdrawal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error starting transaction")
	}

	withdrawal, err := r.lockWithdrawal(ctx, tx, withdrawalID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, err
	}

	if withdrawal.Status != entity.WithdrawalPending {
		tx.Rollback()
		return entity.Withdrawal{}, errors.Conflict(fmt.Sprintf("withdrawal is %s, only pending withdrawals can be rejected", withdrawal.Status))
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE wallets SET available = available + $2, pending = pending - $2, updated_at = NOW()
		WHERE id = $1 AND pending >= $2
	`, withdrawal.WalletID, withdrawal.Amount)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error releasing withdrawal hold")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("wallet pending balance out of sync with withdrawal hold")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status = $2, rejection_reason = $3, processed_by = $4, processed_at = NOW(), updated_at = NOW() WHERE id = $1
	`, withdrawalID, entity.WithdrawalRejected, reason, adminID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error rejecting withdrawal")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (wallet_id, amount, type, status, withdrawal_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, withdrawal.WalletID, withdrawal.Amount, entity.TransactionSystemAdjustment, entity.TransactionStatusCompleted, withdrawalID, fmt.Sprintf("withdrawal #%d rejected: %s", withdrawalID, reason))
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error appending adjustment transaction")
	}

	if err := tx.Commit(); err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error committing transaction")
	}

	withdrawal.Status = entity.WithdrawalRejected
	withdrawal.RejectionReason = sql.NullString{String: reason, Valid: true}
	return withdrawal, nil
}

// CompleteWithdrawal performs the final debit from pending once the manual
// bank transfer settled, and stamps the external transaction reference.
func (r *repositories) CompleteWithdrawal(ctx context.Context, withdrawalID, adminID int64, transactionRef string) (entity.Withdrawal, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error starting transaction")
	}

	withdrawal, err := r.lockWithdrawal(ctx, tx, withdrawalID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, err
	}

	if withdrawal.Status != entity.WithdrawalApproved {
		tx.Rollback()
		return entity.Withdrawal{}, errors.Conflict(fmt.Sprintf("withdrawal is %s, only approved withdrawals can be completed", withdrawal.Status))
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE wallets SET pending = pending - $2, updated_at = NOW()
		WHERE id = $1 AND pending >= $2
	`, withdrawal.WalletID, withdrawal.Amount)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error debiting withdrawal hold")
	}
	if affected, _ := res.RowsAffected(); affected == 0 {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("wallet pending balance out of sync with withdrawal hold")
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE withdrawals SET status = $2, transaction_ref = $3, processed_by = $4, processed_at = NOW(), updated_at = NOW() WHERE id = $1
	`, withdrawalID, entity.WithdrawalCompleted, transactionRef, adminID)
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error completing withdrawal")
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO wallet_transactions (wallet_id, amount, type, status, withdrawal_id, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, withdrawal.WalletID, -withdrawal.Amount, entity.TransactionWithdrawal, entity.TransactionStatusCompleted, withdrawalID, fmt.Sprintf("withdrawal #%d settled, ref %s", withdrawalID, transactionRef))
	if err != nil {
		tx.Rollback()
		return entity.Withdrawal{}, errors.InternalServerError("error appending settlement transaction")
	}

	if err := tx.Commit(); err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error committing transaction")
	}

	withdrawal.Status = entity.WithdrawalCompleted
	withdrawal.TransactionRef = sql.NullString{String: transactionRef, Valid: true}
	return withdrawal, nil
}

// ListWithdrawalsByWallet implements Repositories.
func (r *repositories) ListWithdrawalsByWallet(ctx context.Context, walletID int64) ([]entity.Withdrawal, error) {
	query := `SELECT * FROM withdrawals WHERE wallet_id = $1 ORDER BY created_at DESC`
	var withdrawals []entity.Withdrawal
	if err := r.db.SelectContext(ctx, &withdrawals, query, walletID); err != nil {
		return nil, errors.InternalServerError("error list withdrawals by wallet")
	}
	return withdrawals, nil
}

// ListPendingWithdrawals implements Repositories.
func (r *repositories) ListPendingWithdrawals(ctx context.Context) ([]entity.Withdrawal, error) {
	query := `SELECT * FROM withdrawals WHERE status = 'pending' ORDER BY created_at ASC`
	var withdrawals []entity.Withdrawal
	if err := r.db.SelectContext(ctx, &withdrawals, query); err != nil {
		return nil, errors.InternalServerError("error list pending withdrawals")
	}
	return withdrawals, nil
}

func (r *repositories) lockWithdrawal(ctx context.Context, tx *sqlx.Tx, withdrawalID int64) (entity.Withdrawal, error) {
	var withdrawal entity.Withdrawal
	query := `SELECT * FROM withdrawals WHERE id = $1 FOR UPDATE`
	err := tx.GetContext(ctx, &withdrawal, query, withdrawalID)
	if err == sql.ErrNoRows {
		return entity.Withdrawal{}, errors.NotFound("withdrawal not found")
	}
	if err != nil {
		return entity.Withdrawal{}, errors.InternalServerError("error locking withdrawal row")
	}
	return withdrawal, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
