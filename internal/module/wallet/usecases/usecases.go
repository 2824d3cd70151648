package usecases

import (
	"context"
	"fmt"
	"time"

	"petcare-service/config"
	"petcare-service/internal/module/wallet/models/entity"
	"petcare-service/internal/module/wallet/models/request"
	"petcare-service/internal/module/wallet/models/response"
	"petcare-service/internal/module/wallet/repositories"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/goccy/go-json"
)

const timeLayout = "2006-01-02 15:04:05"

type usecase struct {
	repo    repositories.Repositories
	log     log.Logger
	publish message.Publisher
	cfg     *config.WithdrawalConfig
}

type Usecase interface {
	CreateWallet(ctx context.Context, providerID int64) (response.WalletBalance, error)
	GetBalance(ctx context.Context, providerID int64) (response.WalletBalance, error)
	ListTransactions(ctx context.Context, providerID int64) ([]response.Transaction, error)
	RequestWithdrawal(ctx context.Context, payload *request.RequestWithdrawal, providerID int64) (response.WithdrawalDetail, error)
	ListWithdrawals(ctx context.Context, providerID int64) ([]response.WithdrawalDetail, error)
	ListPendingWithdrawals(ctx context.Context) ([]response.WithdrawalDetail, error)
	ApproveWithdrawal(ctx context.Context, withdrawalID, adminID int64) (response.WithdrawalDetail, error)
	RejectWithdrawal(ctx context.Context, withdrawalID, adminID int64, payload *request.RejectWithdrawal) (response.WithdrawalDetail, error)
	CompleteWithdrawal(ctx context.Context, withdrawalID, adminID int64, payload *request.CompleteWithdrawal) (response.WithdrawalDetail, error)
}

func New(repo repositories.Repositories, log log.Logger, publish message.Publisher, cfg *config.WithdrawalConfig) Usecase {
	return &usecase{
		repo:    repo,
		log:     log,
		publish: publish,
		cfg:     cfg,
	}
}

func (u *usecase) CreateWallet(ctx context.Context, providerID int64) (response.WalletBalance, error) {
	wallet, err := u.repo.CreateWallet(ctx, providerID)
	if err != nil {
		return response.WalletBalance{}, err
	}
	return toWalletBalance(wallet), nil
}

func (u *usecase) GetBalance(ctx context.Context, providerID int64) (response.WalletBalance, error) {
	wallet, err := u.repo.FindWalletByProviderID(ctx, providerID)
	if err != nil {
		return response.WalletBalance{}, err
	}
	return toWalletBalance(wallet), nil
}

func (u *usecase) ListTransactions(ctx context.Context, providerID int64) ([]response.Transaction, error) {
	wallet, err := u.repo.FindWalletByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	transactions, err := u.repo.ListTransactions(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}

	out := make([]response.Transaction, 0, len(transactions))
	for _, trx := range transactions {
		item := response.Transaction{
			ID:          trx.ID,
			Amount:      trx.Amount,
			Type:        string(trx.Type),
			Status:      trx.Status,
			Description: trx.Description,
			CreatedAt:   trx.CreatedAt.Format(timeLayout),
		}
		if trx.BookingID.Valid {
			item.BookingID = trx.BookingID.UUID.String()
		}
		out = append(out, item)
	}
	return out, nil
}

// RequestWithdrawal checks every precondition, computes the clamped fee, and
// delegates the atomic available -> pending hold to the repository.
func (u *usecase) RequestWithdrawal(ctx context.Context, payload *request.RequestWithdrawal, providerID int64) (response.WithdrawalDetail, error) {
	wallet, err := u.repo.FindWalletByProviderID(ctx, providerID)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}

	if payload.Amount < u.cfg.MinAmount || payload.Amount > u.cfg.MaxAmount {
		return response.WithdrawalDetail{}, errors.BadRequest(fmt.Sprintf("withdrawal amount must be between %.0f and %.0f", u.cfg.MinAmount, u.cfg.MaxAmount))
	}

	if wallet.Available < payload.Amount {
		return response.WithdrawalDetail{}, errors.BadRequest("insufficient available balance")
	}

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	todayTotal, err := u.repo.SumActiveWithdrawalsSince(ctx, wallet.ID, startOfDay)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}
	if todayTotal+payload.Amount > u.cfg.DailyLimit {
		return response.WithdrawalDetail{}, errors.BadRequest("daily withdrawal limit exceeded")
	}

	monthTotal, err := u.repo.SumActiveWithdrawalsSince(ctx, wallet.ID, startOfMonth)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}
	if monthTotal+payload.Amount > u.cfg.MonthlyLimit {
		return response.WithdrawalDetail{}, errors.BadRequest("monthly withdrawal limit exceeded")
	}

	fee := ComputeFee(payload.Amount, u.cfg)

	withdrawal := entity.Withdrawal{
		WalletID:          wallet.ID,
		ProviderID:        providerID,
		Amount:            payload.Amount,
		Fee:               fee,
		NetAmount:         payload.Amount - fee,
		BankName:          payload.BankName,
		BankAccountNumber: payload.BankAccountNumber,
		BankAccountHolder: payload.BankAccountHolder,
	}

	created, err := u.repo.CreateWithdrawal(ctx, withdrawal)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}

	return toWithdrawalDetail(created), nil
}

func (u *usecase) ListWithdrawals(ctx context.Context, providerID int64) ([]response.WithdrawalDetail, error) {
	wallet, err := u.repo.FindWalletByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	withdrawals, err := u.repo.ListWithdrawalsByWallet(ctx, wallet.ID)
	if err != nil {
		return nil, err
	}
	return toWithdrawalDetails(withdrawals), nil
}

func (u *usecase) ListPendingWithdrawals(ctx context.Context) ([]response.WithdrawalDetail, error) {
	withdrawals, err := u.repo.ListPendingWithdrawals(ctx)
	if err != nil {
		return nil, err
	}
	return toWithdrawalDetails(withdrawals), nil
}

func (u *usecase) ApproveWithdrawal(ctx context.Context, withdrawalID, adminID int64) (response.WithdrawalDetail, error) {
	withdrawal, err := u.repo.ApproveWithdrawal(ctx, withdrawalID, adminID)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}

	u.publishWithdrawalEvent(ctx, "withdrawal_approved", withdrawal)
	return toWithdrawalDetail(withdrawal), nil
}

func (u *usecase) RejectWithdrawal(ctx context.Context, withdrawalID, adminID int64, payload *request.RejectWithdrawal) (response.WithdrawalDetail, error) {
	if payload.Reason == "" {
		return response.WithdrawalDetail{}, errors.Validation("rejection reason is required")
	}

	withdrawal, err := u.repo.RejectWithdrawal(ctx, withdrawalID, adminID, payload.Reason)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}

	u.publishWithdrawalEvent(ctx, "withdrawal_rejected", withdrawal)
	return toWithdrawalDetail(withdrawal), nil
}

func (u *usecase) CompleteWithdrawal(ctx context.Context, withdrawalID, adminID int64, payload *request.CompleteWithdrawal) (response.WithdrawalDetail, error) {
	withdrawal, err := u.repo.CompleteWithdrawal(ctx, withdrawalID, adminID, payload.TransactionRef)
	if err != nil {
		return response.WithdrawalDetail{}, err
	}

	u.publishWithdrawalEvent(ctx, "withdrawal_completed", withdrawal)
	return toWithdrawalDetail(withdrawal), nil
}

// ComputeFee applies the rate and clamps the result into [MinFee, MaxFee].
func ComputeFee(amount float64, cfg *config.WithdrawalConfig) float64 {
	fee := amount * cfg.FeeRate
	if fee < cfg.MinFee {
		fee = cfg.MinFee
	}
	if fee > cfg.MaxFee {
		fee = cfg.MaxFee
	}
	return fee
}

func (u *usecase) publishWithdrawalEvent(ctx context.Context, topic string, withdrawal entity.Withdrawal) {
	event := request.WithdrawalEvent{
		WithdrawalID: withdrawal.ID,
		ProviderID:   withdrawal.ProviderID,
		Amount:       withdrawal.Amount,
		NetAmount:    withdrawal.NetAmount,
		Status:       string(withdrawal.Status),
	}
	jsonPayload, _ := json.Marshal(event)
	if err := u.publish.Publish(topic, message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		u.log.Error(ctx, "error publish "+topic+" event", err)
	}
}

func toWalletBalance(wallet entity.Wallet) response.WalletBalance {
	return response.WalletBalance{
		WalletID:   wallet.ID,
		ProviderID: wallet.ProviderID,
		Available:  wallet.Available,
		Pending:    wallet.Pending,
	}
}

func toWithdrawalDetail(withdrawal entity.Withdrawal) response.WithdrawalDetail {
	detail := response.WithdrawalDetail{
		ID:          withdrawal.ID,
		Amount:      withdrawal.Amount,
		Fee:         withdrawal.Fee,
		NetAmount:   withdrawal.NetAmount,
		Status:      string(withdrawal.Status),
		BankName:    withdrawal.BankName,
		BankAccount: withdrawal.BankAccountNumber,
		CreatedAt:   withdrawal.CreatedAt.Format(timeLayout),
	}
	if withdrawal.RejectionReason.Valid {
		detail.RejectionReason = withdrawal.RejectionReason.String
	}
	if withdrawal.TransactionRef.Valid {
		detail.TransactionRef = withdrawal.TransactionRef.String
	}
	return detail
}

func toWithdrawalDetails(withdrawals []entity.Withdrawal) []response.WithdrawalDetail {
	details := make([]response.WithdrawalDetail, 0, len(withdrawals))
	for _, withdrawal := range withdrawals {
		details = append(details, toWithdrawalDetail(withdrawal))
	}
	return details
}
