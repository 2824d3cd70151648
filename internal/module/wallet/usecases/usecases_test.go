package usecases_test

import (
	"context"
	"testing"

	"petcare-service/config"
	"petcare-service/internal/module/wallet/mocks"
	"petcare-service/internal/module/wallet/models/entity"
	"petcare-service/internal/module/wallet/models/request"
	"petcare-service/internal/module/wallet/usecases"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
	log_internal "petcare-service/internal/pkg/log"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

var (
	uc       usecases.Usecase
	repoMock *mocks.Repositories
	logMock  log.Logger
	p        message.Publisher
	cfg      = config.WithdrawalConfig{
		MinAmount:    50000,
		MaxAmount:    50000000,
		FeeRate:      0.01,
		MinFee:       5000,
		MaxFee:       100000,
		DailyLimit:   10000000,
		MonthlyLimit: 100000000,
	}
)

type mockPublisher struct{}

// Close implements message.Publisher.
func (m *mockPublisher) Close() error {
	return nil
}

// Publish implements message.Publisher.
func (m *mockPublisher) Publish(topic string, messages ...*message.Message) error {
	return nil
}

func NewMockPublisher() message.Publisher {
	return &mockPublisher{}
}

func setup() {
	repoMock = new(mocks.Repositories)
	p = NewMockPublisher()
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logMock = log_internal.GetLogger()
	uc = usecases.New(repoMock, logMock, p, &cfg)
}

func teardown() {
	repoMock = nil
	uc = nil
}

func TestComputeFee(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"minimum fee floor applies", 50000, 5000},
		{"rate below floor clamps up", 400000, 5000},
		{"rate applies between bounds", 1000000, 10000},
		{"maximum fee cap applies", 50000000, 100000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, usecases.ComputeFee(tc.amount, &cfg))
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	walletMock := entity.Wallet{
		ID:         1,
		ProviderID: 2,
		Available:  2000000,
		Pending:    0,
	}

	payloadFor := func(amount float64) *request.RequestWithdrawal {
		return &request.RequestWithdrawal{
			Amount:            amount,
			BankName:          "Test Bank",
			BankAccountNumber: "1234567890",
			BankAccountHolder: "Jane Provider",
		}
	}

	t.Run("success holds amount and computes fee", func(t *testing.T) {
		createdMock := entity.Withdrawal{
			ID:        1,
			WalletID:  1,
			Amount:    1000000,
			Fee:       10000,
			NetAmount: 990000,
			Status:    entity.WithdrawalPending,
		}

		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(walletMock, nil).Once()
		repoMock.On("SumActiveWithdrawalsSince", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(float64(0), nil).Twice()
		repoMock.On("CreateWithdrawal", ctx, mock.MatchedBy(func(w entity.Withdrawal) bool {
			return w.Amount == 1000000 && w.Fee == 10000 && w.NetAmount == 990000
		})).Return(createdMock, nil).Once()

		resp, err := uc.RequestWithdrawal(ctx, payloadFor(1000000), 2)
		assert.NoError(t, err)
		assert.Equal(t, float64(10000), resp.Fee)
		assert.Equal(t, float64(990000), resp.NetAmount)
	})

	t.Run("below minimum amount", func(t *testing.T) {
		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(walletMock, nil).Once()

		_, err := uc.RequestWithdrawal(ctx, payloadFor(10000), 2)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("insufficient available balance", func(t *testing.T) {
		brokeWallet := walletMock
		brokeWallet.Available = 100000

		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(brokeWallet, nil).Once()

		_, err := uc.RequestWithdrawal(ctx, payloadFor(1000000), 2)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("daily limit exceeded", func(t *testing.T) {
		richWallet := walletMock
		richWallet.Available = 20000000

		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(richWallet, nil).Once()
		repoMock.On("SumActiveWithdrawalsSince", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(float64(9500000), nil).Once()

		_, err := uc.RequestWithdrawal(ctx, payloadFor(1000000), 2)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("monthly limit exceeded", func(t *testing.T) {
		richWallet := walletMock
		richWallet.Available = 20000000

		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(richWallet, nil).Once()
		// first call is the daily window, second is the monthly one
		repoMock.On("SumActiveWithdrawalsSince", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(float64(0), nil).Once()
		repoMock.On("SumActiveWithdrawalsSince", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(float64(99500000), nil).Once()

		_, err := uc.RequestWithdrawal(ctx, payloadFor(1000000), 2)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("concurrent hold lost to the balance guard", func(t *testing.T) {
		repoMock.On("FindWalletByProviderID", ctx, int64(2)).Return(walletMock, nil).Once()
		repoMock.On("SumActiveWithdrawalsSince", ctx, int64(1), mock.AnythingOfType("time.Time")).Return(float64(0), nil).Twice()
		repoMock.On("CreateWithdrawal", ctx, mock.AnythingOfType("entity.Withdrawal")).Return(entity.Withdrawal{}, errors.Conflict("insufficient available balance")).Once()

		_, err := uc.RequestWithdrawal(ctx, payloadFor(1000000), 2)
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})
}

func TestRejectWithdrawal(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("reason is required", func(t *testing.T) {
		_, err := uc.RejectWithdrawal(ctx, 1, 9, &request.RejectWithdrawal{})
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("success reverses the hold", func(t *testing.T) {
		rejectedMock := entity.Withdrawal{
			ID:     1,
			Status: entity.WithdrawalRejected,
		}

		repoMock.On("RejectWithdrawal", ctx, int64(1), int64(9), "invalid bank details").Return(rejectedMock, nil).Once()

		resp, err := uc.RejectWithdrawal(ctx, 1, 9, &request.RejectWithdrawal{Reason: "invalid bank details"})
		assert.NoError(t, err)
		assert.Equal(t, string(entity.WithdrawalRejected), resp.Status)
	})

	t.Run("terminal withdrawal cannot be rejected again", func(t *testing.T) {
		repoMock.On("RejectWithdrawal", ctx, int64(2), int64(9), "duplicate").Return(entity.Withdrawal{}, errors.Conflict("withdrawal is not pending")).Once()

		_, err := uc.RejectWithdrawal(ctx, 2, 9, &request.RejectWithdrawal{Reason: "duplicate"})
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})
}

func TestCompleteWithdrawal(t *testing.T) {
	setup()
	defer teardown()

	ctx := context.Background()

	t.Run("success settles the pending hold", func(t *testing.T) {
		completedMock := entity.Withdrawal{
			ID:     1,
			Status: entity.WithdrawalCompleted,
		}

		repoMock.On("CompleteWithdrawal", ctx, int64(1), int64(9), "FT20260829X").Return(completedMock, nil).Once()

		resp, err := uc.CompleteWithdrawal(ctx, 1, 9, &request.CompleteWithdrawal{TransactionRef: "FT20260829X"})
		assert.NoError(t, err)
		assert.Equal(t, string(entity.WithdrawalCompleted), resp.Status)
	})

	t.Run("only approved withdrawals settle", func(t *testing.T) {
		repoMock.On("CompleteWithdrawal", ctx, int64(2), int64(9), "FT20260829Y").Return(entity.Withdrawal{}, errors.Conflict("withdrawal is not approved")).Once()

		_, err := uc.CompleteWithdrawal(ctx, 2, 9, &request.CompleteWithdrawal{TransactionRef: "FT20260829Y"})
		assert.Error(t, err)
		assert.True(t, errors.IsConflict(err))
	})
}
