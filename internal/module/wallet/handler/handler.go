package handler

import (
	"fmt"
	"strconv"

	"petcare-service/internal/module/wallet/models/request"
	"petcare-service/internal/module/wallet/usecases"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/helpers"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
)

type WalletHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
}

func (h *WalletHandler) CreateWallet(ctx *fiber.Ctx) error {
	providerID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.CreateWallet(ctx.UserContext(), providerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create wallet: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create wallet")
}

func (h *WalletHandler) GetBalance(ctx *fiber.Ctx) error {
	providerID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.GetBalance(ctx.UserContext(), providerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error get balance: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success get balance")
}

func (h *WalletHandler) ListTransactions(ctx *fiber.Ctx) error {
	providerID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ListTransactions(ctx.UserContext(), providerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list transactions: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list transactions")
}

func (h *WalletHandler) RequestWithdrawal(ctx *fiber.Ctx) error {
	var req request.RequestWithdrawal
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	providerID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.RequestWithdrawal(ctx.UserContext(), &req, providerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error request withdrawal: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success request withdrawal")
}

func (h *WalletHandler) ListWithdrawals(ctx *fiber.Ctx) error {
	providerID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ListWithdrawals(ctx.UserContext(), providerID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list withdrawals: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list withdrawals")
}

func (h *WalletHandler) ListPendingWithdrawals(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.ListPendingWithdrawals(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error list pending withdrawals: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success list pending withdrawals")
}

func (h *WalletHandler) ApproveWithdrawal(ctx *fiber.Ctx) error {
	withdrawalID, err := h.withdrawalID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	adminID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.ApproveWithdrawal(ctx.UserContext(), withdrawalID, adminID)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error approve withdrawal: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success approve withdrawal")
}

func (h *WalletHandler) RejectWithdrawal(ctx *fiber.Ctx) error {
	withdrawalID, err := h.withdrawalID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.RejectWithdrawal
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	adminID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.RejectWithdrawal(ctx.UserContext(), withdrawalID, adminID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reject withdrawal: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success reject withdrawal")
}

func (h *WalletHandler) CompleteWithdrawal(ctx *fiber.Ctx) error {
	withdrawalID, err := h.withdrawalID(ctx)
	if err != nil {
		return helpers.RespError(ctx, h.Log, err)
	}

	var req request.CompleteWithdrawal
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	adminID := ctx.Locals("user_id").(int64)

	resp, err := h.Usecase.CompleteWithdrawal(ctx.UserContext(), withdrawalID, adminID, &req)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error complete withdrawal: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success complete withdrawal")
}

func (h *WalletHandler) withdrawalID(ctx *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(ctx.Params("id"), 10, 64)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse withdrawal id: %v", err))
		return 0, errors.BadRequest("error parse withdrawal id")
	}
	return id, nil
}
