package handler

import (
	"context"
	"fmt"

	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/module/payment/models/request"
	"petcare-service/internal/module/payment/usecases"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/helpers"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.elastic.co/apm"
)

type PaymentHandler struct {
	Log       *otelzap.Logger
	Validator *validator.Validate
	Usecase   usecases.Usecase
	Publish   message.Publisher
}

func (h *PaymentHandler) CreatePayment(ctx *fiber.Ctx) error {
	var req request.CreatePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)
	emailUser := ctx.Locals("email_user").(string)

	resp, err := h.Usecase.CreatePayment(ctx.UserContext(), &req, userID, emailUser)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error create payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success create payment")
}

// PaymentReturn handles the redirect gateway's synchronous return callback.
// Query parameters carry the signed outcome.
func (h *PaymentHandler) PaymentReturn(ctx *fiber.Ctx) error {
	params := make(map[string]string)
	ctx.Context().QueryArgs().VisitAll(func(key, value []byte) {
		params[string(key)] = string(value)
	})

	resp, err := h.Usecase.HandleReturn(ctx.UserContext(), params)
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle payment return: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success handle payment return")
}

// PaymentWebhook verifies and queues the pushed outcome, then acknowledges.
// The gateway retries on anything but a 2xx, so logical no-matches are
// resolved later by the consumer, not here.
func (h *PaymentHandler) PaymentWebhook(ctx *fiber.Ctx) error {
	if err := h.Usecase.HandleWebhook(ctx.UserContext(), ctx.Body()); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error handle payment webhook: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success handle payment webhook")
}

func (h *PaymentHandler) PaymentCancel(ctx *fiber.Ctx) error {
	var req request.PaymentCancellation
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	userID := ctx.Locals("user_id").(int64)

	if err := h.Usecase.PaymentCancel(ctx.UserContext(), &req, userID); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error payment cancel: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success payment cancel")
}

// ReconcilePaymentAdmin lets an operator trigger the poll fallback for one
// order code without waiting for the scheduled task.
func (h *PaymentHandler) ReconcilePaymentAdmin(ctx *fiber.Ctx) error {
	var req request.ReconcilePayment
	if err := ctx.BodyParser(&req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error parse request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest("error parse request"))
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error validate request: %v", err))
		return helpers.RespError(ctx, h.Log, errors.BadRequest(err.Error()))
	}

	if err := h.Usecase.ReconcilePayment(ctx.UserContext(), &req); err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error reconcile payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, nil, "success reconcile payment")
}

func (h *PaymentHandler) CountPendingPayment(ctx *fiber.Ctx) error {
	resp, err := h.Usecase.CountPendingPayment(ctx.UserContext())
	if err != nil {
		h.Log.Ctx(ctx.UserContext()).Error(fmt.Sprintf("error count pending payment: %v", err))
		return helpers.RespError(ctx, h.Log, err)
	}

	return helpers.RespSuccess(ctx, h.Log, resp, "success count pending payment")
}

// ConsumeReconcileQueue applies queued gateway outcomes. Messages that keep
// failing go to the poison queue with the error attached.
func (h *PaymentHandler) ConsumeReconcileQueue(msg *message.Message) error {
	msg.Ack()

	apmTx := apm.DefaultTracer.StartTransaction("payment_reconcile_consume", "messaging")
	defer apmTx.End()
	ctx := apm.ContextWithTransaction(context.Background(), apmTx)

	var outcome gateway.Outcome
	if err := json.Unmarshal(msg.Payload, &outcome); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error unmarshal message: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	if err := h.Usecase.ApplyOutcome(ctx, outcome); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error consume reconcile queue: %v", err))
		h.publishPoisoned(msg, err)
		return err
	}

	return nil
}

// ReconcilePaymentTask is the asynq handler for the scheduled poll fallback.
func (h *PaymentHandler) ReconcilePaymentTask(ctx context.Context, t *asynq.Task) error {
	apmTx := apm.DefaultTracer.StartTransaction("payment_reconcile_task", "scheduled")
	defer apmTx.End()
	ctx = apm.ContextWithTransaction(ctx, apmTx)

	var req request.ReconcilePayment
	if err := json.Unmarshal(t.Payload(), &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error unmarshal payload: %v", err))
		return err
	}

	if err := h.Validator.Struct(req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error validate payload: %v", err))
		return err
	}

	if err := h.Usecase.ReconcilePayment(ctx, &req); err != nil {
		h.Log.Ctx(ctx).Error(fmt.Sprintf("error reconcile payment: %v", err))
		return err
	}

	return nil
}

func (h *PaymentHandler) publishPoisoned(msg *message.Message, cause error) {
	reqPoisoned := request.PoisonedQueue{
		TopicTarget: "payment_reconcile",
		ErrorMsg:    cause.Error(),
		Payload:     msg.Payload,
	}

	jsonPayload, _ := json.Marshal(reqPoisoned)
	if err := h.Publish.Publish("poisoned_queue", message.NewMessage(watermill.NewUUID(), jsonPayload)); err != nil {
		h.Log.Ctx(msg.Context()).Error(fmt.Sprintf("error publish to poison queue: %v", err))
	}
}
