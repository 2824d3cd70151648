package gateway

import "context"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

const (
	MethodRedirect = "redirect_gateway"
	MethodWebhook  = "webhook_gateway"
)

// Outcome is the normalized result of a payment attempt, regardless of which
// gateway or delivery channel (return redirect, webhook push, status poll)
// produced it. Reconciliation depends only on this type.
type Outcome struct {
	OrderCode string  `json:"order_code"`
	Status    Status  `json:"status"`
	Amount    float64 `json:"amount"`
	Reference string  `json:"reference"`
	Method    string  `json:"method"`
}

type CreateLinkRequest struct {
	OrderCode   string
	Amount      float64
	Description string
	BuyerName   string
	BuyerEmail  string
}

type CreateLinkResponse struct {
	CheckoutURL string
	QRCode      string
}

// Adapter abstracts one external payment gateway. Each implementation
// supports the confirmation channels its provider offers and returns a
// gateway error for the rest.
type Adapter interface {
	Method() string
	CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (CreateLinkResponse, error)
	// VerifyReturn authenticates the synchronous return-redirect parameters
	// (redirect gateway).
	VerifyReturn(params map[string]string) (Outcome, error)
	// VerifyWebhook authenticates an asynchronous signed webhook payload
	// (webhook gateway).
	VerifyWebhook(payload []byte) (Outcome, error)
	// PollStatus pulls the current state for an order code, used as the
	// reconciliation fallback when webhook delivery is delayed or missed.
	PollStatus(ctx context.Context, orderCode string) (Outcome, error)
	CancelLink(ctx context.Context, orderCode, reason string) error
}
