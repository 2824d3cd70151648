package gateway

import (
	"context"
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"petcare-service/config"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"
)

// redirectGateway implements the hosted-page gateway: the buyer is redirected
// to the gateway's checkout page and comes back through a return URL whose
// query parameters are authenticated with an HMAC-SHA512 secure hash over the
// canonical sorted key=value string. Amounts travel in minor units (x100).
type redirectGateway struct {
	cfg *config.RedirectGatewayConfig
	log log.Logger
}

func NewRedirectGateway(cfg *config.RedirectGatewayConfig, log log.Logger) Adapter {
	return &redirectGateway{
		cfg: cfg,
		log: log,
	}
}

func (g *redirectGateway) Method() string {
	return MethodRedirect
}

func (g *redirectGateway) CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (CreateLinkResponse, error) {
	params := map[string]string{
		"version":     "2.1.0",
		"command":     "pay",
		"tmn_code":    g.cfg.TmnCode,
		"amount":      strconv.FormatInt(toMinorUnits(req.Amount), 10),
		"order_code":  req.OrderCode,
		"order_info":  req.Description,
		"return_url":  g.cfg.ReturnURL,
		"create_date": time.Now().Format("20060102150405"),
	}

	params["secure_hash"] = g.sign(params)

	values := url.Values{}
	for key, value := range params {
		values.Set(key, value)
	}

	return CreateLinkResponse{
		CheckoutURL: g.cfg.BaseURL + "?" + values.Encode(),
	}, nil
}

// VerifyReturn fails closed: any signature mismatch rejects the callback
// before a single field is trusted.
func (g *redirectGateway) VerifyReturn(params map[string]string) (Outcome, error) {
	received, ok := params["secure_hash"]
	if !ok || received == "" {
		return Outcome{}, errors.BadRequest("missing secure hash on return callback")
	}

	signable := make(map[string]string, len(params))
	for key, value := range params {
		if key == "secure_hash" || key == "secure_hash_type" {
			continue
		}
		signable[key] = value
	}

	expected := g.sign(signable)
	if !hmac.Equal([]byte(strings.ToLower(received)), []byte(expected)) {
		return Outcome{}, errors.BadRequest("invalid secure hash on return callback")
	}

	minor, err := strconv.ParseInt(params["amount"], 10, 64)
	if err != nil {
		return Outcome{}, errors.BadRequest("invalid amount on return callback")
	}

	outcome := Outcome{
		OrderCode: params["order_code"],
		Amount:    fromMinorUnits(minor),
		Reference: params["transaction_no"],
		Method:    MethodRedirect,
	}

	switch params["response_code"] {
	case "00":
		outcome.Status = StatusPaid
	case "24":
		outcome.Status = StatusCancelled
	default:
		outcome.Status = StatusFailed
	}

	return outcome, nil
}

func (g *redirectGateway) VerifyWebhook(payload []byte) (Outcome, error) {
	return Outcome{}, errors.Gateway("redirect gateway does not deliver webhooks")
}

func (g *redirectGateway) PollStatus(ctx context.Context, orderCode string) (Outcome, error) {
	return Outcome{}, errors.Gateway("redirect gateway does not support status polling")
}

// CancelLink is a no-op: the hosted checkout link simply expires on the
// gateway side.
func (g *redirectGateway) CancelLink(ctx context.Context, orderCode, reason string) error {
	g.log.Info(ctx, fmt.Sprintf("redirect payment link for order %s left to expire: %s", orderCode, reason))
	return nil
}

// sign builds the canonical sorted key=value string and returns the
// hex-encoded HMAC-SHA512 over it.
func (g *redirectGateway) sign(params map[string]string) string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+url.QueryEscape(params[key]))
	}
	canonical := strings.Join(pairs, "&")

	mac := hmac.New(sha512.New, []byte(g.cfg.HashSecret))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

func toMinorUnits(amount float64) int64 {
	return int64(amount*100 + 0.5)
}

func fromMinorUnits(minor int64) float64 {
	return float64(minor) / 100
}
