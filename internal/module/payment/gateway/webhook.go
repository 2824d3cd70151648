package gateway

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"

	"petcare-service/config"
	"petcare-service/internal/pkg/errors"
	"petcare-service/internal/pkg/log"

	"github.com/goccy/go-json"
	circuit "github.com/rubyist/circuitbreaker"
)

// webhookGateway implements the push-based gateway: the provider posts a
// signed JSON webhook on completion, and additionally exposes a pull status
// endpoint per order code that reconciliation uses as fallback.
type webhookGateway struct {
	cfg        *config.WebhookGatewayConfig
	log        log.Logger
	httpClient *circuit.HTTPClient
}

func NewWebhookGateway(cfg *config.WebhookGatewayConfig, log log.Logger, httpClient *circuit.HTTPClient) Adapter {
	return &webhookGateway{
		cfg:        cfg,
		log:        log,
		httpClient: httpClient,
	}
}

func (g *webhookGateway) Method() string {
	return MethodWebhook
}

type webhookEnvelope struct {
	Code      string          `json:"code"`
	Desc      string          `json:"desc"`
	Data      json.RawMessage `json:"data"`
	Signature string          `json:"signature"`
}

type webhookData struct {
	OrderCode   string  `json:"orderCode"`
	Amount      float64 `json:"amount"`
	Reference   string  `json:"reference"`
	Code        string  `json:"code"`
	Description string  `json:"description"`
}

type paymentRequestResp struct {
	Code string `json:"code"`
	Data struct {
		OrderCode   string  `json:"orderCode"`
		Amount      float64 `json:"amount"`
		Status      string  `json:"status"`
		Reference   string  `json:"reference"`
		CheckoutURL string  `json:"checkoutUrl"`
		QRCode      string  `json:"qrCode"`
	} `json:"data"`
}

func (g *webhookGateway) CreatePaymentLink(ctx context.Context, req CreateLinkRequest) (CreateLinkResponse, error) {
	payload := map[string]interface{}{
		"orderCode":   req.OrderCode,
		"amount":      req.Amount,
		"description": req.Description,
		"buyerName":   req.BuyerName,
		"buyerEmail":  req.BuyerEmail,
	}
	payload["signature"] = g.signFields(map[string]string{
		"orderCode":   req.OrderCode,
		"amount":      trimFloat(req.Amount),
		"description": req.Description,
	})

	body, err := json.Marshal(payload)
	if err != nil {
		return CreateLinkResponse{}, errors.InternalServerError("error marshal create link payload")
	}

	httpResp, err := g.post(g.cfg.BaseURL+"/payment-requests", body)
	if err != nil {
		return CreateLinkResponse{}, errors.Gateway("error calling gateway create link: " + err.Error())
	}

	var resp paymentRequestResp
	if err := json.Unmarshal(httpResp, &resp); err != nil {
		return CreateLinkResponse{}, errors.Gateway("error parsing gateway create link response")
	}
	if resp.Code != "00" {
		return CreateLinkResponse{}, errors.Gateway("gateway rejected payment link request, code " + resp.Code)
	}

	return CreateLinkResponse{
		CheckoutURL: resp.Data.CheckoutURL,
		QRCode:      resp.Data.QRCode,
	}, nil
}

// VerifyWebhook authenticates the payload signature before trusting any
// field, and maps the gateway result code to a normalized outcome.
func (g *webhookGateway) VerifyWebhook(payload []byte) (Outcome, error) {
	var envelope webhookEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return Outcome{}, errors.BadRequest("error parsing webhook payload")
	}
	if envelope.Signature == "" {
		return Outcome{}, errors.BadRequest("missing webhook signature")
	}

	var data webhookData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return Outcome{}, errors.BadRequest("error parsing webhook data")
	}

	expected := g.signFields(map[string]string{
		"orderCode":   data.OrderCode,
		"amount":      trimFloat(data.Amount),
		"reference":   data.Reference,
		"code":        data.Code,
		"description": data.Description,
	})
	if !hmac.Equal([]byte(envelope.Signature), []byte(expected)) {
		return Outcome{}, errors.BadRequest("invalid webhook signature")
	}

	outcome := Outcome{
		OrderCode: data.OrderCode,
		Amount:    data.Amount,
		Reference: data.Reference,
		Method:    MethodWebhook,
	}
	if data.Code == "00" {
		outcome.Status = StatusPaid
	} else {
		outcome.Status = StatusFailed
	}

	return outcome, nil
}

func (g *webhookGateway) VerifyReturn(params map[string]string) (Outcome, error) {
	return Outcome{}, errors.Gateway("webhook gateway does not use a return redirect")
}

// PollStatus pulls the payment request state for the order code.
func (g *webhookGateway) PollStatus(ctx context.Context, orderCode string) (Outcome, error) {
	httpResp, err := g.get(g.cfg.BaseURL + "/payment-requests/" + orderCode)
	if err != nil {
		return Outcome{}, errors.Gateway("error polling gateway status: " + err.Error())
	}

	var resp paymentRequestResp
	if err := json.Unmarshal(httpResp, &resp); err != nil {
		return Outcome{}, errors.Gateway("error parsing gateway status response")
	}
	if resp.Code != "00" {
		return Outcome{}, errors.Gateway("gateway status request failed, code " + resp.Code)
	}

	outcome := Outcome{
		OrderCode: resp.Data.OrderCode,
		Amount:    resp.Data.Amount,
		Reference: resp.Data.Reference,
		Method:    MethodWebhook,
	}

	switch resp.Data.Status {
	case "PAID":
		outcome.Status = StatusPaid
	case "CANCELLED", "EXPIRED":
		outcome.Status = StatusCancelled
	case "PENDING", "PROCESSING":
		outcome.Status = StatusPending
	default:
		outcome.Status = StatusFailed
	}

	return outcome, nil
}

func (g *webhookGateway) CancelLink(ctx context.Context, orderCode, reason string) error {
	payload, err := json.Marshal(map[string]string{"cancellationReason": reason})
	if err != nil {
		return errors.InternalServerError("error marshal cancel payload")
	}

	if _, err := g.post(g.cfg.BaseURL+"/payment-requests/"+orderCode+"/cancel", payload); err != nil {
		return errors.Gateway("error cancelling payment link: " + err.Error())
	}
	return nil
}

func (g *webhookGateway) post(url string, body []byte) ([]byte, error) {
	req, err := newGatewayRequest("POST", url, bytes.NewReader(body), g.cfg)
	if err != nil {
		return nil, err
	}
	return doGatewayRequest(g.httpClient, req)
}

func (g *webhookGateway) get(url string) ([]byte, error) {
	req, err := newGatewayRequest("GET", url, nil, g.cfg)
	if err != nil {
		return nil, err
	}
	return doGatewayRequest(g.httpClient, req)
}

// signFields computes HMAC-SHA256 over the canonical sorted key=value string
// of the data fields, the convention this gateway uses for both directions.
func (g *webhookGateway) signFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+fields[key])
	}
	canonical := strings.Join(pairs, "&")

	mac := hmac.New(sha256.New, []byte(g.cfg.ChecksumKey))
	mac.Write([]byte(canonical))
	return hex.EncodeToString(mac.Sum(nil))
}

func trimFloat(amount float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), ".")
}
