package gateway_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"sort"
	"strings"
	"testing"

	"petcare-service/config"
	"petcare-service/internal/module/payment/gateway"
	"petcare-service/internal/pkg/errors"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

var webhookCfg = config.WebhookGatewayConfig{
	BaseURL:     "https://api.gateway.test/v2",
	ClientID:    "client-1",
	APIKey:      "api-key-1",
	ChecksumKey: "checksumkey",
}

func signData(key string, fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+fields[k])
	}

	mac := hmac.New(sha256.New, []byte(key))
	mac.Write([]byte(strings.Join(pairs, "&")))
	return hex.EncodeToString(mac.Sum(nil))
}

func webhookPayload(t *testing.T, code string, amount float64, signature string) []byte {
	t.Helper()
	data := map[string]interface{}{
		"orderCode":   "PC1700000000",
		"amount":      amount,
		"reference":   "FT123456",
		"code":        code,
		"description": "pet care booking",
	}
	payload, err := json.Marshal(map[string]interface{}{
		"code":      code,
		"desc":      "success",
		"data":      data,
		"signature": signature,
	})
	assert.NoError(t, err)
	return payload
}

func TestVerifyWebhook(t *testing.T) {
	setup()
	g := gateway.NewWebhookGateway(&webhookCfg, logMock, nil)

	validSignature := func(code string, amount float64) string {
		return signData(webhookCfg.ChecksumKey, map[string]string{
			"orderCode":   "PC1700000000",
			"amount":      strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", amount), "0"), "."),
			"reference":   "FT123456",
			"code":        code,
			"description": "pet care booking",
		})
	}

	t.Run("paid outcome", func(t *testing.T) {
		payload := webhookPayload(t, "00", 150000, validSignature("00", 150000))

		outcome, err := g.VerifyWebhook(payload)
		assert.NoError(t, err)
		assert.Equal(t, gateway.StatusPaid, outcome.Status)
		assert.Equal(t, "PC1700000000", outcome.OrderCode)
		assert.Equal(t, float64(150000), outcome.Amount)
	})

	t.Run("non-zero code fails the payment", func(t *testing.T) {
		payload := webhookPayload(t, "01", 150000, validSignature("01", 150000))

		outcome, err := g.VerifyWebhook(payload)
		assert.NoError(t, err)
		assert.Equal(t, gateway.StatusFailed, outcome.Status)
	})

	t.Run("missing signature fails closed", func(t *testing.T) {
		payload := webhookPayload(t, "00", 150000, "")

		_, err := g.VerifyWebhook(payload)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("tampered amount fails closed", func(t *testing.T) {
		// signature for the real amount, payload claims a different one
		payload := webhookPayload(t, "00", 1, validSignature("00", 150000))

		_, err := g.VerifyWebhook(payload)
		assert.Error(t, err)
		assert.Equal(t, 400, errors.HTTPCode(err))
	})

	t.Run("garbage payload fails closed", func(t *testing.T) {
		_, err := g.VerifyWebhook([]byte("not json"))
		assert.Error(t, err)
	})
}
