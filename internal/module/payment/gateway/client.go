package gateway

import (
	"fmt"
	"io"
	"net/http"

	"petcare-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

func newGatewayRequest(method, url string, body io.Reader, cfg *config.WebhookGatewayConfig) (*http.Request, error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-client-id", cfg.ClientID)
	req.Header.Set("x-api-key", cfg.APIKey)
	return req, nil
}

func doGatewayRequest(client *circuit.HTTPClient, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("gateway returned status %s", resp.Status)
	}

	return body, nil
}
