package httpclient

import (
	"time"

	"petcare-service/config"

	circuit "github.com/rubyist/circuitbreaker"
)

// InitCircuitBreaker picks the breaker strategy from config so gateway
// outages trip fast instead of piling up blocked requests.
func InitCircuitBreaker(cfg *config.HttpClientConfig, breakerType string) *circuit.Breaker {
	switch breakerType {
	case "rate":
		return circuit.NewRateBreaker(cfg.ErrorRate, cfg.Threshold)
	case "threshold":
		return circuit.NewThresholdBreaker(cfg.Threshold)
	default:
		return circuit.NewConsecutiveBreaker(cfg.ConsecutiveFailure)
	}
}

func InitHttpClient(cfg *config.HttpClientConfig, cb *circuit.Breaker) *circuit.HTTPClient {
	timeout := time.Duration(cfg.Timeout) * time.Second
	client := circuit.NewHTTPClientWithBreaker(cb, timeout, nil)
	return client
}
