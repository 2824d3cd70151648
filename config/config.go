package config

import (
	"log"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	HttpServer      HttpServerConfig
	Database        DatabaseConfig
	Redis           RedisConfig
	MessageStream   MessageStreamConfig
	HttpClient      HttpClientConfig
	UserService     UserServiceConfig
	RedirectGateway RedirectGatewayConfig
	WebhookGateway  WebhookGatewayConfig
	Withdrawal      WithdrawalConfig
}

type HttpServerConfig struct {
	Port string `envconfig:"http_server_port" default:"8081"`
}

type DatabaseConfig struct {
	Host     string `envconfig:"db_host" default:"localhost"`
	Port     string `envconfig:"db_port" default:"5432"`
	User     string `envconfig:"db_user" default:"postgres"`
	Password string `envconfig:"db_password" default:"postgres"`
	Name     string `envconfig:"db_name" default:"petcare"`
	SSLMode  string `envconfig:"db_ssl_mode" default:"disable"`
	MaxOpen  int    `envconfig:"db_max_open" default:"25"`
	MaxIdle  int    `envconfig:"db_max_idle" default:"5"`
}

type RedisConfig struct {
	Host     string `envconfig:"redis_host" default:"localhost"`
	Port     string `envconfig:"redis_port" default:"6379"`
	Password string `envconfig:"redis_password" default:""`
	DB       int    `envconfig:"redis_db" default:"0"`
}

type MessageStreamConfig struct {
	Host     string `envconfig:"amqp_host" default:"localhost"`
	Port     string `envconfig:"amqp_port" default:"5672"`
	User     string `envconfig:"amqp_user" default:"guest"`
	Password string `envconfig:"amqp_password" default:"guest"`
}

type HttpClientConfig struct {
	Type               string `envconfig:"http_client_type" default:"consecutive"`
	Timeout            int    `envconfig:"http_client_timeout" default:"10"`
	ConsecutiveFailure int64  `envconfig:"http_client_consecutive_failure" default:"5"`
	ErrorRate          float64
	Threshold          int64 `envconfig:"http_client_threshold" default:"10"`
}

type UserServiceConfig struct {
	Host string `envconfig:"user_service_host" default:"localhost"`
	Port string `envconfig:"user_service_port" default:"8080"`
}

// RedirectGatewayConfig holds credentials for the hosted-page gateway whose
// return callback is authenticated with an HMAC secure hash.
type RedirectGatewayConfig struct {
	BaseURL    string `envconfig:"redirect_gateway_base_url" default:"https://sandbox.redirectpay.example/paymentv2/vpcpay.html"`
	TmnCode    string `envconfig:"redirect_gateway_tmn_code"`
	HashSecret string `envconfig:"redirect_gateway_hash_secret"`
	ReturnURL  string `envconfig:"redirect_gateway_return_url" default:"http://localhost:8081/api/v1/payments/return"`
}

// WebhookGatewayConfig holds credentials for the push-webhook gateway which
// also exposes a pull status endpoint used as reconciliation fallback.
type WebhookGatewayConfig struct {
	BaseURL     string `envconfig:"webhook_gateway_base_url" default:"https://api.webhookpay.example/v2"`
	ClientID    string `envconfig:"webhook_gateway_client_id"`
	APIKey      string `envconfig:"webhook_gateway_api_key"`
	ChecksumKey string `envconfig:"webhook_gateway_checksum_key"`
}

type WithdrawalConfig struct {
	MinAmount    float64 `envconfig:"withdrawal_min_amount" default:"50000"`
	MaxAmount    float64 `envconfig:"withdrawal_max_amount" default:"50000000"`
	FeeRate      float64 `envconfig:"withdrawal_fee_rate" default:"0.01"`
	MinFee       float64 `envconfig:"withdrawal_min_fee" default:"5000"`
	MaxFee       float64 `envconfig:"withdrawal_max_fee" default:"100000"`
	DailyLimit   float64 `envconfig:"withdrawal_daily_limit" default:"100000000"`
	MonthlyLimit float64 `envconfig:"withdrawal_monthly_limit" default:"1000000000"`
}

func InitConfig() *Config {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	return &cfg
}
