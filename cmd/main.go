package main

import (
	"context"
	"log"

	"petcare-service/config"
	bookinghandler "petcare-service/internal/module/booking/handler"
	bookingrepositories "petcare-service/internal/module/booking/repositories"
	bookingusecases "petcare-service/internal/module/booking/usecases"
	"petcare-service/internal/module/payment/gateway"
	paymenthandler "petcare-service/internal/module/payment/handler"
	paymentrepositories "petcare-service/internal/module/payment/repositories"
	paymentusecases "petcare-service/internal/module/payment/usecases"
	wallethandler "petcare-service/internal/module/wallet/handler"
	walletrepositories "petcare-service/internal/module/wallet/repositories"
	walletusecases "petcare-service/internal/module/wallet/usecases"
	"petcare-service/internal/pkg/database"
	"petcare-service/internal/pkg/http"
	"petcare-service/internal/pkg/httpclient"
	log_internal "petcare-service/internal/pkg/log"
	"petcare-service/internal/pkg/messagestream"
	"petcare-service/internal/pkg/middleware"
	"petcare-service/internal/pkg/redis"
	"petcare-service/internal/pkg/scheduler"
	router "petcare-service/internal/route"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
)

func main() {
	cfg := config.InitConfig()

	app, messageRouters := initService(cfg)

	for _, router := range messageRouters {
		ctx := context.Background()
		go func(router *message.Router) {
			err := router.Run(ctx)
			if err != nil {
				log.Fatal(err)
			}
		}(router)
	}

	// start http server
	http.StartHttpServer(app, cfg.HttpServer.Port)
}

func initService(cfg *config.Config) (*fiber.App, []*message.Router) {

	// init database
	db := database.GetConnection(&cfg.Database)
	// init redis
	redisClient := redis.SetupClient(&cfg.Redis)
	redsyncLocks := redis.SetupRedsync(redisClient)
	// init logger
	logZap := log_internal.SetupLogger()
	log_internal.Init(logZap)
	logger := log_internal.GetLogger()
	// init http client
	cb := httpclient.InitCircuitBreaker(&cfg.HttpClient, cfg.HttpClient.Type)
	httpClient := httpclient.InitHttpClient(&cfg.HttpClient, cb)

	ctx := context.Background()
	// init message stream
	amqp := messagestream.NewAmpq(&cfg.MessageStream)

	// Init Subscriber
	subscriber, err := amqp.NewSubscriber()
	if err != nil {
		logger.Error(ctx, "Failed to create subscriber", err)
	}

	// Init Publisher
	publisher, err := amqp.NewPublisher()
	if err != nil {
		logger.Error(ctx, "Failed to create publisher", err)
	}

	// init scheduler
	sched := scheduler.Scheduler{
		Log: logger,
	}
	taskClient := sched.InitClient(&cfg.Redis)
	taskInspector := sched.InitInspector(&cfg.Redis)
	go sched.StartMonitoring(&cfg.Redis)

	// init payment gateway adapters
	adapters := map[string]gateway.Adapter{
		gateway.MethodRedirect: gateway.NewRedirectGateway(&cfg.RedirectGateway, logger),
		gateway.MethodWebhook:  gateway.NewWebhookGateway(&cfg.WebhookGateway, logger, httpClient),
	}

	walletRepo := walletrepositories.New(db, logger)
	walletUsecase := walletusecases.New(walletRepo, logger, publisher, &cfg.Withdrawal)

	bookingRepo := bookingrepositories.New(db, logger, httpClient, redisClient, walletRepo, &cfg.UserService)
	bookingUsecase := bookingusecases.New(bookingRepo, logger, publisher)

	paymentRepo := paymentrepositories.New(db, logger, redisClient, taskClient, taskInspector)
	paymentUsecase := paymentusecases.New(paymentRepo, logger, publisher, adapters, redsyncLocks)

	middleware := middleware.Middleware{
		Log:  logZap,
		Repo: bookingRepo,
	}

	validator := validator.New()
	bookingHandler := bookinghandler.BookingHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   bookingUsecase,
	}
	paymentHandler := paymenthandler.PaymentHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   paymentUsecase,
		Publish:   publisher,
	}
	walletHandler := wallethandler.WalletHandler{
		Log:       logZap,
		Validator: validator,
		Usecase:   walletUsecase,
	}

	var messageRouters []*message.Router

	consumeReconcileQueueRouter, err := messagestream.NewRouter(publisher, "payment_reconcile_poisoned", "payment_reconcile_handler", "payment_reconcile", subscriber, paymentHandler.ConsumeReconcileQueue)
	if err != nil {
		logger.Error(ctx, "Failed to create consume_reconcile_queue router", err)
	}

	messageRouters = append(messageRouters, consumeReconcileQueueRouter)

	// scheduled poll fallback for pending payments
	go sched.StartHandler(&cfg.Redis,
		[]string{scheduler.TypeReconcilePayment},
		[]func(ctx context.Context, t *asynq.Task) error{paymentHandler.ReconcilePaymentTask},
	)

	serverHttp := http.SetupHttpEngine()

	r := router.Initialize(serverHttp, &bookingHandler, &paymentHandler, &walletHandler, &middleware)

	return r, messageRouters

}
