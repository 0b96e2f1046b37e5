package routes

import (
	"log"

	_ "freelance_hub/docs" // swag-generated documentation
	"freelance_hub/internal/adapter/http/handlers"
	"freelance_hub/internal/adapter/persistence/repository"
	appconfig "freelance_hub/internal/config"
	"freelance_hub/internal/infrastructure/database"
	"freelance_hub/internal/infrastructure/notifications"
	"freelance_hub/internal/infrastructure/payments"
	"freelance_hub/internal/usecase"
	"freelance_hub/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run() {
	cfg := appconfig.Load()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes(cfg)

	err := router.Run(":" + cfg.Port)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(cfg appconfig.Config) {
	ddb := database.ConnectDynamoDB(cfg)

	quoteRepo := repository.NewQuoteDynamoRepository(ddb)
	invoiceRepo := repository.NewInvoiceDynamoRepository(ddb)
	projectRepo := repository.NewProjectDynamoRepository(ddb)
	approvalStore := repository.NewApprovalDynamoStore(ddb)

	var dispatcher interfaces.INotificationDispatcher
	if cfg.NATSServerURL != "" {
		natsDispatcher, err := notifications.NewNATSDispatcher(cfg.NATSServerURL)
		if err != nil {
			log.Printf("NATS dispatcher not configured, falling back to log: %v", err)
			dispatcher = notifications.NewLogDispatcher()
		} else {
			dispatcher = natsDispatcher
		}
	} else {
		dispatcher = notifications.NewLogDispatcher()
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock)
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, invoiceRepo, dispatcher)
	approvalUseCase := usecase.NewApprovalUseCase(quoteRepo, approvalStore, dispatcher)
	paymentUseCase := usecase.NewPaymentUseCase(invoiceRepo, paymentGateway, dispatcher)
	projectUseCase := usecase.NewProjectUseCase(projectRepo, quoteRepo)
	revenueUseCase := usecase.NewRevenueUseCase(quoteRepo, invoiceRepo)

	quoteHandler := handlers.NewQuoteHandler(quoteUseCase, approvalUseCase)
	invoiceHandler := handlers.NewInvoiceHandler(paymentUseCase)
	projectHandler := handlers.NewProjectHandler(projectUseCase)
	reportHandler := handlers.NewReportHandler(revenueUseCase)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addWorkflowRoutes(v1, quoteHandler, invoiceHandler, projectHandler, reportHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
