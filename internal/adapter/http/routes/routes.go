package routes

import (
	"log"
	"os"
	"strconv"

	_ "dischley_intake/docs" // This will be auto-generated
	"dischley_intake/internal/adapter/http/handlers"
	repository2 "dischley_intake/internal/adapter/persistence/repository"
	"dischley_intake/internal/infrastructure/crm"
	"dischley_intake/internal/infrastructure/database"
	"dischley_intake/internal/infrastructure/mailer"
	"dischley_intake/internal/usecase"
	"dischley_intake/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	leadRepo := repository2.NewLeadDynamoRepository(ddb)
	caseResultRepo := repository2.NewCaseResultDynamoRepository(ddb)

	baseURL := getenvDefault("BASE_URL", "http://127.0.0.1:8080")
	recipients := []string{getenvDefault("NOTIFY_RECIPIENTS", "attorneys@dischleylaw.com")}

	var mailSender interfaces.IMailSender
	smtpMailer, err := mailer.NewSMTPMailer(mailer.Config{
		Host:     getenvDefault("MAIL_SERVER", "smtp.gmail.com"),
		Port:     getenvIntDefault("MAIL_PORT", 587),
		Username: os.Getenv("MAIL_USERNAME"),
		Password: os.Getenv("MAIL_PASSWORD"),
		Sender:   os.Getenv("MAIL_DEFAULT_SENDER"),
	})
	if err != nil {
		log.Printf("Mail transport not configured: %v", err)
	} else {
		mailSender = smtpMailer
	}

	var crmGateway interfaces.ICRMGateway
	clioGateway, err := crm.NewClioGateway(os.Getenv("CLIO_TOKEN"), baseURL+"/v1/leads")
	if err != nil {
		log.Printf("Clio gateway not configured: %v", err)
	} else {
		crmGateway = clioGateway
	}

	leadUseCase := usecase.NewLeadUseCase(leadRepo, mailSender, crmGateway, recipients, baseURL)
	caseResultUseCase := usecase.NewCaseResultUseCase(caseResultRepo, mailSender, recipients)

	leadHandler := handlers.NewLeadHandler(leadUseCase)
	caseResultHandler := handlers.NewCaseResultHandler(caseResultUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Everything past this point sits behind the shared staff credential.
	v1.Use(authRequired(os.Getenv("INTAKE_API_TOKEN")))
	addIntakeRoutes(v1, leadHandler, caseResultHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
