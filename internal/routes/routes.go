package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/smartserve-app/smartserve-api/internal/audit"
	"github.com/smartserve-app/smartserve-api/internal/chat"
	"github.com/smartserve-app/smartserve-api/internal/config"
	"github.com/smartserve-app/smartserve-api/internal/handlers"
	infraRepo "github.com/smartserve-app/smartserve-api/internal/infra/repository"
	"github.com/smartserve-app/smartserve-api/internal/middleware"
	"github.com/smartserve-app/smartserve-api/internal/storage"
	ucRequest "github.com/smartserve-app/smartserve-api/internal/usecase/request"
	ucReview "github.com/smartserve-app/smartserve-api/internal/usecase/review"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	hub *chat.Hub,
	relay *chat.Relay,
) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	requestRepo := infraRepo.NewRequestGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	uploader := storage.NewUploader(cfg)

	// ======================================================
	// USE CASES — REQUESTS
	// ======================================================
	createRequestUC := ucRequest.NewCreateRequest(requestRepo, auditDispatcher)
	acceptRequestUC := ucRequest.NewAcceptRequest(requestRepo, auditDispatcher)
	declineRequestUC := ucRequest.NewDeclineRequest(requestRepo, auditDispatcher)
	completeRequestUC := ucRequest.NewCompleteRequest(requestRepo, auditDispatcher)
	rebookRequestUC := ucRequest.NewRebookRequest(requestRepo, auditDispatcher)
	cancelRequestUC := ucRequest.NewCancelRequest(requestRepo, auditDispatcher)
	recordPaymentUC := ucRequest.NewRecordPayment(requestRepo, auditDispatcher)
	listRequestsUC := ucRequest.NewListRequests(requestRepo)

	// ======================================================
	// USE CASES — REVIEWS
	// ======================================================
	submitReviewUC := ucReview.NewSubmitReview(reviewRepo, auditDispatcher)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	meHandler := handlers.NewMeHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	providerHandler := handlers.NewProviderHandler(db)
	photoHandler := handlers.NewPhotoHandler(db, uploader)
	chatHandler := handlers.NewChatHandler(db, hub, relay)

	requestHandler := handlers.NewRequestHandler(
		createRequestUC,
		acceptRequestUC,
		declineRequestUC,
		completeRequestUC,
		rebookRequestUC,
		cancelRequestUC,
		recordPaymentUC,
		listRequestsUC,
	)

	reviewHandler := handlers.NewReviewHandler(db, submitReviewUC)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		api.GET("/providers", providerHandler.List)
		api.GET("/providers/:id", providerHandler.Get)
		api.GET("/providers/:id/reviews", reviewHandler.ListForProvider)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/clients/register", authHandler.RegisterClient)
		api.POST("/auth/clients/login", authHandler.LoginClient)
		api.POST("/auth/providers/register", authHandler.RegisterProvider)
		api.POST("/auth/providers/login", authHandler.LoginProvider)

		// ------------------------------
		// PRIVATE
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", meHandler.GetMe)
			secured.POST("/me/photo", photoHandler.Upload)

			clientOnly := secured.Group("/")
			clientOnly.Use(middleware.RequireRole(middleware.RoleClient))
			{
				clientOnly.PATCH("/me/client", clientHandler.UpdateMe)

				clientOnly.POST("/requests", requestHandler.Create)
				clientOnly.PUT("/requests/:id/rebook", requestHandler.Rebook)
				clientOnly.DELETE("/requests/:id", requestHandler.Cancel)
				clientOnly.PUT("/requests/:id/payment", requestHandler.Pay)

				clientOnly.PUT("/reviews/:id", reviewHandler.Submit)
			}

			providerOnly := secured.Group("/")
			providerOnly.Use(middleware.RequireRole(middleware.RoleProvider))
			{
				providerOnly.PATCH("/me/provider", providerHandler.UpdateMe)
				providerOnly.GET("/me/membership", providerHandler.GetMembership)
				providerOnly.PUT("/me/membership", providerHandler.UpdateMembership)

				providerOnly.PUT("/requests/:id/accept", requestHandler.Accept)
				providerOnly.PUT("/requests/:id/decline", requestHandler.Decline)
				providerOnly.PUT("/requests/:id/complete", requestHandler.Complete)
			}

			secured.GET("/requests", requestHandler.List)
			secured.GET("/reviews", reviewHandler.ListMine)

			// ------------------------------
			// CHAT
			// ------------------------------
			secured.POST("/chats", chatHandler.CreateRoom)
			secured.GET("/chats", chatHandler.ListRooms)
			secured.GET("/chats/:id/messages", chatHandler.ListMessages)
			secured.POST("/chats/:id/messages", chatHandler.SendMessage)
			secured.GET("/ws/chats/:id", chatHandler.Socket)
		}
	}
}
