package app

import (
	"github.com/ClarkAshida/Kanban-API/internal/auth"
	"github.com/ClarkAshida/Kanban-API/internal/cache"
	"github.com/ClarkAshida/Kanban-API/internal/config"
	"github.com/ClarkAshida/Kanban-API/internal/handlers"
	"github.com/ClarkAshida/Kanban-API/internal/repo"
	"github.com/ClarkAshida/Kanban-API/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

// Setup registers all routes on the given engine.
func Setup(r *gin.Engine, cfg config.Config, db *pgxpool.Pool, rdb *redis.Client) {
	r.GET("/", rootHandler(cfg))
	r.GET("/health", healthHandler(cfg))
	r.GET("/version", versionHandler(cfg))

	api := r.Group("/api/v1")

	tokens := auth.NewManager(cfg.JWT.Secret, rdb, cfg.JWT.AccessTTL.Duration(), cfg.JWT.RefreshTTL.Duration())

	userRepo := repo.NewPGUserRepo(db)
	boardRepo := repo.NewPGBoardRepo(db)
	columnRepo := repo.NewPGColumnRepo(db)
	cardRepo := repo.NewPGCardRepo(db)
	taskRepo := repo.NewPGTaskRepo(db)
	tagRepo := repo.NewPGTagRepo(db)
	commentRepo := repo.NewPGCommentRepo(db)
	notificationRepo := repo.NewPGNotificationRepo(db)
	attachmentRepo := repo.NewPGAttachmentRepo(db)

	boardCache := cache.NewBoardCache(rdb, cfg.Redis.DefaultTTL.Duration())

	userSvc := service.NewUserService(userRepo)
	boardSvc := service.NewBoardService(boardRepo, userRepo, boardCache)
	columnSvc := service.NewColumnService(columnRepo, boardRepo)
	cardSvc := service.NewCardService(cardRepo, columnRepo, tagRepo, boardRepo, notificationRepo)
	taskSvc := service.NewTaskService(taskRepo, cardRepo, columnRepo, boardRepo, notificationRepo)
	tagSvc := service.NewTagService(tagRepo)
	commentSvc := service.NewCommentService(commentRepo, cardRepo, columnRepo, boardRepo, notificationRepo)
	notificationSvc := service.NewNotificationService(notificationRepo)
	attachmentSvc := service.NewAttachmentService(attachmentRepo, cardRepo, columnRepo, boardRepo, cfg.Uploads.Dir)

	authHandler := handlers.NewAuthHandler(tokens, userSvc)
	registerAuthRoutes(api, authHandler)

	protected := api.Group("", auth.RequireAuth(tokens))
	registerUserRoutes(protected, handlers.NewUserHandler(userSvc))
	registerBoardRoutes(protected, handlers.NewBoardHandler(boardSvc))
	registerColumnRoutes(protected, handlers.NewColumnHandler(columnSvc))
	registerCardRoutes(protected, handlers.NewCardHandler(cardSvc))
	registerTaskRoutes(protected, handlers.NewTaskHandler(taskSvc))
	registerTagRoutes(protected, handlers.NewTagHandler(tagSvc))
	registerCommentRoutes(protected, handlers.NewCommentHandler(commentSvc))
	registerNotificationRoutes(protected, handlers.NewNotificationHandler(notificationSvc))
	registerAttachmentRoutes(protected, handlers.NewAttachmentHandler(attachmentSvc))
}

func rootHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service": "Kanban API",
			"version": cfg.App.Version,
			"env":     cfg.App.Env,
			"health":  "/health",
			"api":     "/api/v1",
		})
	}
}

func healthHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"ok": true, "env": cfg.App.Env})
	}
}

func versionHandler(cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{"version": cfg.App.Version})
	}
}

func registerAuthRoutes(api *gin.RouterGroup, h *handlers.AuthHandler) {
	api.POST("/auth/token", h.Token)
	api.POST("/auth/register", h.Register)
	api.POST("/auth/refresh", h.Refresh)
	api.POST("/auth/logout", h.Logout)
}

func registerUserRoutes(api *gin.RouterGroup, h *handlers.UserHandler) {
	api.GET("/users/me", h.Me)
	api.PATCH("/users/me", h.UpdateMe)
}

func registerBoardRoutes(api *gin.RouterGroup, h *handlers.BoardHandler) {
	api.POST("/boards", h.Create)
	api.GET("/boards", h.List)
	api.GET("/boards/:id", h.GetByID)
	api.PATCH("/boards/:id", h.Update)
	api.DELETE("/boards/:id", h.Delete)
	api.GET("/boards/:id/collaborators", h.ListCollaborators)
	api.POST("/boards/:id/collaborators", h.AddCollaborator)
	api.PATCH("/boards/:id/collaborators/:collabID", h.UpdateCollaborator)
	api.DELETE("/boards/:id/collaborators/:collabID", h.RemoveCollaborator)
	api.GET("/collaborators", h.ListAllCollaborators)
}

func registerColumnRoutes(api *gin.RouterGroup, h *handlers.ColumnHandler) {
	api.POST("/columns", h.Create)
	api.GET("/columns/:id", h.GetByID)
	api.PATCH("/columns/:id", h.Update)
	api.DELETE("/columns/:id", h.Delete)
	api.GET("/boards/:id/columns", h.ListByBoard)
}

func registerCardRoutes(api *gin.RouterGroup, h *handlers.CardHandler) {
	api.POST("/cards", h.Create)
	api.GET("/cards/:id", h.GetByID)
	api.PATCH("/cards/:id", h.Update)
	api.DELETE("/cards/:id", h.Delete)
	api.GET("/columns/:id/cards", h.ListByColumn)
	api.GET("/cards/:id/tags", h.ListTags)
	api.PUT("/cards/:id/tags/:tagID", h.AttachTag)
	api.DELETE("/cards/:id/tags/:tagID", h.DetachTag)
}

func registerTaskRoutes(api *gin.RouterGroup, h *handlers.TaskHandler) {
	api.POST("/tasks", h.Create)
	api.GET("/tasks/:id", h.GetByID)
	api.PATCH("/tasks/:id", h.Update)
	api.DELETE("/tasks/:id", h.Delete)
	api.POST("/tasks/:id/complete", h.Complete)
	api.GET("/cards/:id/tasks", h.ListByCard)
}

func registerTagRoutes(api *gin.RouterGroup, h *handlers.TagHandler) {
	api.POST("/tags", h.Create)
	api.GET("/tags", h.List)
	api.GET("/tags/:id", h.GetByID)
	api.PATCH("/tags/:id", h.Update)
	api.DELETE("/tags/:id", h.Delete)
}

func registerCommentRoutes(api *gin.RouterGroup, h *handlers.CommentHandler) {
	api.POST("/comments", h.Create)
	api.DELETE("/comments/:id", h.Delete)
	api.GET("/cards/:id/comments", h.ListByCard)
}

func registerNotificationRoutes(api *gin.RouterGroup, h *handlers.NotificationHandler) {
	api.GET("/notifications", h.List)
	api.POST("/notifications/:id/read", h.MarkRead)
	api.DELETE("/notifications/:id", h.Delete)
}

func registerAttachmentRoutes(api *gin.RouterGroup, h *handlers.AttachmentHandler) {
	api.POST("/cards/:id/attachments", h.Upload)
	api.GET("/cards/:id/attachments", h.ListByCard)
	api.GET("/attachments/:id/download", h.Download)
	api.DELETE("/attachments/:id", h.Delete)
}
