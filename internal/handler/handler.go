package handler

import (
	"penpal/internal/domain"
	"penpal/internal/middleware"
	"penpal/internal/scene"
	"penpal/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Handler manages all bot interactions
type Handler struct {
	bot         *tele.Bot
	userService *service.UserService
	router      *scene.Router
	texts       middleware.Texts
	logger      *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	userService *service.UserService,
	router *scene.Router,
	texts middleware.Texts,
	logger *zap.Logger,
) *Handler {
	return &Handler{
		bot:         bot,
		userService: userService,
		router:      router,
		texts:       texts,
		logger:      logger,
	}
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	common := []tele.MiddlewareFunc{
		middleware.ErrorFilter(h.texts, h.logger),
		middleware.Recover(h.logger),
		middleware.ResponseTime(h.logger),
	}

	// Commands
	h.bot.Handle("/start", h.handleStart, common...)

	// Scene handlers require a registered user
	scenes := h.bot.Group()
	scenes.Use(common...)
	scenes.Use(middleware.RegisteredUser(h.userService, h.texts, h.logger))
	scenes.Handle(tele.OnText, h.handleText)
}

// resume puts the user back into the scene they reached last
func (h *Handler) resume(conv *conversation) error {
	user, err := h.userService.GetProfile(conv.UserID())
	if err != nil {
		return err
	}

	target := domain.SceneUserProfile
	if user.Progress.Valid() {
		target = user.Progress
	}

	h.logger.Info("Resuming conversation",
		zap.Int64("user_id", user.ID),
		zap.String("scene", string(target)),
	)

	return conv.Enter(target)
}
