package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/campus-portal-api/internal/dto"
	"github.com/noah-isme/campus-portal-api/internal/service"
	"github.com/noah-isme/campus-portal-api/internal/utils"
)

// AuthHandler exposes registration, login, logout and the current-user
// endpoint.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler creates a new handler instance.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register attaches the auth endpoints. The rate limiter only wraps the
// credential endpoints; /me and /logout stay unthrottled.
func (h *AuthHandler) Register(router fiber.Router, rateLimit fiber.Handler) {
	if rateLimit == nil {
		rateLimit = func(c *fiber.Ctx) error { return c.Next() }
	}

	router.Post("/register", rateLimit, h.register)
	router.Post("/login", rateLimit, h.login)
	router.Post("/logout", h.logout)
	router.Get("/me", h.me)
}

func (h *AuthHandler) register(c *fiber.Ctx) error {
	var payload dto.RegisterRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Register(c.Context(), payload)
	if err != nil {
		return respondServiceError(c, requestLogger(h.logger, c), err, "registration failed")
	}

	c.Cookie(h.service.AuthCookie(result.Token))

	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "user registered", result)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	result, err := h.service.Login(c.Context(), payload)
	if err != nil {
		return respondServiceError(c, requestLogger(h.logger, c), err, "login failed")
	}

	c.Cookie(h.service.AuthCookie(result.Token))

	return utils.SendSuccess(c, "login successful", result)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	c.Cookie(h.service.ClearAuthCookie())
	return utils.SendSuccess(c, "logout successful", nil)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	userID, err := userIDFromContext(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}

	user, err := h.service.CurrentUser(c.Context(), userID)
	if err != nil {
		return respondServiceError(c, requestLogger(h.logger, c), err, "failed to load user")
	}

	return utils.SendSuccess(c, "user retrieved", user)
}
