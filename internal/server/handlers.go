package server

import (
	stderrors "errors"

	"github.com/gofiber/fiber/v2"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Handler serves the REST and WebSocket routes of a GameManager.
type Handler struct {
	manager *GameManager
	cfg     *config.Config
}

// NewHandler creates a Handler for manager.
func NewHandler(manager *GameManager, cfg *config.Config) *Handler {
	return &Handler{manager: manager, cfg: cfg}
}

// CreateGame handles POST /api/games.
func (h *Handler) CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return errorResponse(c, fiber.StatusBadRequest, err)
		}
	}

	session, err := h.manager.CreateGame(req)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.Status(fiber.StatusCreated).JSON(session.State())
}

// GetGame handles GET /api/games/:id.
func (h *Handler) GetGame(c *fiber.Ctx) error {
	session, err := h.manager.GetGame(c.Params("id"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(session.State())
}

// DeleteGame handles DELETE /api/games/:id.
func (h *Handler) DeleteGame(c *fiber.Ctx) error {
	if err := h.manager.DeleteGame(c.Params("id")); err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// LegalMoves handles GET /api/games/:id/moves?square=e2.
func (h *Handler) LegalMoves(c *fiber.Ctx) error {
	session, err := h.manager.GetGame(c.Params("id"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}

	square := c.Query("square")
	moves, err := session.LegalMoves(square)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	if moves == nil {
		moves = []string{}
	}
	return c.JSON(fiber.Map{
		"square": square,
		"moves":  moves,
	})
}

// MakeMove handles POST /api/games/:id/moves. Watching WebSocket clients receive the
// new state.
func (h *Handler) MakeMove(c *fiber.Ctx) error {
	session, err := h.manager.GetGame(c.Params("id"))
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil {
		return errorResponse(c, fiber.StatusBadRequest, err)
	}

	state, err := session.Play(req)
	if err != nil {
		return errorResponse(c, statusFor(err), err)
	}
	return c.JSON(state)
}

func errorResponse(c *fiber.Ctx, status int, err error) error {
	return c.Status(status).JSON(ErrorPayload{Error: err.Error()})
}

// statusFor maps engine and server errors onto HTTP status codes.
func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrGameNotFound):
		return fiber.StatusNotFound
	case stderrors.Is(err, errors.ErrGameFull):
		return fiber.StatusServiceUnavailable
	case stderrors.Is(err, errors.ErrGameOver),
		stderrors.Is(err, errors.ErrNotYourTurn):
		return fiber.StatusConflict
	case stderrors.Is(err, errors.ErrIllegalMove):
		return fiber.StatusUnprocessableEntity
	case stderrors.Is(err, errors.ErrInvalidLayout),
		stderrors.Is(err, errors.ErrInvalidSquare),
		stderrors.Is(err, errors.ErrInvalidMoveText),
		stderrors.Is(err, errors.ErrInvalidColour):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}
