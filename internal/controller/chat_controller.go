package controller

import (
	"errors"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/pkg/serverutils"
	"ai-studyaid-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	SendMessage(ctx *fiber.Ctx) error
	GetTranscript(ctx *fiber.Ctx) error
}

type chatController struct {
	dialogueService service.IDialogueService
}

func NewChatController(dialogueService service.IDialogueService) IChatController {
	return &chatController{
		dialogueService: dialogueService,
	}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat/v1")
	h.Post(":id/message", c.SendMessage)
	h.Get(":id/transcript", c.GetTranscript)
}

func (c *chatController) SendMessage(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.SendChatRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	res, err := c.dialogueService.SendMessage(ctx.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success send chat", res))
}

func (c *chatController) GetTranscript(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.dialogueService.GetTranscript(ctx.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success get transcript", res))
}
