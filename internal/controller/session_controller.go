package controller

import (
	"errors"
	"path/filepath"
	"strconv"
	"strings"

	"ai-studyaid-be/internal/dto"
	"ai-studyaid-be/internal/pkg/serverutils"
	"ai-studyaid-be/internal/service"
	"ai-studyaid-be/pkg/analyzer"
	"ai-studyaid-be/pkg/content"
	"ai-studyaid-be/pkg/export"
	"ai-studyaid-be/pkg/quiz"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Client-side hint only; the analysis service makes no guarantee.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".mp4":  true,
}

type ISessionController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Upload(ctx *fiber.Ctx) error
	ToggleFlip(ctx *fiber.Ctx) error
	AnswerMCQ(ctx *fiber.Ctx) error
	Export(ctx *fiber.Ctx) error
	Speak(ctx *fiber.Ctx) error
}

type sessionController struct {
	sessionService service.ISessionService
}

func NewSessionController(sessionService service.ISessionService) ISessionController {
	return &sessionController{
		sessionService: sessionService,
	}
}

func (c *sessionController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/session/v1")
	h.Post("", c.Create)
	h.Get(":id", c.Show)
	h.Post(":id/upload", c.Upload)
	h.Post(":id/flashcards/:index/flip", c.ToggleFlip)
	h.Post(":id/mcqs/answer", c.AnswerMCQ)
	h.Get(":id/export", c.Export)
	h.Post(":id/speak", c.Speak)
}

func (c *sessionController) Create(ctx *fiber.Ctx) error {
	res, err := c.sessionService.CreateSession(ctx.Context())
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success create session", res))
}

func (c *sessionController) Show(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	res, err := c.sessionService.GetContent(ctx.Context(), id)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show session content", res))
}

func (c *sessionController) Upload(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "No file uploaded"))
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid file. Supported types: PDF, JPG, JPEG, PNG, MP4"))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	res, err := c.sessionService.SubmitFile(ctx.Context(), id, fileHeader.Filename, file)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success process file", res))
}

func (c *sessionController) ToggleFlip(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	index, err := strconv.Atoi(ctx.Params("index"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Invalid flashcard index"))
	}

	res, err := c.sessionService.ToggleFlip(ctx.Context(), id, index)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success toggle flashcard", res))
}

func (c *sessionController) AnswerMCQ(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.AnswerMCQRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.sessionService.AnswerMCQ(ctx.Context(), id, &req)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *sessionController) Export(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	text, err := c.sessionService.ExportText(ctx.Context(), id)
	if err != nil {
		return mapSessionError(ctx, err)
	}

	ctx.Set(fiber.HeaderContentType, "text/plain; charset=utf-8")
	ctx.Set(fiber.HeaderContentDisposition, `attachment; filename="`+export.Filename+`"`)
	return ctx.SendString(text)
}

func (c *sessionController) Speak(ctx *fiber.Ctx) error {
	idParam := ctx.Params("id")
	id, _ := uuid.Parse(idParam)

	var req dto.SpeakRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.sessionService.ReadAloud(ctx.Context(), id, &req); err != nil {
		return mapSessionError(ctx, err)
	}

	return ctx.JSON(serverutils.SuccessResponse[any]("Success queue speech", nil))
}

// mapSessionError translates domain errors into status responses. Anything
// unmapped falls through to the error middleware as a 500.
func mapSessionError(ctx *fiber.Ctx, err error) error {
	var uploadErr *analyzer.UploadError
	switch {
	case errors.Is(err, service.ErrSessionNotFound):
		return ctx.Status(fiber.StatusNotFound).JSON(serverutils.ErrorResponse(404, "Session not found"))
	case errors.Is(err, service.ErrUploadInFlight):
		return ctx.Status(fiber.StatusConflict).JSON(serverutils.ErrorResponse(409, "An upload is already in progress"))
	case errors.Is(err, quiz.ErrIndexOutOfRange):
		return ctx.Status(fiber.StatusBadRequest).JSON(serverutils.ErrorResponse(400, "Index out of range"))
	case errors.As(err, &uploadErr), errors.Is(err, content.ErrMalformedContent):
		return ctx.Status(fiber.StatusBadGateway).JSON(serverutils.ErrorResponse(502, "Failed to process the file"))
	}
	return err
}
