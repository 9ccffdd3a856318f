package routes

import (
	"errors"
	"log/slog"

	"github.com/mike-pete/cms/internal/entities"
	"github.com/mike-pete/cms/internal/logger"
	"github.com/mike-pete/cms/internal/repository/contact"
	"github.com/mike-pete/cms/internal/service/progress"
	"github.com/mike-pete/cms/internal/service/splitter"
	"github.com/mike-pete/cms/internal/service/uploads"

	"github.com/gofiber/fiber/v2"
)

const (
	defaultPageSize = 50
	maxPageSize     = 500
)

type AppRouter struct {
	app      *fiber.App
	logger   logger.AppLogger
	addr     string
	uploads  uploads.UploadManager
	splitter splitter.FileSplitter
	progress progress.ProgressReader
	contacts *contact.Repo
}

func InitAppRouter(
	log logger.AppLogger,
	uploadManager uploads.UploadManager,
	fileSplitter splitter.FileSplitter,
	progressReader progress.ProgressReader,
	contacts *contact.Repo,
	addr string,
) *AppRouter {
	router := &AppRouter{
		app:      fiber.New(fiber.Config{DisableStartupMessage: true}),
		logger:   log.With(slog.String("service", "http")),
		addr:     addr,
		uploads:  uploadManager,
		splitter: fileSplitter,
		progress: progressReader,
		contacts: contacts,
	}
	api := router.app.Group("/api/v1")
	api.Post("/upload-url", router.getUploadURL)
	api.Post("/process-file", router.processFile)
	api.Get("/files/status", router.getFilesStatus)
	api.Get("/contacts", router.getContacts)
	return router
}

func (r *AppRouter) Run() error {
	return r.app.Listen(r.addr)
}

func (r *AppRouter) Stop() error {
	return r.app.Shutdown()
}

// userID reads the caller identity. Authentication itself lives in front of
// this service, an empty header is rejected.
func userID(c *fiber.Ctx) (string, error) {
	id := c.Get("X-User-ID")
	if id == "" {
		return "", fiber.NewError(fiber.StatusUnauthorized, "missing user identity")
	}
	return id, nil
}

type uploadURLRequest struct {
	FileName string `json:"fileName"`
}

func (r *AppRouter) getUploadURL(c *fiber.Ctx) error {
	user, err := userID(c)
	if err != nil {
		return err
	}
	var req uploadURLRequest
	if err = c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.FileName == "" {
		return fiber.NewError(fiber.StatusBadRequest, "fileName is required")
	}
	ticket, err := r.uploads.GetUploadURL(c.Context(), req.FileName, user)
	if err != nil {
		r.logger.Error("error issue upload url", err)
		return fiber.ErrInternalServerError
	}
	return c.JSON(ticket)
}

type processFileRequest struct {
	FileID        int64                  `json:"fileId"`
	ColumnMapping entities.ColumnMapping `json:"columnMapping"`
}

func (r *AppRouter) processFile(c *fiber.Ctx) error {
	user, err := userID(c)
	if err != nil {
		return err
	}
	var req processFileRequest
	if err = c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if err = r.splitter.ProcessFile(c.Context(), req.FileID, user, req.ColumnMapping); err != nil {
		return r.mapProcessError(c, req.FileID, err)
	}
	return c.JSON(fiber.Map{"fileId": req.FileID, "status": "chunked"})
}

func (r *AppRouter) mapProcessError(c *fiber.Ctx, fileID int64, err error) error {
	switch {
	case errors.Is(err, entities.ErrFileNotFound):
		return fiber.NewError(fiber.StatusNotFound, "file not found")
	case errors.Is(err, entities.ErrNotOwner):
		return fiber.NewError(fiber.StatusForbidden, "file does not belong to user")
	case errors.Is(err, entities.ErrChunksAlreadyQueued):
		return fiber.NewError(fiber.StatusConflict, "file is already being processed")
	case errors.Is(err, entities.ErrMappingEmailRequired):
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	default:
		r.logger.Error("error process file", err, slog.Int64("file_id", fileID))
		return fiber.ErrInternalServerError
	}
}

func (r *AppRouter) getFilesStatus(c *fiber.Ctx) error {
	user, err := userID(c)
	if err != nil {
		return err
	}
	statuses, err := r.progress.FilesStatus(c.Context(), user)
	if err != nil {
		r.logger.Error("error get files status", err)
		return fiber.ErrInternalServerError
	}
	if statuses == nil {
		statuses = []*entities.FileProgress{}
	}
	return c.JSON(statuses)
}

func (r *AppRouter) getContacts(c *fiber.Ctx) error {
	user, err := userID(c)
	if err != nil {
		return err
	}
	limit := c.QueryInt("limit", defaultPageSize)
	if limit <= 0 || limit > maxPageSize {
		limit = defaultPageSize
	}
	page := c.QueryInt("page", 0)
	if page < 0 {
		page = 0
	}
	list, err := r.contacts.ListByOwner(c.Context(), user, limit, page*limit)
	if err != nil {
		r.logger.Error("error list contacts", err)
		return fiber.ErrInternalServerError
	}
	total, err := r.contacts.CountByOwner(c.Context(), user)
	if err != nil {
		r.logger.Error("error count contacts", err)
		return fiber.ErrInternalServerError
	}
	if list == nil {
		list = []*entities.Contact{}
	}
	return c.JSON(fiber.Map{
		"contacts": list,
		"total":    total,
		"page":     page,
		"limit":    limit,
	})
}
