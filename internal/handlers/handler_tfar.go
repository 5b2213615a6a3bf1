package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/tfarhq/tfar_backend/internal/core/ports"
	"github.com/tfarhq/tfar_backend/internal/dto"
	"github.com/tfarhq/tfar_backend/internal/middleware"
)

// selectedTenantHeader carries the caller's previously selected tenant id.
// It is a hint only: an explicit tenant_id parameter always wins, and a stale
// value falls back to the user's first accessible tenant.
const selectedTenantHeader = "X-Selected-Tenant"

// tfarHandler handles TFAR upload, listing and export requests.
type tfarHandler struct {
	ingestionService ports.IngestionService
	registerService  ports.RegisterService
	maxUploadBytes   int64
}

func newTfarHandler(is ports.IngestionService, rs ports.RegisterService, maxUploadBytes int64) *tfarHandler {
	return &tfarHandler{
		ingestionService: is,
		registerService:  rs,
		maxUploadBytes:   maxUploadBytes,
	}
}

// registerTfarRoutes registers the asset register routes.
func registerTfarRoutes(rg *gin.RouterGroup, ingestionService ports.IngestionService, registerService ports.RegisterService, maxUploadBytes int64) {
	h := newTfarHandler(ingestionService, registerService, maxUploadBytes)

	tfar := rg.Group("/tfar")
	{
		tfar.POST("/uploads", h.upload)
		tfar.GET("/uploads", h.listUploads)
		tfar.GET("/records", h.listRecords)
		tfar.GET("/export", h.exportCSV)
	}
}

// sourceIP returns the best-effort client address: the first entry of a
// forwarded-for header when present, else the direct peer address.
func sourceIP(c *gin.Context) string {
	if xff := c.GetHeader("X-Forwarded-For"); xff != "" {
		return strings.TrimSpace(strings.Split(xff, ",")[0])
	}
	return c.RemoteIP()
}

// tenantSelection extracts the explicit and remembered tenant ids from the request.
func tenantSelection(c *gin.Context) (requested, last string) {
	requested = c.Query("tenant_id")
	if requested == "" {
		requested = c.PostForm("tenant_id")
	}
	return requested, c.GetHeader(selectedTenantHeader)
}

func pagination(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

func (h *tfarHandler) upload(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Please choose a file to upload"})
		return
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".xlsx") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unsupported file type. Please upload .xlsx files only"})
		return
	}
	if h.maxUploadBytes > 0 && fileHeader.Size > h.maxUploadBytes {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{Error: "File too large"})
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		logger.Error("Failed to open uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}
	defer f.Close()

	fileBytes, err := io.ReadAll(f)
	if err != nil {
		logger.Error("Failed to read uploaded file", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read uploaded file"})
		return
	}

	requested, last := tenantSelection(c)
	audit, err := h.ingestionService.IngestWorkbook(c.Request.Context(), ports.IngestRequest{
		FileBytes:         fileBytes,
		Filename:          filepath.Base(fileHeader.Filename),
		UserID:            userID,
		RequestedTenantID: requested,
		LastTenantID:      last,
		SourceIP:          sourceIP(c),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUploadResponse(audit))
}

func (h *tfarHandler) listRecords(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requested, last := tenantSelection(c)
	limit, offset := pagination(c)
	records, tenant, err := h.registerService.ListRecords(c.Request.Context(), userID, requested, last, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(selectedTenantHeader, tenant.TenantID)
	c.JSON(http.StatusOK, dto.ToListRecordsResponse(tenant.TenantID, records))
}

func (h *tfarHandler) listUploads(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requested, last := tenantSelection(c)
	limit, offset := pagination(c)
	uploads, tenant, err := h.registerService.ListUploads(c.Request.Context(), userID, requested, last, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header(selectedTenantHeader, tenant.TenantID)
	c.JSON(http.StatusOK, dto.ToListUploadsResponse(tenant.TenantID, uploads))
}

func (h *tfarHandler) exportCSV(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	requested, last := tenantSelection(c)
	data, audit, err := h.registerService.ExportCSV(c.Request.Context(), userID, requested, last)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+audit.Filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
