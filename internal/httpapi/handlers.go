package httpapi

import (
	"bytes"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"osg-reconciler/internal/domain"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	reportFilename  = "OSG_Updated.xlsx"
)

var (
	errRouteNotFound = errors.New("route not found")
	errMissingUpload = errors.New("both osg_file and product_file are required")
)

func (h *Handler) processWorkbook(c *gin.Context) {
	report, ok := h.reconcileUploads(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.Writer.Write(&buf, report); err != nil {
		respondDomainError(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

func (h *Handler) processSummary(c *gin.Context) {
	report, ok := h.reconcileUploads(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, report.Summary)
}

// reconcileUploads stores both uploaded sheets in a scratch directory and runs
// the reconciliation over them. It writes the error response itself and
// reports whether the caller should continue.
func (h *Handler) reconcileUploads(c *gin.Context) (*domain.ReconciliationReport, bool) {
	dir, err := os.MkdirTemp("", "osg-upload-*")
	if err != nil {
		respondDomainError(c, err)
		return nil, false
	}
	defer os.RemoveAll(dir)

	warrantyPath, err := saveUpload(c, "osg_file", dir)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusBadRequest, "missing_upload", errMissingUpload)
		return nil, false
	}
	purchasePath, err := saveUpload(c, "product_file", dir)
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusBadRequest, "missing_upload", errMissingUpload)
		return nil, false
	}

	report, err := h.Reconciler.Reconcile(c.Request.Context(), warrantyPath, purchasePath)
	if err != nil {
		respondDomainError(c, err)
		return nil, false
	}
	return report, true
}

// saveUpload writes the multipart file under field into dir, keeping only the
// extension of the client's filename.
func saveUpload(c *gin.Context, field, dir string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = ".xlsx"
	}
	dst := filepath.Join(dir, field+ext)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		return "", fmt.Errorf("%s: %w", field, err)
	}
	return dst, nil
}

func (h *Handler) findCustomer(c *gin.Context) {
	customer, err := h.Customers.FindCustomerByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

func (h *Handler) submitClaim(c *gin.Context) {
	var req domain.ClaimRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	result, err := h.Claims.Submit(c.Request.Context(), req)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, result)
	case errors.Is(err, domain.ErrInvalidClaim):
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, result)
	default:
		// the email or the tracking endpoint failed
		_ = c.Error(err)
		c.JSON(http.StatusBadGateway, result)
	}
}

func (h *Handler) listClaims(c *gin.Context) {
	records, err := h.Claims.ListClaims(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		RespondError(c, http.StatusBadGateway, "tracking_unavailable", err)
		return
	}
	if records == nil {
		records = []domain.TrackingRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"data": records})
}
