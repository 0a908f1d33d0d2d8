package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"osg-reconciler/internal/domain"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

// respondDomainError maps the domain sentinels to a status and code; anything
// else is an internal error.
func respondDomainError(c *gin.Context, err error) {
	_ = c.Error(err)
	switch {
	case errors.Is(err, domain.ErrMalformedSource):
		RespondError(c, http.StatusUnprocessableEntity, "malformed_source", err)
	case errors.Is(err, domain.ErrCustomerNotFound):
		RespondError(c, http.StatusNotFound, "customer_not_found", err)
	case errors.Is(err, domain.ErrInvalidClaim):
		RespondError(c, http.StatusBadRequest, "invalid_claim", err)
	case errors.Is(err, domain.ErrTrackingFailed):
		RespondError(c, http.StatusBadGateway, "tracking_failed", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
