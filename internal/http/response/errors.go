package response

import (
	"errors"
	"net/http"

	"github.com/yungbote/officeorder-backend/internal/domain"
	"github.com/yungbote/officeorder-backend/internal/platform/apierr"
)

// Classify maps domain failures onto HTTP statuses and stable codes.
func Classify(err error) *apierr.Error {
	var ae *apierr.Error
	if errors.As(err, &ae) {
		return ae
	}
	switch {
	case errors.Is(err, domain.ErrUnknownDesignation):
		return apierr.New(http.StatusBadRequest, "unknown_designation", err).
			WithMessage("Choose a designation from the list, or pick Other and type one.")
	case errors.Is(err, domain.ErrInvalidRequest):
		return apierr.New(http.StatusBadRequest, "invalid_request", err).
			WithMessage("Please check the form: language and instruction are required.")
	case errors.Is(err, domain.ErrUpstreamGeneration):
		return apierr.New(http.StatusBadGateway, "generation_failed", err).
			WithMessage("The draft could not be generated right now. Please try again.")
	case errors.Is(err, domain.ErrMissingDraft):
		return apierr.New(http.StatusConflict, "missing_draft", err).
			WithMessage("Generate a document before downloading it.")
	}
	return apierr.As(err)
}
