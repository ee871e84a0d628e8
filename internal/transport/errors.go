package transport

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"smoothbux-be/internal/logger"
	"smoothbux-be/internal/menu"
	"smoothbux-be/internal/order"
	"smoothbux-be/internal/user"
	"smoothbux-be/internal/utils"
)

// statusFor maps domain errors onto HTTP status codes. Anything
// unrecognized is treated as an internal failure.
func statusFor(err error) int {
	switch {
	case errors.Is(err, order.ErrCustomerNameRequired),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMenuItemRequired),
		errors.Is(err, order.ErrUnknownStatus),
		errors.Is(err, menu.ErrNameRequired):
		return http.StatusBadRequest
	case errors.Is(err, user.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, order.ErrOrderNotFound),
		errors.Is(err, menu.ErrItemNotFound),
		errors.Is(err, menu.ErrOptionNotFound),
		errors.Is(err, user.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrInvalidTransition),
		errors.Is(err, order.ErrOrderCompleted),
		errors.Is(err, order.ErrStatusConflict),
		errors.Is(err, user.ErrUsernameTaken):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		logger.FromCtx(r.Context()).Error("request failed",
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		utils.WriteJSONError(w, "internal server error", code)
		return
	}
	utils.WriteJSONError(w, err.Error(), code)
}
