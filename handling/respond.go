package handling

import (
	"cafeqr_server/lib"
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"
)

// RespondError maps a service error onto the HTTP response envelope:
// validation failures to 400, unresolved references to 404, everything else
// to a logged 500.
func RespondError(w http.ResponseWriter, logger *gecho.Logger, err error, fallbackMsg string) {
	var reqErr *lib.RequestValidationError
	if errors.As(err, &reqErr) {
		gecho.BadRequest(w,
			gecho.WithMessage(reqErr.Error()),
			gecho.WithData(reqErr.Errors),
			gecho.Send(),
		)
		return
	}

	switch {
	case lib.IsValidation(err):
		gecho.BadRequest(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	case lib.IsNotFound(err):
		gecho.NotFound(w,
			gecho.WithMessage(err.Error()),
			gecho.Send(),
		)
	default:
		logger.Error("An error occurred", gecho.Field("error", err), gecho.Field("msg", fallbackMsg))
		gecho.InternalServerError(w,
			gecho.WithMessage(fallbackMsg),
			gecho.Send(),
		)
	}
}

// RespondBadBody is the shared response for unreadable or invalid request bodies.
func RespondBadBody(w http.ResponseWriter, logger *gecho.Logger, err error) {
	var reqErr *lib.RequestValidationError
	if errors.As(err, &reqErr) {
		gecho.BadRequest(w,
			gecho.WithMessage(reqErr.Error()),
			gecho.WithData(reqErr.Errors),
			gecho.Send(),
		)
		return
	}

	logger.Warn("Failed to extract request body", gecho.Field("error", err))
	gecho.BadRequest(w,
		gecho.WithMessage("Invalid request body"),
		gecho.Send(),
	)
}
