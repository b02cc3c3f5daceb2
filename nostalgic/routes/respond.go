// nostalgic/routes/respond.go
package routes

import (
	"errors"
	"fmt"
	"net/http"
	"nostalgic/nostalgic/controllers"
	"nostalgic/nostalgic/middlewares"
	"nostalgic/nostalgic/types"
	"nostalgic/nostalgic/utils/logging"

	"github.com/go-chi/render"
	"go.uber.org/zap"
)

const internalErrorDetail = "Internal Server Error"

var errInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", errInvalidInput, fmt.Sprintf(format, args...))
}

func success(detail string, data any) types.Response {
	return types.Response{StatusCode: http.StatusOK, Detail: detail, Data: data}
}

func handleJSON(handler func(r *http.Request) (any, int, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res, status, err := handler(r)
		if err != nil {
			writeError(w, r, err)
			return
		}
		render.Status(r, status)
		render.JSON(w, r, res)
	}
}

func errorStatus(err error) int {
	switch {
	case errors.Is(err, errInvalidInput),
		errors.Is(err, controllers.ErrEmptyField),
		errors.Is(err, controllers.ErrPasswordMismatch),
		errors.Is(err, controllers.ErrPasswordTooLong),
		errors.Is(err, controllers.ErrUnknownImage),
		errors.Is(err, controllers.ErrNoFiles):
		return http.StatusBadRequest
	case errors.Is(err, controllers.ErrInvalidCredentials),
		errors.Is(err, controllers.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, controllers.ErrContentNotFound),
		errors.Is(err, controllers.ErrUserImageNotFound),
		errors.Is(err, controllers.ErrContentImagesNotFound):
		return http.StatusNotFound
	case errors.Is(err, controllers.ErrUserExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := errorStatus(err)
	switch status {
	case http.StatusInternalServerError:
		logging.ErrorLogger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.String("trace_id", logging.TraceID(r.Context())),
			zap.Error(err),
		)
		render.Status(r, status)
		render.JSON(w, r, types.ErrorResponse{Detail: internalErrorDetail})
	case http.StatusUnauthorized:
		detail := err.Error()
		if errors.Is(err, controllers.ErrUnauthorized) {
			detail = "Could not validate credentials"
		}
		middlewares.Unauthorized(w, r, detail)
	default:
		render.Status(r, status)
		render.JSON(w, r, types.ErrorResponse{Detail: err.Error()})
	}
}

// identity is only called behind AuthMiddleware.
func identity(r *http.Request) (types.Identity, error) {
	ident, ok := middlewares.IdentityFrom(r.Context())
	if !ok {
		return types.Identity{}, controllers.ErrUnauthorized
	}
	return ident, nil
}
