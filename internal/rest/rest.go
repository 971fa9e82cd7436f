package rest

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"go.opentelemetry.io/otel"

	"github.com/sanLimbu/taskphotos/internal"
)

const otelName = "github.com/sanLimbu/taskphotos/internal/rest"

// HeaderUserID carries the identifier of the user authenticated by the upstream gateway.
const HeaderUserID = "X-User-ID"

// ErrorResponse represents a response containing an error message.
type ErrorResponse struct {
	Error string `json:"error"`
}

// Identity copies the HeaderUserID value into the request context.
func Identity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id := r.Header.Get(HeaderUserID); id != "" {
			r = r.WithContext(internal.WithUser(r.Context(), id))
		}

		next.ServeHTTP(w, r)
	})
}

func renderErrorResponse(ctx context.Context, w http.ResponseWriter, r *http.Request, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	status := http.StatusInternalServerError

	var ierr *internal.Error
	if !errors.As(err, &ierr) {
		resp.Error = "internal error"
	} else {
		switch ierr.Code() {
		case internal.ErrorCodeNotFound:
			status = http.StatusNotFound
		case internal.ErrorCodeInvalidArgument:
			status = http.StatusBadRequest
			resp.Error = ierr.Message()
		case internal.ErrorCodePermissionDenied:
			status = http.StatusForbidden
			resp.Error = ierr.Message()
		case internal.ErrorCodeConflict:
			status = http.StatusConflict
			resp.Error = ierr.Message()
		case internal.ErrorCodeTransfer, internal.ErrorCodePersistence:
			status = http.StatusBadGateway
			// The storage backend's message tells the user what to fix, e.g. a full bucket.
			resp.Error = msg + ": " + ierr.Error()
		case internal.ErrorCodeUnknown:
			fallthrough
		default:
			status = http.StatusInternalServerError
		}
	}

	if err != nil {
		_, span := otel.Tracer(otelName).Start(ctx, "rest.renderErrorResponse")
		defer span.End()

		span.RecordError(err)
	}

	renderResponse(w, r, resp, status)
}

func renderResponse(w http.ResponseWriter, r *http.Request, res interface{}, status int) {
	render.Status(r, status)
	render.JSON(w, r, res)
}
