package middleware

import (
	"net/http"

	"github.com/Nzyazin/fincalc/internal/core/logger"
)

// statusRecorder remembers the status code written by the wrapped handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	return r.ResponseWriter.Write(b)
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

type ErrorHandler struct {
	handler http.Handler
	log     logger.Logger
}

// WithErrorHandler logs every response that ends with an error status:
// client errors at warn, server errors at error.
func WithErrorHandler(log logger.Logger) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return &ErrorHandler{handler: h, log: log}
	}
}

func (eh *ErrorHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := &statusRecorder{ResponseWriter: w}
	eh.handler.ServeHTTP(rec, r)

	fields := []logger.Field{
		logger.StringField("method", r.Method),
		logger.StringField("path", r.URL.Path),
		logger.IntField("status", rec.status),
		logger.StringField("request_id", RequestIDFromContext(r.Context())),
	}

	switch {
	case rec.status >= http.StatusInternalServerError:
		eh.log.Error("request failed", fields...)
	case rec.status >= http.StatusBadRequest:
		eh.log.Warn("request rejected", fields...)
	}
}
