// internal/app/features/errors/logger.go
package errors

import (
	"net/http"

	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and renders the 500 page.
type ErrorLogger struct {
	Log    *zap.Logger
	Render RenderFunc
}

// NewErrorLogger builds an ErrorLogger that renders through the template engine.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{Log: logger, Render: renderPage}
}

// LogServerError logs msg and err with request context, then shows userMsg
// on the error page.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, msg string, err error, userMsg, backURL string) {
	e.Log.Error(msg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
	)
	if userMsg == "" {
		userMsg = "An unexpected error occurred."
	}
	RenderServerError(w, r, e.Render, userMsg, backURL)
}
