package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"pcstore-be/internal/logger"
	"pcstore-be/internal/transport"

	"go.uber.org/zap"
)

// Recover is the global error handler: any panic becomes a logged 500.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err := fmt.Errorf("%v", rec)
			logger.FromCtx(r.Context()).Error("global error",
				zap.Error(err),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.ByteString("stack", debug.Stack()),
			)
			transport.WriteError(w, http.StatusInternalServerError, "Something went wrong!", err)
		}()

		next.ServeHTTP(w, r)
	})
}
