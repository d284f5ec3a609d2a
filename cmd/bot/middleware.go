package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/Jacobbrewer1/foxfire/pkg/logging"
	"github.com/Jacobbrewer1/foxfire/pkg/request"
	"github.com/gorilla/mux"
)

// Controller is the handler of a monitoring route.
type Controller func(w http.ResponseWriter, r *http.Request)

// middlewareHttp wraps a monitoring handler with panic recovery and request metrics.
func middlewareHttp(l *slog.Logger, handler Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		now := time.Now().UTC()
		cw := request.NewClientWriter(w)

		path := routePath(l, r)

		defer func() {
			// Run after the request has been handled, as the status code will not be available until then.
			code := strconv.Itoa(cw.StatusCode())
			HttpTotalRequests.WithLabelValues(path, r.Method, code).Inc()
			HttpRequestDuration.WithLabelValues(path, r.Method, code).Observe(time.Since(now).Seconds())
		}()

		// Recover from any panics that occur in the handler.
		defer func() {
			if rec := recover(); rec != nil {
				l.Error("Panic in handler",
					slog.String(logging.KeyError, fmt.Sprint(rec)),
					slog.String("stack", string(debug.Stack())),
				)
				request.Encode(l, cw, http.StatusInternalServerError, request.NewMessage(request.ErrInternalServer.Error()))
			}
		}()

		handler(cw, r)
	}
}

// routePath is the route template of the request, so that metrics are not labelled with
// every path a client tries.
func routePath(l *slog.Logger, r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil { // The route may be nil if the request is not routed.
		return r.URL.Path
	}

	path, err := route.GetPathTemplate()
	if err != nil {
		// An error here is only returned if the route does not define a path.
		l.Error("Error getting path template", slog.String(logging.KeyError, err.Error()))
		return r.URL.Path
	}
	return path
}
