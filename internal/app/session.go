package app

import (
	"log/slog"
	"net/http"
)

type sessionKey string

const SessionKeyUserId = sessionKey("userID")

const contextKeyLogger = sessionKey("logger")

func (s sessionKey) String() string {
	return string(s)
}

func (app *Application) contextGetUserId(r *http.Request) int {
	userId, ok := r.Context().Value(SessionKeyUserId).(int)
	if !ok {
		panic("missing user id from context")
	}

	return userId
}

// contextGetLogger returns the request-scoped logger, falling back to the
// application logger when the request never went through the logging
// middleware (e.g. in unit tests).
func (app *Application) contextGetLogger(r *http.Request) *slog.Logger {
	logger, ok := r.Context().Value(contextKeyLogger).(*slog.Logger)
	if !ok {
		return app.logger
	}

	return logger
}
