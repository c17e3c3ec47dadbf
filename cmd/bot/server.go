package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// runServer serves on listener until ctx is done, then returns only after
// in-flight requests have finished or timeout has elapsed.
func runServer(ctx context.Context, server *http.Server, listener net.Listener, timeout time.Duration, log *logrus.Entry) error {
	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Error("failed to shut down server")
		}
	}()

	err := server.Serve(listener)
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	// Serve returns as soon as Shutdown starts
	<-shutdownDone
	return nil
}
