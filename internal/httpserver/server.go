// Copyright 2021 ChainSafe Systems (ON)
// SPDX-License-Identifier: LGPL-3.0-only

package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
)

// Server is an HTTP server implementation, which uses
// the HTTP handler provided.
type Server struct {
	name       string
	address    string
	addressSet chan struct{}
	handler    http.Handler
	logger     Logger
	optional   optionalSettings
}

// New creates a new HTTP server with a name, listening on
// the address specified and using the HTTP handler provided.
func New(name, address string, handler http.Handler,
	logger Logger, options ...Option) *Server {
	return &Server{
		name:       name,
		address:    address,
		addressSet: make(chan struct{}),
		handler:    handler,
		logger:     logger,
		optional:   newOptionalSettings(options),
	}
}

// GetAddress obtains the address the HTTP server is listening on.
// It blocks until the server is listening.
func (s *Server) GetAddress() (address string) {
	<-s.addressSet
	return s.address
}

// Run runs the HTTP server until ctx is canceled.
// The ready channel is closed once the server is listening,
// and the done channel receives the run error, if any.
func (s *Server) Run(ctx context.Context, ready chan<- struct{}, done chan<- error) {
	server := http.Server{
		Addr:              s.address,
		Handler:           s.handler,
		ReadTimeout:       s.optional.readTimeout,
		ReadHeaderTimeout: s.optional.readHeaderTimeout,
	}

	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		close(s.addressSet)
		done <- fmt.Errorf("listening on %s: %w", s.address, err)
		return
	}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		s.logger.Warn(s.name + " http server shutting down: " + ctx.Err().Error())
		shutdownCtx, cancel := context.WithTimeout(
			context.Background(), s.optional.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(s.name + " http server failed shutting down within " +
				s.optional.shutdownTimeout.String())
		}
	}()

	s.address = listener.Addr().String()
	close(s.addressSet)
	s.logger.Info(s.name + " http server listening on " + s.address)
	close(ready)

	err = server.Serve(listener)

	if err != nil && !errors.Is(ctx.Err(), context.Canceled) {
		// server crashed
		done <- err
		return
	}

	<-shutdownDone
	done <- nil
}
