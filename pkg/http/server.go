package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
)

const (
	DefaultServerAddress = ":8080"

	defaultReadTimeout       = 10 * time.Second
	defaultReadHeaderTimeout = 5 * time.Second
)

type ServerOption func(*server)

type Server interface {
	Listener(context.Context) error
	Register(method, path string, handler http.HandlerFunc)
}

type server struct {
	srv    *http.Server
	router *mux.Router
}

func NewServer(address string, opts ...ServerOption) Server {
	router := mux.NewRouter()

	srv := &server{
		srv: &http.Server{
			Addr:              address,
			Handler:           router,
			ReadTimeout:       defaultReadTimeout,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		router: router,
	}

	for _, opt := range opts {
		opt(srv)
	}

	return srv
}

func (s *server) Listener(ctx context.Context) error {
	shutdown := func() error {
		err := s.srv.Shutdown(context.Background())
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	}

	serverDoneChan := make(chan error, 1)
	go func() {
		err := s.srv.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		serverDoneChan <- err
	}()

	var err error
	select {
	case err = <-serverDoneChan:
	case <-ctx.Done():
		err = shutdown()
	}
	if err != nil {
		return fmt.Errorf("http listener %s: %w", s.srv.Addr, err)
	}

	return nil
}

func (s *server) Register(method, path string, handler http.HandlerFunc) {
	s.router.
		Methods(method).
		Path(path).
		HandlerFunc(handler)
}
