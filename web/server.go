package web

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/mww/gameday/controller"
	"github.com/mww/gameday/relay"
	"github.com/unrolled/render"
)

type Server struct {
	server *http.Server
}

func NewServer(port int, adminUser, adminPass string, ctrl controller.C, hub *relay.Hub) (*Server, error) {
	if adminUser == "" || adminPass == "" {
		return nil, fmt.Errorf("admin credentials must not be empty")
	}

	render := newRender()
	router := getRouter(ctrl, hub, render, adminUser, adminPass)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}

func newRender() *render.Render {
	return render.New(render.Options{
		// All responses are JSON, there is no server side templating. The
		// frontend is a separate static bundle.
		IndentJSON: false,
	})
}
