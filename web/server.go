// Package web serves the dashboard page and pushes rendered screens to
// browsers over a websocket.
package web

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/LubenZA/ViewCompass/state"
	"github.com/LubenZA/ViewCompass/view"
)

// Server wires the HTTP routes: the static dashboard, the websocket stream,
// a JSON snapshot of the current screen, and Prometheus metrics.
type Server struct {
	engine    *gin.Engine
	hub       *Hub
	store     *state.Store
	staticDir string
	upgrader  websocket.Upgrader
}

func NewServer(store *state.Store, hub *Hub, staticDir string) *Server {
	s := &Server{
		engine:    gin.Default(),
		hub:       hub,
		store:     store,
		staticDir: staticDir,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	s.engine.Static("/static", staticDir)
	s.engine.GET("/", func(c *gin.Context) {
		c.File(filepath.Join(staticDir, "index.html"))
	})
	s.engine.GET("/screen", s.handleScreen)
	s.engine.GET("/ws", s.handleWebSocket)
	s.engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the listener fails.
func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) handleScreen(c *gin.Context) {
	c.JSON(http.StatusOK, view.Render(s.store.Snapshot()))
}

func (s *Server) handleWebSocket(c *gin.Context) {
	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// First frame is the current screen, so a client never waits for the
	// next sensor update to paint.
	if err := conn.WriteJSON(view.Render(s.store.Snapshot())); err != nil {
		return
	}

	s.hub.add(conn)
	defer s.hub.remove(conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
