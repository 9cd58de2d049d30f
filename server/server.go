// Package server hosts the visualizer in a browser: it serves a canvas
// page and, per websocket connection, runs one independent scene. The
// browser sends pointer events up; the server applies them, ticks the
// simulation at the configured rate, and streams draw primitives down.
// Each session's scene is owned by exactly one goroutine, preserving the
// strictly serial event model.
package server

import (
	"fmt"
	"log/slog"
	"math/rand"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/forceviz/forceviz/ingest"
	"github.com/forceviz/forceviz/input"
	"github.com/forceviz/forceviz/physics"
	"github.com/forceviz/forceviz/render"
)

// Options configures the browser host.
type Options struct {
	Port         int
	TPS          int
	Width        float64
	Height       float64
	VertexRadius float64
	Charge       float64
	Stiffness    float64
	Noise        float64
	Seed         int64
	Edges        ingest.EdgeList
}

// Server serves the canvas page and websocket sessions.
type Server struct {
	opts     Options
	router   *mux.Router
	upgrader websocket.Upgrader
}

// New creates a server for the given options.
func New(opts Options) *Server {
	s := &Server{
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 8192,
		},
	}
	r := mux.NewRouter()
	r.HandleFunc("/", s.handleIndex).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleSocket)
	s.router = r
	return s
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP on the configured port.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", s.opts.Port),
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	slog.Info("serving browser host", "port", s.opts.Port)
	return srv.ListenAndServe()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	fmt.Fprint(w, indexHTML)
}

// handleSocket runs one visualizer session over a websocket. A reader
// goroutine decodes incoming events onto a channel; the session loop is
// the scene's single writer, interleaving events and ticks.
func (s *Server) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	seed := s.opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sc, err := ingest.Build(s.opts.Edges, s.opts.Width, s.opts.Height,
		rand.New(rand.NewSource(seed)))
	if err != nil {
		slog.Error("scene construction failed", "error", err)
		return
	}

	// The scene's own id doubles as the session id.
	log := slog.With("session", sc.ID.String()[:8])

	ctrl := &input.Controller{VertexRadius: s.opts.VertexRadius}
	var layout physics.Layout = &physics.ForceDirected{
		Charge:    s.opts.Charge,
		Stiffness: s.opts.Stiffness,
	}
	if s.opts.Noise > 0 {
		layout = physics.NewNoise(layout, seed, s.opts.Noise)
	}

	log.Info("session started", "vertices", sc.Graph.Order(), "edges", len(sc.Graph.Edges()))

	events := make(chan input.Event, 64)
	done := make(chan struct{})
	stop := make(chan struct{})
	defer close(stop)
	go func() {
		defer close(done)
		for {
			var wire wireEvent
			if err := conn.ReadJSON(&wire); err != nil {
				return
			}
			ev, err := wire.decode()
			if err != nil {
				log.Warn("dropping malformed event", "error", err)
				continue
			}
			select {
			case events <- ev:
			case <-stop:
				return
			}
		}
	}()

	dt := 1.0 / float64(s.opts.TPS)
	ticker := time.NewTicker(time.Second / time.Duration(s.opts.TPS))
	defer ticker.Stop()

	for {
		select {
		case <-done:
			log.Info("session closed")
			return
		case ev := <-events:
			ctrl.Apply(sc, ev)
		case <-ticker.C:
			layout.Tick(sc, dt)
			frame, err := render.Compose(sc, s.opts.VertexRadius)
			if err != nil {
				log.Error("frame composition failed", "error", err)
				return
			}
			if err := conn.WriteJSON(frame); err != nil {
				log.Info("session closed", "error", err)
				return
			}
		}
	}
}
