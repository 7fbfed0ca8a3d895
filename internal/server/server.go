// Package server implements serve mode: a small HTTP surface for browsing
// study notes and drill transcripts, with websocket-driven live reload
// when a watched note directory changes.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/dkoosis/drill/internal/config"
	drillerrors "github.com/dkoosis/drill/internal/errors"
	"github.com/dkoosis/drill/internal/logging"
	"github.com/dkoosis/drill/internal/notes"
	"github.com/dkoosis/drill/internal/registry"
	"github.com/dkoosis/drill/internal/runner"
	"github.com/dkoosis/drill/internal/watcher"
)

// Server serves notes and drill transcripts.
type Server struct {
	config   *config.Config
	logger   logging.Logger
	registry *registry.DrillRegistry
	runner   *runner.Runner
	notes    *notes.Catalog

	httpServer *http.Server

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
}

// New creates a server from already-wired services.
func New(
	cfg *config.Config,
	logger logging.Logger,
	reg *registry.DrillRegistry,
	run *runner.Runner,
	noteCatalog *notes.Catalog,
) *Server {
	return &Server{
		config:   cfg,
		logger:   logger.WithComponent("server"),
		registry: reg,
		runner:   run,
		notes:    noteCatalog,
		clients:  make(map[*websocket.Conn]struct{}),
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/notes/{name}", s.handleNote)
	r.Get("/drills", s.handleDrillList)
	r.Get("/drills/{name}", s.handleDrillRun)
	r.Get("/ws", s.handleWebSocket)

	return r
}

// Start runs the server until ctx is cancelled, then drains connections.
// When the config names extra note paths, changes there trigger a reload
// broadcast to connected clients.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.config.Server.Host, s.config.Server.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	if len(s.config.Notes.ExtraPaths) > 0 {
		fw, err := watcher.NewFileWatcher(300 * time.Millisecond)
		if err != nil {
			return drillerrors.NewInternal(drillerrors.ErrCodeInternal, "create note watcher", err)
		}
		fw.AddFilter(watcher.MarkdownFilter)
		for _, path := range s.config.Notes.ExtraPaths {
			if err := fw.AddRecursive(path); err != nil {
				return drillerrors.NewIO(drillerrors.ErrCodeFileNotFound, "watch "+path, err)
			}
		}
		fw.Start(ctx)
		go s.reloadLoop(ctx, fw)
		defer fw.Stop()
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.ListenAndServe()
	}()

	s.logger.Info(ctx, "serving", "addr", addr)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.closeClients()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) reloadLoop(ctx context.Context, fw *watcher.FileWatcher) {
	for {
		select {
		case <-ctx.Done():
			return
		case batch, ok := <-fw.Events():
			if !ok {
				return
			}
			s.logger.Info(ctx, "note change detected", "files", len(batch))

			// reload the catalog so the next request sees new content
			catalog, err := notes.NewCatalog(s.config.Notes.ExtraPaths...)
			if err != nil {
				s.logger.Warn(ctx, err, "reloading notes failed")
				continue
			}
			s.mu.Lock()
			s.notes = catalog
			s.mu.Unlock()

			s.broadcast(ctx, "reload")
		}
	}
}

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html>
<head><title>drill</title></head>
<body>
<h1>Study notes</h1>
<ul>
{{range .Notes}}<li><a href="/notes/{{.Name}}">{{.Title}}</a></li>
{{end}}</ul>
<h1>Drills</h1>
<ul>
{{range .Drills}}<li><a href="/drills/{{.Name}}">{{.Topic}}/{{.Name}}</a> &mdash; {{.Summary}}</li>
{{end}}</ul>
<script>
new WebSocket("ws://" + location.host + "/ws").onmessage = function (e) {
	if (e.data === "reload") location.reload();
};
</script>
</body>
</html>
`))

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	catalog := s.notes
	s.mu.Unlock()

	data := struct {
		Notes  []notes.Note
		Drills []*registry.DrillInfo
	}{
		Notes:  catalog.List(),
		Drills: s.registry.GetAll(),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTemplate.Execute(w, data); err != nil {
		s.logger.Error(r.Context(), err, "rendering index")
	}
}

func (s *Server) handleNote(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	s.mu.Lock()
	catalog := s.notes
	s.mu.Unlock()

	note, err := catalog.Get(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, note.Body)
}

func (s *Server) handleDrillList(w http.ResponseWriter, r *http.Request) {
	type item struct {
		Name    string `json:"name"`
		Topic   string `json:"topic"`
		Summary string `json:"summary"`
		Note    string `json:"note,omitempty"`
	}

	drills := s.registry.GetAll()
	out := make([]item, len(drills))
	for i, d := range drills {
		out[i] = item{Name: d.Name, Topic: d.Topic, Summary: d.Summary, Note: d.Note}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Error(r.Context(), err, "encoding drill list")
	}
}

func (s *Server) handleDrillRun(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	result, err := s.runner.Run(r.Context(), name)
	if err != nil {
		status := http.StatusInternalServerError
		if drillerrors.IsInvalidArgument(err) {
			status = http.StatusNotFound
		}
		http.Error(w, err.Error(), status)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, result.Transcript)
	if result.Err != nil {
		fmt.Fprintf(w, "\ndrill error: %v\n", result.Err)
	}
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		s.logger.Warn(r.Context(), err, "websocket upgrade failed")
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	// Hold the connection open until the client goes away
	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			break
		}
	}

	s.mu.Lock()
	delete(s.clients, conn)
	s.mu.Unlock()
	conn.Close(websocket.StatusNormalClosure, "")
}

func (s *Server) broadcast(ctx context.Context, message string) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		writeCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		if err := conn.Write(writeCtx, websocket.MessageText, []byte(message)); err != nil {
			s.logger.Warn(ctx, err, "broadcast failed, dropping client")
			s.mu.Lock()
			delete(s.clients, conn)
			s.mu.Unlock()
			conn.Close(websocket.StatusGoingAway, "write failed")
		}
		cancel()
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for conn := range s.clients {
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
	s.clients = make(map[*websocket.Conn]struct{})
}
