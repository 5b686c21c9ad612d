package ui

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/sachben91/agent-protocol-risk/domain/protocol"
	"github.com/sachben91/agent-protocol-risk/ports"
)

// App represents the UI application
type App struct {
	router    *chi.Mux
	reader    ports.ProtocolReaderPort
	essays    ports.EssayReaderPort
	sessions  *SessionStore
	templates *template.Template
	logger    zerolog.Logger

	// Port to listen on, e.g. "8080"
	port string
}

// Config holds UI application configuration
type Config struct {
	Port   string
	Reader ports.ProtocolReaderPort
	Essays ports.EssayReaderPort
}

// NewApp creates a new UI application
func NewApp(cfg Config) (*App, error) {
	funcMap := template.FuncMap{
		"riskInfo":      protocol.RiskDisplay,
		"archetypeInfo": func(a protocol.Archetype) protocol.ArchetypeInfo { return protocol.Archetypes[a] },
		"stageInfo":     func(s protocol.Stage) protocol.StageInfo { return protocol.Stages[s] },
		"safeCSS":       func(s string) template.CSS { return template.CSS(s) },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html", "templates/fragments/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		reader:    cfg.Reader,
		essays:    cfg.Essays,
		sessions:  NewSessionStore(),
		templates: templates,
		logger:    log.With().Str("component", "ui").Logger(),
		port:      cfg.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", http.StripPrefix("/", staticFS))
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	// Main pages
	a.router.Get("/", a.handleDashboard)
	a.router.Get("/protocols/{slug}", a.handleProtocolDetail)
	a.router.Get("/analysis", a.handleEssay("analysis", "Mapping the Power Grid"))
	a.router.Get("/methodology", a.handleEssay("methodology", "Methodology"))

	// Exports
	a.router.Get("/export.xlsx", a.handleExport)

	a.router.NotFound(a.handleNotFound)
}

// Router exposes the configured handler, used by tests and by Start.
func (a *App) Router() http.Handler {
	return a.router
}

// Start runs the HTTP server until it fails.
func (a *App) Start() error {
	addr := ":" + a.port
	a.logger.Info().Str("addr", addr).Msg("starting dashboard")
	return http.ListenAndServe(addr, a.router)
}
