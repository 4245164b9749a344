package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"sync"
	"time"

	"audithive.dev/launcher/internal/analysis"
	"audithive.dev/launcher/internal/configloader"
	"audithive.dev/launcher/internal/database"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Server exposes the audit console over HTTP: the four feature pages, the
// analysis API and the stored SARIF downloads.
type Server struct {
	host           string
	port           int
	resultsPath    string
	databaseEngine *database.Database
	analyzer       *analysis.Analyzer
	router         *gin.Engine
	httpServer     *http.Server
}

func NewServer(configuration configloader.Config, databaseEngine *database.Database, analyzer *analysis.Analyzer) (instance *Server, err error) {
	instance = &Server{
		host:           configuration.ServerHost,
		port:           configuration.ServerPort,
		resultsPath:    configuration.ResultsPath,
		databaseEngine: databaseEngine,
		analyzer:       analyzer,
	}
	return
}

func (server *Server) Initialize(waitGroup *sync.WaitGroup) {
	gin.SetMode(gin.ReleaseMode)
	server.router = gin.New()
	server.router.Use(gin.Recovery(), requestLogger(), crossOrigin())

	templates, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		panic(err)
	}
	server.router.SetHTMLTemplate(templates)
	server.registerRoutes()

	server.httpServer = &http.Server{
		Addr:    fmt.Sprintf("%s:%d", server.host, server.port),
		Handler: server.router,
	}

	server.analyzer.ProgressEventEmitter.Subscribe(func(phase analysis.Phase) {
		logrus.Debugf("Analysis progress: %s", phase)
	})

	waitGroup.Done()
}

// Handler returns the HTTP handler serving every route.
func (server *Server) Handler() http.Handler {
	return server.router
}

// Run serves HTTP requests until the server is deinitialized.
func (server *Server) Run() error {
	logrus.Infof("Audit service listening on %s", server.httpServer.Addr)
	if err := server.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (server *Server) Deinitialize() {
	if server.httpServer == nil {
		return
	}
	shutdownContext, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.httpServer.Shutdown(shutdownContext); err != nil {
		logrus.Errorf("%+v", err)
	}
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logrus.Debugf("%s %s %d (%s)", c.Request.Method, c.Request.URL.Path, c.Writer.Status(), time.Since(start))
	}
}

func crossOrigin() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}
