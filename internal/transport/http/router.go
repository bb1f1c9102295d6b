package http

import (
	"embed"
	"html/template"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// NewRouter wires every route served by the site.
func NewRouter(site *SiteHandler, ws *WSHandler, staticDir string, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}
	r := gin.New()
	r.Use(requestLogger(log), gin.Recovery())

	tmpl := template.Must(template.New("").Funcs(templateFuncs()).ParseFS(templatesFS, "templates/*.html"))
	r.SetHTMLTemplate(tmpl)

	if staticDir != "" {
		r.Static("/static", staticDir)
	}

	r.GET("/", site.Index)
	r.GET("/games/flashlight", site.Flashlight)
	r.POST("/theme", site.ToggleTheme)
	r.GET("/api/portfolio", site.Portfolio)
	r.GET("/healthz", Healthz)
	r.GET("/ws/flashlight", ws.ServeWS)
	return r
}

// requestLogger logs one line per request through zap.
func requestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Info("http request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"odd": func(i int) bool { return i%2 == 1 },
	}
}
