package http

import (
	"net/http"
	"net/url"

	"flashlight-portfolio/internal/content"
	"flashlight-portfolio/internal/domain"
	"github.com/gin-gonic/gin"
)

const themeCookie = "theme"

// SiteHandler renders the portfolio and game pages.
type SiteHandler struct {
	picker content.Picker
}

func NewSiteHandler(picker content.Picker) *SiteHandler {
	return &SiteHandler{picker: picker}
}

func (h *SiteHandler) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"theme":     currentTheme(c),
		"portfolio": content.Load(h.picker),
	})
}

func (h *SiteHandler) Flashlight(c *gin.Context) {
	c.HTML(http.StatusOK, "game.html", gin.H{
		"theme": currentTheme(c),
		"meta":  content.MetaTags(),
	})
}

// ToggleTheme flips the theme cookie and sends the browser back where it came from.
func (h *SiteHandler) ToggleTheme(c *gin.Context) {
	next := currentTheme(c).Toggle()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(themeCookie, string(next), 365*24*60*60, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, backTarget(c.Request.Referer()))
}

func (h *SiteHandler) Portfolio(c *gin.Context) {
	c.JSON(http.StatusOK, content.Load(h.picker))
}

func Healthz(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}

func currentTheme(c *gin.Context) domain.Theme {
	raw, _ := c.Cookie(themeCookie)
	return domain.ParseTheme(raw)
}

// backTarget keeps only the path of the referer so redirects stay on this host.
func backTarget(referer string) string {
	u, err := url.Parse(referer)
	if err != nil || u.Path == "" || u.Path[0] != '/' {
		return "/"
	}
	// "//host" and "/\host" are read by browsers as another origin.
	if len(u.Path) > 1 && (u.Path[1] == '/' || u.Path[1] == '\\') {
		return "/"
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
