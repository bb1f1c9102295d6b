package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"flashlight-portfolio/internal/app"
	"flashlight-portfolio/internal/content"
	"flashlight-portfolio/internal/infra/memory"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type firstColor struct{}

func (firstColor) Intn(int) int { return 0 }

func newSiteRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	loader := memory.NewStaticBankLoader(content.Banks())
	service := app.NewGameService(memory.NewSessionStore(), memory.NewQuestionRepository(loader, 0),
		app.ServiceConfig{BankID: content.DefaultBankID}, nil)
	return NewRouter(NewSiteHandler(firstColor{}), NewWSHandler(service, nil), "", nil)
}

func TestIndexRendersPortfolio(t *testing.T) {
	r := newSiteRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	require.Contains(t, body, "Software Engineer")
	require.Contains(t, body, "Featured Projects")
	require.Contains(t, body, "Hanel Asia Indonesia")
	require.Contains(t, body, `property="og:title"`)
	require.Contains(t, body, `class="light"`)
}

func TestIndexHonorsThemeCookie(t *testing.T) {
	r := newSiteRouter()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `class="dark"`)
}

func TestToggleThemeSetsCookieAndRedirects(t *testing.T) {
	r := newSiteRouter()
	req := httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.Header.Set("Referer", "http://evil.example/games/flashlight?x=1")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	require.Equal(t, "/games/flashlight?x=1", w.Header().Get("Location"))
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	require.Equal(t, "theme", cookies[0].Name)
	require.Equal(t, "dark", cookies[0].Value)

	req = httptest.NewRequest(http.MethodPost, "/theme", nil)
	req.AddCookie(&http.Cookie{Name: "theme", Value: "dark"})
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, "/", w.Header().Get("Location"))
	require.Equal(t, "light", w.Result().Cookies()[0].Value)

	for _, referer := range []string{
		"https://evil.example//evil.example/x",
		"https://evil.example/%5Cevil.example/x",
		"javascript:alert(1)",
	} {
		req = httptest.NewRequest(http.MethodPost, "/theme", nil)
		req.Header.Set("Referer", referer)
		w = httptest.NewRecorder()
		r.ServeHTTP(w, req)
		require.Equal(t, "/", w.Header().Get("Location"), referer)
	}
}

func TestBackTargetStaysOnHost(t *testing.T) {
	require.Equal(t, "/", backTarget("https://evil.example//evil.example/x"))
	require.Equal(t, "/", backTarget(`https://evil.example/\evil.example`))
	require.Equal(t, "/", backTarget(""))
	require.Equal(t, "/a//b", backTarget("http://localhost/a//b"))
	require.Equal(t, "/games/flashlight?x=1", backTarget("/games/flashlight?x=1"))
}

func TestPortfolioAPI(t *testing.T) {
	r := newSiteRouter()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/portfolio", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var got content.Portfolio
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Equal(t, "Azim", got.Profile.Name)
	require.Len(t, got.Badges, 16)
	require.Equal(t, content.BadgeColors[0], got.Badges[5].Color)
	require.Equal(t, content.TechStack(), got.TechStack)
}

func TestGamePageAndHealthz(t *testing.T) {
	r := newSiteRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/games/flashlight", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, strings.Contains(w.Body.String(), "/ws/flashlight"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "ok", w.Body.String())
}
