package web_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srinix/gamehub/internal/factory"
	"github.com/srinix/gamehub/internal/web"
	"github.com/srinix/gamehub/internal/web/games"
)

// webTestServer provides a test server for web interface testing
type webTestServer struct {
	t       *testing.T
	handler http.Handler
	app     *factory.App
	cookies *cookieJar
}

// newWebTestServer creates a new test server with all dependencies wired
func newWebTestServer(t *testing.T) *webTestServer {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	app, err := factory.New(factory.Config{})
	require.NoError(t, err)

	router := web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AuthService:    app.AuthService,
		LedgerService:  app.LedgerService,
		ContactService: app.ContactService,
		StaticDir:      "", // No static files in tests
	})

	return &webTestServer{
		t:       t,
		handler: router,
		app:     app,
		cookies: newCookieJar(),
	}
}

// request makes an HTTP request and returns the response
func (ts *webTestServer) request(method, path string, body io.Reader, contentType string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	// Add cookies from jar
	ts.cookies.addTo(req)

	rr := httptest.NewRecorder()
	ts.handler.ServeHTTP(rr, req)

	// Extract Set-Cookie headers into jar
	ts.cookies.extract(rr)

	return rr
}

// get makes a GET request
func (ts *webTestServer) get(path string) *httptest.ResponseRecorder {
	return ts.request(http.MethodGet, path, nil, "")
}

// postJSON makes a POST request with a JSON body
func (ts *webTestServer) postJSON(path string, body any) *httptest.ResponseRecorder {
	b, err := json.Marshal(body)
	require.NoError(ts.t, err)
	return ts.request(http.MethodPost, path, bytes.NewReader(b), "application/json")
}

// loginAs registers and logs in a user directly via the auth service
// and sets up the session cookie for subsequent requests
func (ts *webTestServer) loginAs(username, password string) {
	ts.t.Helper()

	_, err := ts.app.AuthService.Register(context.Background(), username, password)
	require.NoError(ts.t, err)
	session, err := ts.app.AuthService.Login(context.Background(), username, password)
	require.NoError(ts.t, err)

	ts.cookies.cookies["session"] = &http.Cookie{
		Name:  "session",
		Value: session.Token,
	}
}

// parseHTML parses the response body as HTML
func parseHTML(r io.Reader) *goquery.Document {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		panic(err)
	}
	return doc
}

// cookieJar maintains cookies across requests (like a browser would)
type cookieJar struct {
	cookies map[string]*http.Cookie
}

func newCookieJar() *cookieJar {
	return &cookieJar{
		cookies: make(map[string]*http.Cookie),
	}
}

// addTo adds all cookies to the request
func (j *cookieJar) addTo(req *http.Request) {
	for _, cookie := range j.cookies {
		req.AddCookie(cookie)
	}
}

// extract extracts Set-Cookie headers from response
func (j *cookieJar) extract(rr *httptest.ResponseRecorder) {
	for _, cookie := range rr.Result().Cookies() {
		if cookie.MaxAge < 0 {
			// Cookie being deleted
			delete(j.cookies, cookie.Name)
		} else {
			j.cookies[cookie.Name] = cookie
		}
	}
}

// hasSession returns true if the session cookie is set
func (j *cookieJar) hasSession() bool {
	_, ok := j.cookies["session"]
	return ok
}

// Home page tests

func TestHomePageAnonymousShowsAuthForms(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	assert.Equal(t, 1, doc.Find("#login-form").Length())
	assert.Equal(t, 1, doc.Find("#register-form").Length())
	assert.Equal(t, 0, doc.Find(".game-grid").Length())
}

func TestHomePageLoggedInListsCatalog(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "secret123")

	rr := ts.get("/")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	links := doc.Find(".game-grid a")
	assert.Equal(t, len(games.Catalog), links.Length())

	// Spot check one entry
	href, _ := links.First().Attr("href")
	assert.Equal(t, "/"+games.Catalog[0].Slug, href)
}

func TestHomePageShowsUsernameInNav(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "secret123")

	rr := ts.get("/")
	doc := parseHTML(rr.Body)
	assert.Contains(t, doc.Find(".nav-links").Text(), "alice")
}

// Static page tests

func TestStaticPagesRender(t *testing.T) {
	ts := newWebTestServer(t)

	for _, path := range []string{"/about", "/privacy", "/terms", "/contact"} {
		rr := ts.get(path)
		assert.Equal(t, http.StatusOK, rr.Code, "expected %s to render", path)
	}
}

// Game page tests

func TestGamePageRendersForLoggedInUser(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "secret123")

	rr := ts.get("/snake")
	require.Equal(t, http.StatusOK, rr.Code)

	doc := parseHTML(rr.Body)
	title, found := doc.Find("#game-root").Attr("data-game-title")
	require.True(t, found)
	assert.Equal(t, "Snake", title)
}

func TestUnknownGameSlugIs404(t *testing.T) {
	ts := newWebTestServer(t)
	ts.loginAs("alice", "secret123")

	rr := ts.get("/not-a-game")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

// Contact form tests

func TestContactSubmit(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postJSON("/contact", map[string]string{
		"name":    "Alice",
		"email":   "alice@example.com",
		"subject": "Hello",
		"message": "Nice games",
	})

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "received")
}

func TestContactSubmitMissingFields(t *testing.T) {
	ts := newWebTestServer(t)

	rr := ts.postJSON("/contact", map[string]string{"name": "Alice"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
