package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/oksasatya/student-planner-api/pkg/helpers"
)

func init() { gin.SetMode(gin.TestMode) }

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRealIPHeaderOrder(t *testing.T) {
	cases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "203.0.113.9", "X-Real-IP": "198.51.100.1"}, "203.0.113.9"},
		{"x-real-ip", map[string]string{"X-Real-IP": "198.51.100.1"}, "198.51.100.1"},
		{"left-most forwarded", map[string]string{"X-Forwarded-For": "192.0.2.4, 10.0.0.1"}, "192.0.2.4"},
		{"garbage ignored", map[string]string{"X-Real-IP": "not-an-ip", "X-Forwarded-For": "192.0.2.7"}, "192.0.2.7"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var got string
			r := gin.New()
			r.Use(RealIP())
			r.GET("/", func(c *gin.Context) { got = c.GetString("real_ip") })
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			serve(r, req)
			if got != tc.want {
				t.Fatalf("real_ip = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) { c.String(http.StatusOK, c.GetString("request_id")) })

	incoming := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	if w := serve(r, req); w.Header().Get(RequestIDHeader) != incoming || w.Body.String() != incoming {
		t.Fatalf("incoming id not reused: %q", w.Header().Get(RequestIDHeader))
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "<script>")
	w := serve(r, req)
	if _, err := uuid.Parse(w.Header().Get(RequestIDHeader)); err != nil {
		t.Fatalf("minted id %q is not a uuid", w.Header().Get(RequestIDHeader))
	}
}

func TestAuthWithoutSessionStore(t *testing.T) {
	jwt := helpers.NewJWTManager("a", "r", time.Minute, time.Hour)
	r := gin.New()
	r.GET("/", Auth(nil, jwt), func(c *gin.Context) { c.String(http.StatusOK, UserID(c)) })

	access, _, err := jwt.GenerateAccessToken("user-1", "sid-1")
	if err != nil {
		t.Fatal(err)
	}
	refresh, _, _ := jwt.GenerateRefreshToken("user-1", "sid-1")

	cases := []struct {
		name   string
		setup  func(*http.Request)
		status int
	}{
		{"no token", func(*http.Request) {}, http.StatusUnauthorized},
		{"bearer", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+access) }, http.StatusOK},
		{"cookie", func(r *http.Request) { r.AddCookie(&http.Cookie{Name: "access_token", Value: access}) }, http.StatusOK},
		{"wrong scheme", func(r *http.Request) { r.Header.Set("Authorization", "Basic "+access) }, http.StatusUnauthorized},
		{"refresh token", func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+refresh) }, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tc.setup(req)
			w := serve(r, req)
			if w.Code != tc.status {
				t.Fatalf("status %d, want %d", w.Code, tc.status)
			}
			if tc.status == http.StatusOK && w.Body.String() != "user-1" {
				t.Fatalf("user id %q", w.Body.String())
			}
		})
	}
}

func TestRateLimitFailsOpenWithoutRedis(t *testing.T) {
	r := gin.New()
	r.GET("/", RateLimit(nil, 1, time.Minute, KeyByIP(), nil), func(c *gin.Context) { c.Status(http.StatusNoContent) })
	for i := 0; i < 3; i++ {
		if w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil)); w.Code != http.StatusNoContent {
			t.Fatalf("request %d: status %d", i, w.Code)
		}
	}
}

func TestKeyByUserID(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Set("real_ip", "192.0.2.1")
	if got := KeyByUserID()(c); got != "rl:user:anon:ip:192.0.2.1" {
		t.Fatalf("anon key %q", got)
	}
	c.Set(CtxUserIDKey, "u1")
	if got := KeyByUserID()(c); got != "rl:user:u1" {
		t.Fatalf("user key %q", got)
	}
}
