package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/officeorder-backend/internal/platform/ctxutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/session"
)

func newSessionRouter(t *testing.T) (*gin.Engine, *session.Codec, *session.MemoryStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	codec, err := session.NewCodec("0123456789abcdef0123456789abcdef", time.Hour)
	require.NoError(t, err)
	store := session.NewMemoryStore(time.Hour)
	m := NewSessionMiddleware(logger.NewNop(), codec, store, false)

	r := gin.New()
	r.Use(m.Attach())
	r.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, ctxutil.SessionID(c.Request.Context()))
	})
	r.GET("/draft", m.RequireDraft(), func(c *gin.Context) {
		d, ok := DraftFrom(c)
		require.True(t, ok)
		c.String(http.StatusOK, d.Content)
	})
	return r, codec, store
}

func sessionCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == SessionCookie {
			return c
		}
	}
	return nil
}

func TestAttachIssuesAndReusesSession(t *testing.T) {
	r, _, _ := newSessionRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.True(t, cookie.HttpOnly)
	// Lax keeps the cookie off cross-site POSTs to /generate.
	require.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	first := rec.Body.String()
	require.NotEmpty(t, first)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, first, rec.Body.String())
	require.Nil(t, sessionCookie(rec), "a valid cookie is not reissued")
}

func TestAttachReplacesTamperedCookie(t *testing.T) {
	r, _, _ := newSessionRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, sessionCookie(rec))
	require.NotEmpty(t, rec.Body.String())
}

func TestRequireDraft(t *testing.T) {
	r, codec, store := newSessionRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/draft", nil))
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, MissingDraftLocation, rec.Header().Get("Location"))

	id := session.NewID()
	token, err := codec.Issue(id)
	require.NoError(t, err)
	require.NoError(t, store.Put(context.Background(), id, session.Draft{Content: "body text"}))

	req := httptest.NewRequest(http.MethodGet, "/draft", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookie, Value: token})
	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body text", rec.Body.String())
}
