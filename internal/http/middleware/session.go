package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yungbote/officeorder-backend/internal/platform/ctxutil"
	"github.com/yungbote/officeorder-backend/internal/platform/logger"
	"github.com/yungbote/officeorder-backend/internal/session"
)

const (
	SessionCookie = "officeorder_session"
	// MissingDraftLocation is where downloads without a draft are sent.
	MissingDraftLocation = "/?error=missing_draft"

	draftKey = "office_order_draft"
)

type SessionMiddleware struct {
	log    *logger.Logger
	codec  *session.Codec
	store  session.Store
	secure bool
}

func NewSessionMiddleware(log *logger.Logger, codec *session.Codec, store session.Store, secure bool) *SessionMiddleware {
	return &SessionMiddleware{
		log:    log.With("Middleware", "SessionMiddleware"),
		codec:  codec,
		store:  store,
		secure: secure,
	}
}

// Attach resolves the browser session from its signed cookie. A missing,
// expired or tampered cookie starts a fresh session.
func (m *SessionMiddleware) Attach() gin.HandlerFunc {
	return func(c *gin.Context) {
		var id string
		if raw, err := c.Cookie(SessionCookie); err == nil && raw != "" {
			parsed, perr := m.codec.Parse(raw)
			if perr != nil {
				m.log.Debug("session cookie rejected", "error", perr)
			}
			id = parsed
		}
		if id == "" {
			id = session.NewID()
			token, err := m.codec.Issue(id)
			if err != nil {
				m.log.Error("session cookie issue failed", "error", err)
				c.AbortWithStatus(http.StatusInternalServerError)
				return
			}
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(SessionCookie, token, int(m.codec.TTL().Seconds()), "/", "", m.secure, true)
		}
		c.Request = c.Request.WithContext(ctxutil.WithSessionID(c.Request.Context(), id))
		c.Next()
	}
}

// RequireDraft loads the session's draft once; handlers behind it read it
// with DraftFrom. Without a draft the browser is sent back to the form.
func (m *SessionMiddleware) RequireDraft() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		d, err := m.store.Get(ctx, ctxutil.SessionID(ctx))
		if errors.Is(err, session.ErrMissing) {
			c.Redirect(http.StatusSeeOther, MissingDraftLocation)
			c.Abort()
			return
		}
		if err != nil {
			m.log.Error("draft lookup failed", "session_id", ctxutil.SessionID(ctx), "error", err)
			_ = c.Error(err)
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.Set(draftKey, d)
		c.Next()
	}
}

func DraftFrom(c *gin.Context) (session.Draft, bool) {
	v, ok := c.Get(draftKey)
	if !ok {
		return session.Draft{}, false
	}
	d, ok := v.(session.Draft)
	return d, ok
}
