// internal/interfaces/http/middleware/session.go
package middleware

import (
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
	"github.com/pawtopia/storefront/internal/config"
	"github.com/pawtopia/storefront/internal/pkg/session"
	"github.com/sirupsen/logrus"
)

const (
	// NamespaceKey holds the storage namespace of the browser
	NamespaceKey = "namespace"
	// TabKey holds the page session id within the browser
	TabKey = "tab_id"
	// TabHeader names the page session; browsers without it share "default"
	TabHeader = "X-Tab-ID"

	defaultTab = "default"
)

var tabPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Session resolves the browser namespace from the session cookie, issuing
// a fresh one when the cookie is missing or invalid and renewing it past
// half its lifetime
func Session(cfg *config.Config, tokens *session.Manager, log logrus.FieldLogger) gin.HandlerFunc {
	cookie := cfg.Session.CookieName
	maxAge := int(cfg.Session.TokenTTL.Seconds())
	secure := cfg.IsProduction()

	issue := func(c *gin.Context, namespace string) (string, bool) {
		var (
			token string
			err   error
		)
		if namespace == "" {
			var claims *session.Claims
			token, claims, err = tokens.Issue()
			if err == nil {
				namespace = claims.Namespace
			}
		} else {
			token, _, err = tokens.IssueFor(namespace)
		}
		if err != nil {
			log.WithError(err).Error("Failed to issue session token")
			return "", false
		}
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cookie, token, maxAge, "/", "", secure, true)
		return namespace, true
	}

	return func(c *gin.Context) {
		var namespace string

		raw, err := c.Cookie(cookie)
		if err == nil && raw != "" {
			if claims, err := tokens.Validate(raw); err == nil {
				namespace = claims.Namespace
				if tokens.RenewDue(claims) {
					issue(c, namespace)
				}
			}
		}

		if namespace == "" {
			ns, ok := issue(c, "")
			if !ok {
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Failed to start session",
				})
				c.Abort()
				return
			}
			namespace = ns
		}

		c.Set(NamespaceKey, namespace)
		c.Set(TabKey, tabID(c))
		c.Next()
	}
}

func tabID(c *gin.Context) string {
	for _, candidate := range []string{c.GetHeader(TabHeader), c.Query("tab")} {
		if tabPattern.MatchString(candidate) {
			return candidate
		}
	}
	return defaultTab
}

// GetSessionFromContext returns the namespace and tab set by Session
func GetSessionFromContext(c *gin.Context) (namespace, tab string, ok bool) {
	namespace = c.GetString(NamespaceKey)
	tab = c.GetString(TabKey)
	return namespace, tab, namespace != ""
}
