package main

import (
	"context"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/http"
	"strings"

	"github.com/Simplici0/printcost/internal/estimate"
)

const sessionCookieName = "printcost_session"

type sessionKey struct{}

// sessionSigner signs session ids so a browser cannot pick someone else's.
type sessionSigner struct {
	secret []byte
}

// newSessionSigner uses secret, or a random per-process key when it is empty.
func newSessionSigner(secret string) *sessionSigner {
	if secret != "" {
		return &sessionSigner{secret: []byte(secret)}
	}
	key := make([]byte, 32)
	_, _ = rand.Read(key)
	return &sessionSigner{secret: key}
}

func (a *sessionSigner) sign(id string) string {
	payload := base64.RawURLEncoding.EncodeToString([]byte(id))
	mac := hmac.New(sha256.New, a.secret)
	_, _ = mac.Write([]byte(payload))
	signature := hex.EncodeToString(mac.Sum(nil))
	return payload + "." + signature
}

func (a *sessionSigner) verify(value string) (string, bool) {
	payload, signature, ok := strings.Cut(value, ".")
	if !ok || strings.Contains(signature, ".") {
		return "", false
	}

	mac := hmac.New(sha256.New, a.secret)
	_, _ = mac.Write([]byte(payload))
	expected := mac.Sum(nil)

	provided, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}
	if !hmac.Equal(provided, expected) {
		return "", false
	}

	decoded, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil || len(decoded) == 0 {
		return "", false
	}

	return string(decoded), true
}

func (a *sessionSigner) setSessionCookie(w http.ResponseWriter, id string) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    a.sign(id),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// sessionMiddleware attaches the caller's estimate session to the request,
// starting a fresh one when the cookie is missing, forged or expired.
func (s *server) sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sess := s.lookupSession(r)
		if sess == nil {
			var id string
			id, sess = s.sessions.Create()
			s.cookies.setSessionCookie(w, id)
			s.metrics.SetSessions(s.sessions.Len())
			s.log.Debug("session started", "session", id)
		}

		ctx := context.WithValue(r.Context(), sessionKey{}, sess)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (s *server) lookupSession(r *http.Request) *estimate.Session {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		return nil
	}
	id, ok := s.cookies.verify(cookie.Value)
	if !ok {
		return nil
	}
	sess, ok := s.sessions.Lookup(id)
	if !ok {
		return nil
	}
	return sess
}

func sessionFrom(r *http.Request) *estimate.Session {
	sess, _ := r.Context().Value(sessionKey{}).(*estimate.Session)
	return sess
}
