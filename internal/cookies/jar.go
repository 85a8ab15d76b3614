// Package cookies provides a persistent http.CookieJar. The browser gives a
// web client durable ambient cookies for free; this jar gives the CLI the
// same property by mirroring server-set cookies into a local SQLite
// database, so a session survives process restarts and bootstrap can find
// it. Only server-set cookies are stored, never credentials.
package cookies

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"finview/internal/logging"
)

// persistTimeout bounds the store writes triggered from SetCookies, which
// has no context parameter of its own.
const persistTimeout = 3 * time.Second

// storedCookie is the serialized form of one cookie. Session cookies
// (Expires zero) are persisted too; the server decides their validity.
type storedCookie struct {
	Name     string    `json:"name"`
	Value    string    `json:"value"`
	Path     string    `json:"path,omitempty"`
	Domain   string    `json:"domain,omitempty"`
	Expires  time.Time `json:"expires,omitempty"`
	Secure   bool      `json:"secure,omitempty"`
	HTTPOnly bool      `json:"http_only,omitempty"`
}

// Jar implements http.CookieJar. In-memory matching is delegated to the
// standard cookiejar; every accepted set is mirrored to the Store.
type Jar struct {
	store Store
	log   logging.Logger

	mu    sync.Mutex
	inner *cookiejar.Jar
}

// NewJar builds a jar and loads previously persisted cookies into it.
func NewJar(ctx context.Context, store Store, log logging.Logger) (*Jar, error) {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	j := &Jar{store: store, log: log.With("component", "cookies"), inner: inner}

	persisted, err := store.List(ctx)
	if err != nil {
		return nil, err
	}
	for origin, data := range persisted {
		u, err := url.Parse(origin)
		if err != nil {
			j.log.Warn(ctx, "dropping cookies for unparseable origin", "origin", origin)
			continue
		}
		var stored []storedCookie
		if err := json.Unmarshal(data, &stored); err != nil {
			j.log.Warn(ctx, "dropping undecodable cookies", "origin", origin)
			continue
		}
		cookies := make([]*http.Cookie, 0, len(stored))
		for _, sc := range stored {
			if !sc.Expires.IsZero() && sc.Expires.Before(time.Now()) {
				continue
			}
			cookies = append(cookies, &http.Cookie{
				Name:     sc.Name,
				Value:    sc.Value,
				Path:     sc.Path,
				Domain:   sc.Domain,
				Expires:  sc.Expires,
				Secure:   sc.Secure,
				HttpOnly: sc.HTTPOnly,
			})
		}
		j.inner.SetCookies(u, cookies)
	}
	return j, nil
}

// SetCookies stores the cookies in memory and mirrors the origin's current
// cookie set to disk. Persistence failures are logged, not returned:
// http.Client has no channel for jar errors and a working in-memory session
// beats a failed request.
func (j *Jar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.mu.Lock()
	j.inner.SetCookies(u, cookies)
	j.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	origin := originOf(u)
	merged := j.mergeForPersist(ctx, origin, cookies)
	data, err := json.Marshal(merged)
	if err != nil {
		j.log.Error(ctx, "failed to serialize cookies", "origin", origin, "error", err)
		return
	}
	if err := j.store.Set(ctx, origin, data); err != nil {
		j.log.Error(ctx, "failed to persist cookies", "origin", origin, "error", err)
	}
}

// Cookies returns the cookies to send with a request to u.
func (j *Jar) Cookies(u *url.URL) []*http.Cookie {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.inner.Cookies(u)
}

// Clear wipes both the in-memory jar and the persisted rows. Used on
// logout so a later process cannot resurrect the dropped session.
func (j *Jar) Clear(ctx context.Context) error {
	inner, err := cookiejar.New(nil)
	if err != nil {
		return err
	}
	j.mu.Lock()
	j.inner = inner
	j.mu.Unlock()
	return j.store.Clear(ctx)
}

// mergeForPersist overlays the newly set cookies onto the origin's stored
// set, honoring deletions (MaxAge<0 or a past Expires).
func (j *Jar) mergeForPersist(ctx context.Context, origin string, cookies []*http.Cookie) []storedCookie {
	byName := make(map[string]storedCookie)
	if data, err := j.store.Get(ctx, origin); err == nil && data != nil {
		var existing []storedCookie
		if json.Unmarshal(data, &existing) == nil {
			for _, sc := range existing {
				byName[sc.Name] = sc
			}
		}
	}

	for _, c := range cookies {
		expired := c.MaxAge < 0 || (!c.Expires.IsZero() && c.Expires.Before(time.Now()))
		if expired {
			delete(byName, c.Name)
			continue
		}
		expires := c.Expires
		if c.MaxAge > 0 {
			expires = time.Now().Add(time.Duration(c.MaxAge) * time.Second)
		}
		byName[c.Name] = storedCookie{
			Name:     c.Name,
			Value:    c.Value,
			Path:     c.Path,
			Domain:   c.Domain,
			Expires:  expires,
			Secure:   c.Secure,
			HTTPOnly: c.HttpOnly,
		}
	}

	merged := make([]storedCookie, 0, len(byName))
	for _, sc := range byName {
		merged = append(merged, sc)
	}
	return merged
}

func originOf(u *url.URL) string {
	return u.Scheme + "://" + u.Host
}
