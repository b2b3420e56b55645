package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/Jhanky/Energy4Cero-sub001/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// windowCounter tracks request counts per IP within a sliding window.
type windowCounter struct {
	count     int
	windowEnd time.Time
	mu        sync.Mutex
}

type ipLimiter struct {
	entries map[string]*windowCounter
	mu      sync.Mutex
	limit   int
	window  time.Duration
}

func newIPLimiter(limit int, window time.Duration) *ipLimiter {
	return &ipLimiter{
		entries: make(map[string]*windowCounter),
		limit:   limit,
		window:  window,
	}
}

func (l *ipLimiter) allow(ip string) (bool, time.Time) {
	l.mu.Lock()
	entry, ok := l.entries[ip]
	if !ok {
		entry = &windowCounter{}
		l.entries[ip] = entry
	}
	l.mu.Unlock()

	entry.mu.Lock()
	defer entry.mu.Unlock()

	now := time.Now()
	if now.After(entry.windowEnd) {
		entry.count = 0
		entry.windowEnd = now.Add(l.window)
	}
	entry.count++
	return entry.count <= l.limit, entry.windowEnd
}

// purge drops expired entries so IPs that never return don't accumulate.
func (l *ipLimiter) purge() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := time.Now()
	purged := 0
	for ip, entry := range l.entries {
		entry.mu.Lock()
		if now.After(entry.windowEnd) {
			delete(l.entries, ip)
			purged++
		}
		entry.mu.Unlock()
	}
	return purged
}

var (
	loginLimiter = newIPLimiter(20, time.Minute)
	apiLimiter   *ipLimiter
	apiLimiterMu sync.Mutex
)

// LoginRateLimiter limits login attempts to 20 per minute per IP.
func LoginRateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		if ok, _ := loginLimiter.allow(c.ClientIP()); !ok {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many login attempts. Try again in a minute."))
			return
		}
		c.Next()
	}
}

// RateLimiter returns the general sliding-window limiter for the whole API.
func RateLimiter(limit int, window time.Duration) gin.HandlerFunc {
	apiLimiterMu.Lock()
	if apiLimiter == nil {
		apiLimiter = newIPLimiter(limit, window)
	}
	apiLimiterMu.Unlock()

	return func(c *gin.Context) {
		ok, windowEnd := apiLimiter.allow(c.ClientIP())
		if !ok {
			c.Header("Retry-After", windowEnd.Format(time.RFC1123))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, apierror.New("Too many requests. Try again shortly."))
			return
		}
		c.Next()
	}
}

const purgeInterval = 5 * time.Minute

func init() {
	go func() {
		ticker := time.NewTicker(purgeInterval)
		defer ticker.Stop()
		for range ticker.C {
			purgedLogin := loginLimiter.purge()
			purgedAPI := 0
			apiLimiterMu.Lock()
			if apiLimiter != nil {
				purgedAPI = apiLimiter.purge()
			}
			apiLimiterMu.Unlock()
			if purgedLogin > 0 || purgedAPI > 0 {
				log.Debug().
					Int("login_entries_purged", purgedLogin).
					Int("api_entries_purged", purgedAPI).
					Msg("rate limiter maps purged")
			}
		}
	}()
}
