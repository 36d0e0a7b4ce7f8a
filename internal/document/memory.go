package document

import (
	"context"
	"net/url"
	"strconv"
	"time"
)

// MemoryStore builds deterministic local links; it never talks to a backend.
type MemoryStore struct {
	BaseURL string
	nowFn   func() time.Time
}

func NewMemoryStore(baseURL string) *MemoryStore {
	if baseURL == "" {
		baseURL = "memory://documents"
	}
	return &MemoryStore{BaseURL: baseURL, nowFn: time.Now}
}

func (m *MemoryStore) PresignURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	q := url.Values{}
	q.Set("expires", strconv.FormatInt(m.nowFn().Add(expiry).Unix(), 10))
	return m.BaseURL + "/" + url.PathEscape(key) + "?" + q.Encode(), nil
}
