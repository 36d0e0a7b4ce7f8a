// Package document signs download links for the files attached to lot alerts
// (supplier certificates, recall letters, lab results).
package document

import (
	"context"
	"fmt"
	"time"

	"github.com/fekuna/brewops-lot-service/internal/model"
)

const (
	DriverMemory = "memory"
	DriverS3     = "s3"
)

type Store interface {
	PresignURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type SignedDocument struct {
	Name        string `json:"name"`
	ContentType string `json:"content_type,omitempty"`
	URL         string `json:"url"`
}

type Signer struct {
	store  Store
	expiry time.Duration
}

func NewSigner(store Store, expiry time.Duration) *Signer {
	if expiry <= 0 {
		expiry = 15 * time.Minute
	}
	return &Signer{store: store, expiry: expiry}
}

// Sign returns one link per document, in order. A nil Signer yields no links.
func (s *Signer) Sign(ctx context.Context, docs []model.AlertDocument) ([]SignedDocument, error) {
	out := make([]SignedDocument, 0, len(docs))
	if s == nil || s.store == nil {
		return out, nil
	}
	for _, d := range docs {
		url, err := s.store.PresignURL(ctx, d.StorageKey, s.expiry)
		if err != nil {
			return nil, fmt.Errorf("sign document %s: %w", d.StorageKey, err)
		}
		out = append(out, SignedDocument{Name: d.Name, ContentType: d.ContentType, URL: url})
	}
	return out, nil
}
