package itemimage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/game-admin-api/internal/domain"
)

// MaxSize is the largest accepted upload.
const MaxSize = 10 << 20

// ObjectStore uploads a blob and returns its public URL.
type ObjectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

// ItemStore reads an item and updates its image URL.
type ItemStore interface {
	Get(ctx context.Context, id int64) (*domain.Item, error)
	SetImageURL(ctx context.Context, id int64, url string) error
}

type Recorder interface {
	Record(ctx context.Context, action, entity, description string)
}

type UploadInput struct {
	ItemID      int64
	Reader      io.Reader
	Filename    string
	ContentType string
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*domain.Item, error)
}

type service struct {
	objects ObjectStore
	items   ItemStore
	audit   Recorder
}

func NewService(objects ObjectStore, items ItemStore, audit Recorder) Service {
	return &service{objects: objects, items: items, audit: audit}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*domain.Item, error) {
	if !strings.HasPrefix(in.ContentType, "image/") {
		return nil, fmt.Errorf("content type %q is not an image: %w", in.ContentType, domain.ErrBadRequest)
	}
	item, err := s.items.Get(ctx, in.ItemID)
	if err != nil {
		return nil, err
	}
	key := fmt.Sprintf("items/%d/%s", in.ItemID, sanitizeFilename(in.Filename))
	url, err := s.objects.Upload(ctx, key, in.Reader, in.ContentType)
	if err != nil {
		return nil, err
	}
	if err := s.items.SetImageURL(ctx, in.ItemID, url); err != nil {
		return nil, err
	}
	item.ImageURL = url
	s.audit.Record(ctx, domain.AuditUpdate, "Item", fmt.Sprintf("Updated image of item: %s", item.ItemVersionName))
	return item, nil
}

func sanitizeFilename(name string) string {
	name = path.Base(name) // drop any leading path components / traversal sequences
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') ||
			(r >= '0' && r <= '9') || r == '.' || r == '-' || r == '_' {
			b.WriteRune(r)
		} else {
			b.WriteRune('_')
		}
	}
	if result := b.String(); result != "" && result != "." {
		return result
	}
	return "_"
}
