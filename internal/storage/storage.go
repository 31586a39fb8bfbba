// Package storage keeps resume files in a Supabase storage bucket.
package storage

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"
	storage_go "github.com/supabase-community/storage-go"
	"github.com/supabase-community/supabase-go"
)

//go:generate mockgen -source=./storage.go -package=mocks -destination=mocks/storage.mock.go ObjectStore

// Object is one stored file as reported by the bucket listing.
type Object struct {
	Name      string
	CreatedAt time.Time
	Size      int64
}

type ObjectStore interface {
	Upload(ctx context.Context, path string, r io.Reader, contentType string, upsert bool) error
	// List returns the objects directly under prefix, newest first.
	List(ctx context.Context, prefix string) ([]Object, error)
	PublicURL(path string) string
	Remove(ctx context.Context, paths []string) error
}

// bucketAPI is the part of the storage-go client this package calls.
type bucketAPI interface {
	UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage_go.FileOptions) (storage_go.FileUploadResponse, error)
	ListFiles(bucketId string, queryPath string, options storage_go.FileSearchOptions) ([]storage_go.FileObject, error)
	GetPublicUrl(bucketId string, filePath string, urlOptions ...storage_go.UrlOptions) storage_go.SignedUrlResponse
	RemoveFile(bucketId string, paths []string) ([]storage_go.FileUploadResponse, error)
}

const (
	cacheControl = "3600"
	listPageSize = 100
)

type SupabaseStore struct {
	api    bucketAPI
	bucket string
}

func NewSupabaseStore(client *supabase.Client, bucket string) *SupabaseStore {
	return &SupabaseStore{api: client.Storage, bucket: bucket}
}

func (s *SupabaseStore) Upload(ctx context.Context, path string, r io.Reader, contentType string, upsert bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	cc := cacheControl
	_, err := s.api.UploadFile(s.bucket, path, r, storage_go.FileOptions{
		CacheControl: &cc,
		ContentType:  &contentType,
		Upsert:       &upsert,
	})
	return errors.Wrapf(err, "upload %s", path)
}

// List pages through the bucket listing until a short page comes back.
func (s *SupabaseStore) List(ctx context.Context, prefix string) ([]Object, error) {
	var objects []Object
	for offset := 0; ; offset += listPageSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		files, err := s.api.ListFiles(s.bucket, prefix, storage_go.FileSearchOptions{
			Limit:         listPageSize,
			Offset:        offset,
			SortByOptions: storage_go.SortBy{Column: "created_at", Order: "desc"},
		})
		if err != nil {
			return nil, errors.Wrapf(err, "list %s", prefix)
		}
		for _, f := range files {
			// Folders come back as entries without an id.
			if f.Id == "" {
				continue
			}
			created, _ := time.Parse(time.RFC3339, f.CreatedAt)
			objects = append(objects, Object{
				Name:      f.Name,
				CreatedAt: created,
				Size:      metadataSize(f.Metadata),
			})
		}
		if len(files) < listPageSize {
			return objects, nil
		}
	}
}

func (s *SupabaseStore) PublicURL(path string) string {
	return s.api.GetPublicUrl(s.bucket, path).SignedURL
}

func (s *SupabaseStore) Remove(ctx context.Context, paths []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := s.api.RemoveFile(s.bucket, paths)
	return errors.Wrap(err, "remove objects")
}

func metadataSize(meta interface{}) int64 {
	m, ok := meta.(map[string]interface{})
	if !ok {
		return 0
	}
	switch v := m["size"].(type) {
	case float64:
		return int64(v)
	case int64:
		return v
	case int:
		return int64(v)
	}
	return 0
}
