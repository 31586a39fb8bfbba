package storage

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	storage_go "github.com/supabase-community/storage-go"
)

type fakeBucket struct {
	uploaded map[string]string
	opts     storage_go.FileOptions
	files    []storage_go.FileObject
	removed  []string
	err      error
	offsets  []int
}

func (f *fakeBucket) UploadFile(bucketId string, relativePath string, data io.Reader, fileOptions ...storage_go.FileOptions) (storage_go.FileUploadResponse, error) {
	if f.err != nil {
		return storage_go.FileUploadResponse{}, f.err
	}
	b, _ := io.ReadAll(data)
	if f.uploaded == nil {
		f.uploaded = map[string]string{}
	}
	f.uploaded[bucketId+"/"+relativePath] = string(b)
	if len(fileOptions) > 0 {
		f.opts = fileOptions[0]
	}
	return storage_go.FileUploadResponse{}, nil
}

func (f *fakeBucket) ListFiles(bucketId string, queryPath string, options storage_go.FileSearchOptions) ([]storage_go.FileObject, error) {
	f.offsets = append(f.offsets, options.Offset)
	if f.err != nil {
		return nil, f.err
	}
	if options.Offset >= len(f.files) {
		return nil, nil
	}
	end := min(options.Offset+options.Limit, len(f.files))
	return f.files[options.Offset:end], nil
}

func (f *fakeBucket) GetPublicUrl(bucketId string, filePath string, urlOptions ...storage_go.UrlOptions) storage_go.SignedUrlResponse {
	return storage_go.SignedUrlResponse{SignedURL: "https://cdn.test/" + bucketId + "/" + filePath}
}

func (f *fakeBucket) RemoveFile(bucketId string, paths []string) ([]storage_go.FileUploadResponse, error) {
	f.removed = append(f.removed, paths...)
	return nil, f.err
}

func TestSupabaseStore_Upload(t *testing.T) {
	fb := &fakeBucket{}
	s := &SupabaseStore{api: fb, bucket: "resumes"}

	err := s.Upload(context.Background(), "u1/cv.pdf", strings.NewReader("pdf"), "application/pdf", true)
	require.NoError(t, err)
	assert.Equal(t, "pdf", fb.uploaded["resumes/u1/cv.pdf"])
	require.NotNil(t, fb.opts.Upsert)
	assert.True(t, *fb.opts.Upsert)
	assert.Equal(t, "3600", *fb.opts.CacheControl)
	assert.Equal(t, "application/pdf", *fb.opts.ContentType)
}

func TestSupabaseStore_UploadError(t *testing.T) {
	s := &SupabaseStore{api: &fakeBucket{err: errors.New("boom")}, bucket: "resumes"}
	err := s.Upload(context.Background(), "u1/cv.pdf", strings.NewReader("pdf"), "application/pdf", true)
	assert.ErrorContains(t, err, "boom")
}

func TestSupabaseStore_UploadCanceled(t *testing.T) {
	fb := &fakeBucket{}
	s := &SupabaseStore{api: fb, bucket: "resumes"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := s.Upload(ctx, "u1/cv.pdf", strings.NewReader("pdf"), "application/pdf", true)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, fb.uploaded)
}

func TestSupabaseStore_List(t *testing.T) {
	fb := &fakeBucket{files: []storage_go.FileObject{
		{Name: "folder"},
		{Id: "1", Name: "a.pdf", CreatedAt: "2024-03-01T10:00:00Z", Metadata: map[string]interface{}{"size": float64(42)}},
		{Id: "2", Name: "b.docx", CreatedAt: "garbage"},
	}}
	s := &SupabaseStore{api: fb, bucket: "resumes"}

	objs, err := s.List(context.Background(), "u1")
	require.NoError(t, err)
	require.Len(t, objs, 2)
	assert.Equal(t, Object{Name: "a.pdf", CreatedAt: time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), Size: 42}, objs[0])
	assert.True(t, objs[1].CreatedAt.IsZero())
	assert.Zero(t, objs[1].Size)
}

func TestSupabaseStore_PublicURLAndRemove(t *testing.T) {
	fb := &fakeBucket{}
	s := &SupabaseStore{api: fb, bucket: "resumes"}

	assert.Equal(t, "https://cdn.test/resumes/u1/a.pdf", s.PublicURL("u1/a.pdf"))
	require.NoError(t, s.Remove(context.Background(), []string{"u1/a.pdf"}))
	assert.Equal(t, []string{"u1/a.pdf"}, fb.removed)
}

func TestSupabaseStore_ListPages(t *testing.T) {
	testCases := []struct {
		name        string
		count       int
		wantOffsets []int
	}{
		{name: "single short page", count: 3, wantOffsets: []int{0}},
		{name: "exact page needs one more call", count: 100, wantOffsets: []int{0, 100}},
		{name: "several pages", count: 250, wantOffsets: []int{0, 100, 200}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			files := make([]storage_go.FileObject, tc.count)
			for i := range files {
				files[i] = storage_go.FileObject{Id: fmt.Sprint(i), Name: fmt.Sprintf("cv-%d.pdf", i)}
			}
			fb := &fakeBucket{files: files}
			s := &SupabaseStore{api: fb, bucket: "resumes"}

			objects, err := s.List(context.Background(), "u1")
			require.NoError(t, err)
			assert.Len(t, objects, tc.count)
			assert.Equal(t, tc.wantOffsets, fb.offsets)
		})
	}
}
