package services

import (
	"context"
	"io"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/justsurfingit/resume-legend/internal/models"
	"github.com/justsurfingit/resume-legend/internal/storage"
	"go.uber.org/zap"
)

// MaxResumeSize is the largest accepted upload, 5 MiB.
const MaxResumeSize = 5 * 1024 * 1024

var resumeContentTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

//go:generate mockgen -source=./resume_service.go -package=svcmocks -destination=mocks/resume_service.mock.go ResumeService

type ResumeService interface {
	Upload(ctx context.Context, userID, filename string, size int64, r io.Reader) (models.ResumeFile, error)
	// List returns the user's resumes newest first.
	List(ctx context.Context, userID string) ([]models.ResumeFile, error)
	// Current is the most recently uploaded resume.
	Current(ctx context.Context, userID string) (models.ResumeFile, error)
	Delete(ctx context.Context, userID, filename string) error
}

type resumeService struct {
	store  storage.ObjectStore
	logger *zap.Logger
	now    func() time.Time
}

func NewResumeService(store storage.ObjectStore, logger *zap.Logger) ResumeService {
	return &resumeService{store: store, logger: logger, now: time.Now}
}

func (s *resumeService) Upload(ctx context.Context, userID, filename string, size int64, r io.Reader) (models.ResumeFile, error) {
	if err := checkResumeName(filename); err != nil {
		return models.ResumeFile{}, err
	}
	if size <= 0 {
		return models.ResumeFile{}, errs.Validation("file is empty")
	}
	if size > MaxResumeSize {
		return models.ResumeFile{}, errs.Validation("file size must be less than 5MB")
	}

	key := objectKey(userID, filename)
	// Cap the read at the declared size so a lying client cannot push more.
	err := s.store.Upload(ctx, key, io.LimitReader(r, size), resumeContentTypes[extension(filename)], true)
	if err != nil {
		s.logger.Error("resume upload failed", zap.String("user_id", userID), zap.String("file", filename), zap.Error(err))
		return models.ResumeFile{}, errs.Backend("failed to upload resume", err)
	}
	s.logger.Info("resume uploaded", zap.String("user_id", userID), zap.String("file", filename), zap.Int64("size", size))

	return models.ResumeFile{
		Name:       filename,
		URL:        s.store.PublicURL(key),
		UploadedAt: s.now().UTC(),
		Size:       size,
	}, nil
}

func (s *resumeService) List(ctx context.Context, userID string) ([]models.ResumeFile, error) {
	objects, err := s.store.List(ctx, userID)
	if err != nil {
		s.logger.Error("resume listing failed", zap.String("user_id", userID), zap.Error(err))
		return nil, errs.Backend("failed to fetch resumes", err)
	}

	files := slice.FilterMap(objects, func(idx int, src storage.Object) (models.ResumeFile, bool) {
		if _, ok := resumeContentTypes[extension(src.Name)]; !ok {
			return models.ResumeFile{}, false
		}
		return models.ResumeFile{
			Name:       src.Name,
			URL:        s.store.PublicURL(objectKey(userID, src.Name)),
			UploadedAt: src.CreatedAt,
			Size:       src.Size,
		}, true
	})
	sort.SliceStable(files, func(i, j int) bool {
		return files[i].UploadedAt.After(files[j].UploadedAt)
	})
	return files, nil
}

func (s *resumeService) Current(ctx context.Context, userID string) (models.ResumeFile, error) {
	files, err := s.List(ctx, userID)
	if err != nil {
		return models.ResumeFile{}, err
	}
	if len(files) == 0 {
		return models.ResumeFile{}, errs.NotFound("resume")
	}
	return files[0], nil
}

func (s *resumeService) Delete(ctx context.Context, userID, filename string) error {
	if err := checkResumeName(filename); err != nil {
		return err
	}
	if err := s.store.Remove(ctx, []string{objectKey(userID, filename)}); err != nil {
		s.logger.Error("resume delete failed", zap.String("user_id", userID), zap.String("file", filename), zap.Error(err))
		return errs.Backend("failed to delete resume", err)
	}
	return nil
}

func checkResumeName(filename string) error {
	if strings.TrimSpace(filename) == "" {
		return errs.Validation("file name is required")
	}
	if strings.ContainsAny(filename, `/\`) || filename == "." || filename == ".." {
		return errs.Validation("file name must not contain a path")
	}
	if _, ok := resumeContentTypes[extension(filename)]; !ok {
		return errs.Validation("please upload a PDF or DOCX file")
	}
	return nil
}

// extension is the lower-cased text after the last dot, or "" without one.
func extension(filename string) string {
	i := strings.LastIndex(filename, ".")
	if i < 0 {
		return ""
	}
	return strings.ToLower(filename[i+1:])
}

func objectKey(userID, filename string) string {
	return path.Join(userID, filename)
}

// ExportFilename names the downloadable text file for an improved resume.
func ExportFilename(original string) string {
	base, _, _ := strings.Cut(original, ".")
	if base == "" {
		base = "resume"
	}
	return base + "-improved.txt"
}
