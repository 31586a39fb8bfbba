package services

import (
	"github.com/justsurfingit/resume-legend/internal/errs"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// backendErr passes classified errors through untouched and logs and wraps
// everything else as a backend failure.
func backendErr(logger *zap.Logger, msg string, err error, fields ...zap.Field) error {
	var appErr *errs.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	logger.Error(msg, append(fields, zap.Error(err))...)
	return errs.Backend(msg, err)
}
