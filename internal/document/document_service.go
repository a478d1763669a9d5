package document

import (
	"context"
	"time"

	documenterrors "leaveflow/internal/document/errors"
	"leaveflow/internal/shared/apperror"

	"go.uber.org/zap"
)

//go:generate mockgen -source=document_service.go -destination=mock/document_service_mock.go -package=mock
type Service interface {
	GenerateLeavePdf(ctx context.Context, req GenerateLeavePdfRequest) ([]byte, error)
}

type service struct {
	logger *zap.Logger
}

func NewService(logger ...*zap.Logger) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{logger: l}
}

func (s *service) GenerateLeavePdf(ctx context.Context, req GenerateLeavePdfRequest) ([]byte, error) {
	pdf, err := buildLeaveApplicationPDF(req, time.Now())
	if err != nil {
		s.logger.Error("render leave application pdf failed", zap.Error(err))
		return nil, apperror.Wrap(err, documenterrors.ErrRenderFailed.Code, documenterrors.ErrRenderFailed.Message, documenterrors.ErrRenderFailed.HTTPStatus)
	}

	s.logger.Info("leave application pdf generated",
		zap.Int("size_bytes", len(pdf)),
	)
	return pdf, nil
}
