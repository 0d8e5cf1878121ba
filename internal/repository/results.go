package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/riks17/Document-OCR/gen/ent"
	"github.com/riks17/Document-OCR/gen/ent/processingresult"
	"github.com/riks17/Document-OCR/internal/common"
	"github.com/riks17/Document-OCR/internal/entity"
	"github.com/riks17/Document-OCR/internal/utils"
)

// ResultStore persists processing results. Rows are create-once; there is no
// update path. Reads are always scoped by the owning user.
type ResultStore interface {
	Save(ctx context.Context, result *entity.ProcessingResult) (*entity.ProcessingResult, error)
	GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.ProcessingResult, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProcessingResult, error)
}

type resultStore struct {
	client *ent.Client
	logger *slog.Logger
}

func NewResultStore(client *ent.Client, logger *slog.Logger) ResultStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &resultStore{
		client: client,
		logger: logger,
	}
}

func (s *resultStore) Save(ctx context.Context, result *entity.ProcessingResult) (*entity.ProcessingResult, error) {
	fieldsJSON, err := utils.MarshalFields(result.Document)
	if err != nil {
		return nil, err
	}
	errsJSON, err := utils.MarshalPageErrors(result.PageErrors)
	if err != nil {
		return nil, err
	}

	builder := s.client.ProcessingResult.Create().
		SetOwnerID(result.OwnerID).
		SetStatus(string(result.Status)).
		SetFormat(string(result.Format)).
		SetDocumentType(string(result.DocumentType)).
		SetPageCount(result.PageCount).
		SetPagesSucceeded(result.PagesSucceeded).
		SetContentHashHex(result.ContentHashHex)

	if fieldsJSON != nil {
		builder = builder.SetExtractedFields(fieldsJSON)
	}
	if errsJSON != nil {
		builder = builder.SetPageErrors(errsJSON)
	}
	if result.Document != nil {
		builder = builder.
			SetRawText(result.Document.RawText).
			SetOverallConfidence(result.Document.OverallConfidence)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		s.logger.Error("failed to save processing result",
			"owner_id", result.OwnerID, "error", err)
		return nil, fmt.Errorf("%v: %w", err, common.ErrStorageUnavailable)
	}

	s.logger.Info("repository.result.saved",
		"result_id", row.ID, "owner_id", row.OwnerID, "status", row.Status)
	return utils.ToProcessingResult(row)
}

func (s *resultStore) GetByID(ctx context.Context, id, userID uuid.UUID) (*entity.ProcessingResult, error) {
	row, err := s.client.ProcessingResult.Query().
		Where(processingresult.ID(id), processingresult.OwnerID(userID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			// a result owned by another user is indistinguishable from absent
			return nil, fmt.Errorf("result %s: %w", id, common.ErrUnauthorized)
		}
		s.logger.Error("failed to get processing result", "result_id", id, "error", err)
		return nil, fmt.Errorf("%v: %w", err, common.ErrStorageUnavailable)
	}
	return utils.ToProcessingResult(row)
}

func (s *resultStore) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.ProcessingResult, error) {
	rows, err := s.client.ProcessingResult.Query().
		Where(processingresult.OwnerID(userID)).
		Order(processingresult.ByCreatedAt()).
		All(ctx)
	if err != nil {
		s.logger.Error("failed to list processing results", "owner_id", userID, "error", err)
		return nil, fmt.Errorf("%v: %w", err, common.ErrStorageUnavailable)
	}

	out := make([]*entity.ProcessingResult, len(rows))
	for i, row := range rows {
		out[i], err = utils.ToProcessingResult(row)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}
