package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/diewo77/invoice-studio/i18n"
	"github.com/diewo77/invoice-studio/internal/models"
	"github.com/diewo77/invoice-studio/internal/notify"
	"github.com/diewo77/invoice-studio/internal/pdf"
	"github.com/diewo77/invoice-studio/internal/render"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrExportFailed = errors.New("invoice export failed")

// ExportResult is a finished export: the PDF bytes plus its journal entry.
type ExportResult struct {
	Export models.Export
	Data   []byte
}

// ExportService renders the session invoice to PDF, writes the artifact and
// journals the attempt. A failed export never touches the ledger.
type ExportService struct {
	db        *gorm.DB
	session   *Session
	notifier  *notify.Center
	outputDir string
	newRef    func() string
}

// NewExportService wires the export pipeline. db may be nil to disable the journal;
// an empty outputDir skips writing the artifact to disk.
func NewExportService(db *gorm.DB, session *Session, notifier *notify.Center, outputDir string) *ExportService {
	return &ExportService{
		db:        db,
		session:   session,
		notifier:  notifier,
		outputDir: outputDir,
		newRef:    func() string { return uuid.NewString() },
	}
}

// Render returns the op sequence for the current invoice without exporting it.
func (s *ExportService) Render() render.Document {
	return render.New(s.session.Lang()).Render(s.session.Snapshot())
}

// Export produces the PDF for the current invoice.
func (s *ExportService) Export(ctx context.Context) (*ExportResult, error) {
	inv := s.session.Snapshot()
	doc := render.New(s.session.Lang()).Render(inv)

	rec := models.Export{
		Ref:           s.newRef(),
		InvoiceNumber: inv.Number,
		DesignID:      inv.Design.ID,
		Filename:      pdf.SafeName(doc.Filename()),
	}

	data, err := pdf.Bytes(doc)
	if err == nil && s.outputDir != "" {
		rec.Path, err = pdf.WriteFile(data, s.outputDir, rec.Filename)
	}
	if err != nil {
		rec.Status = models.ExportStatusFailed
		rec.Error = err.Error()
		s.journal(ctx, &rec)
		log.Printf("[EXPORT] %s failed: %v", rec.Ref, err)
		s.notify(notify.LevelFailure, "export_failed")
		return nil, fmt.Errorf("%w: %v", ErrExportFailed, err)
	}

	rec.Status = models.ExportStatusOK
	rec.Bytes = int64(len(data))
	s.journal(ctx, &rec)
	log.Printf("[EXPORT] %s wrote %s (%d bytes)", rec.Ref, rec.Filename, rec.Bytes)
	s.notify(notify.LevelSuccess, "export_ok")
	return &ExportResult{Export: rec, Data: data}, nil
}

// Recent lists the latest journal entries.
func (s *ExportService) Recent(ctx context.Context, limit int) ([]models.Export, error) {
	if s.db == nil {
		return []models.Export{}, nil
	}
	return models.RecentExports(s.db.WithContext(ctx), limit)
}

// journal records the attempt. Journal errors are logged and do not fail the export.
func (s *ExportService) journal(ctx context.Context, rec *models.Export) {
	if s.db == nil {
		return
	}
	if err := s.db.WithContext(ctx).Create(rec).Error; err != nil {
		log.Printf("[EXPORT] journal write failed for %s: %v", rec.Ref, err)
	}
}

func (s *ExportService) notify(level notify.Level, code string) {
	if s.notifier == nil {
		return
	}
	msg := i18n.T(s.session.Lang(), code)
	if level == notify.LevelFailure {
		s.notifier.Failure(msg)
		return
	}
	s.notifier.Success(msg)
}
