package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"encomendas/internal/domain"
	"encomendas/internal/port"
	"encomendas/internal/validator"
	"encomendas/internal/validator/order"
)

// Document pairs a freshly built document model with the identifier the
// download artifact is named after.
type Document struct {
	ID   uuid.UUID            `json:"id"`
	Data *domain.DocumentData `json:"data"`
}

// Export is a rendered order sheet ready to be served as a download.
type Export struct {
	ID          uuid.UUID
	Content     []byte
	ContentType string
	Filename    string
}

// OrderService defines the order intake contract: validate a raw
// submission, build its document model, or render it for download.
type OrderService interface {
	Validate(ctx context.Context, f *order.Form) *validator.Report
	BuildDocument(ctx context.Context, f *order.Form) (*Document, *validator.Report, error)
	ExportDocument(ctx context.Context, f *order.Form, formatName string) (*Export, *validator.Report, error)
}

// DocumentBuilder is the transformation step behind the service.
type DocumentBuilder interface {
	Build(o *domain.Order) (*domain.DocumentData, error)
}

type orderService struct {
	engine    *validator.Engine
	builder   DocumentBuilder
	renderers map[string]port.DocumentRenderer
}

// NewOrderService wires the validation engine, the document builder and
// the available export renderers (keyed by format name).
func NewOrderService(engine *validator.Engine, builder DocumentBuilder, renderers map[string]port.DocumentRenderer) OrderService {
	return &orderService{engine: engine, builder: builder, renderers: renderers}
}

func (s *orderService) Validate(ctx context.Context, f *order.Form) *validator.Report {
	_, report := s.engine.Validate(ctx, f)
	return report
}

// BuildDocument runs the full pipeline for one submission. A validation
// failure returns the report with a nil document and no error; an error
// means the transformation itself failed on input validation let through.
func (s *orderService) BuildDocument(ctx context.Context, f *order.Form) (*Document, *validator.Report, error) {
	validated, report := s.engine.Validate(ctx, f)
	if !report.Valid() {
		return nil, report, nil
	}

	data, err := s.builder.Build(validated)
	if err != nil {
		return nil, report, err
	}
	return &Document{ID: uuid.New(), Data: data}, report, nil
}

func (s *orderService) ExportDocument(ctx context.Context, f *order.Form, formatName string) (*Export, *validator.Report, error) {
	renderer, ok := s.renderers[formatName]
	if !ok {
		return nil, nil, fmt.Errorf("%q: %w", formatName, domain.ErrUnsupportedFormat)
	}

	doc, report, err := s.BuildDocument(ctx, f)
	if err != nil || doc == nil {
		return nil, report, err
	}

	content, err := renderer.Render(ctx, doc.Data)
	if err != nil {
		return nil, report, fmt.Errorf("%w: %v", domain.ErrRenderFailed, err)
	}
	return &Export{
		ID:          doc.ID,
		Content:     content,
		ContentType: renderer.ContentType(),
		Filename:    fmt.Sprintf("encomenda-%s.%s", doc.Data.Order.ID, renderer.FileExt()),
	}, report, nil
}
