package port

import (
	"context"

	"encomendas/internal/domain"
)

// DocumentRenderer turns a document model into downloadable bytes. The PDF
// typesetter lives outside this service and consumes the JSON document
// model directly; in-repo implementations cover tabular order sheets.
type DocumentRenderer interface {
	Render(ctx context.Context, doc *domain.DocumentData) ([]byte, error)
	ContentType() string
	FileExt() string
}
