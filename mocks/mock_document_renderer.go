package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"encomendas/internal/domain"
)

// MockDocumentRenderer is a mock implementation of port.DocumentRenderer.
type MockDocumentRenderer struct {
	mock.Mock
}

func (m *MockDocumentRenderer) Render(ctx context.Context, doc *domain.DocumentData) ([]byte, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockDocumentRenderer) ContentType() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDocumentRenderer) FileExt() string {
	args := m.Called()
	return args.String(0)
}
