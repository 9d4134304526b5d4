package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"encomendas/internal/service"
	"encomendas/internal/validator"
	"encomendas/internal/validator/order"
)

// MockOrderService is a mock implementation of service.OrderService.
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) Validate(ctx context.Context, f *order.Form) *validator.Report {
	args := m.Called(ctx, f)
	return args.Get(0).(*validator.Report)
}

func (m *MockOrderService) BuildDocument(ctx context.Context, f *order.Form) (*service.Document, *validator.Report, error) {
	args := m.Called(ctx, f)
	var doc *service.Document
	if args.Get(0) != nil {
		doc = args.Get(0).(*service.Document)
	}
	var report *validator.Report
	if args.Get(1) != nil {
		report = args.Get(1).(*validator.Report)
	}
	return doc, report, args.Error(2)
}

func (m *MockOrderService) ExportDocument(ctx context.Context, f *order.Form, formatName string) (*service.Export, *validator.Report, error) {
	args := m.Called(ctx, f, formatName)
	var export *service.Export
	if args.Get(0) != nil {
		export = args.Get(0).(*service.Export)
	}
	var report *validator.Report
	if args.Get(1) != nil {
		report = args.Get(1).(*validator.Report)
	}
	return export, report, args.Error(2)
}
