package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"encomendas/internal/config"
	"encomendas/internal/document"
	"encomendas/internal/domain"
	"encomendas/internal/port"
	"encomendas/internal/service"
	"encomendas/internal/validator"
	"encomendas/internal/validator/order"
	"encomendas/mocks"
)

var (
	svcStores  = []string{"1", "3", "6"}
	svcMethods = []domain.PaymentMethod{
		domain.PaymentMBWay, domain.PaymentCash, domain.PaymentCard, domain.PaymentTransfer,
	}
	svcLabels = map[domain.PaymentMethod]string{
		domain.PaymentMBWay: "MBWay", domain.PaymentCash: "Numerário",
		domain.PaymentCard: "Multibanco", domain.PaymentTransfer: "Transferência",
	}
	svcCompany = config.CompanyConfig{
		Name:        "Octosólido2, LDA",
		NIF:         "513 579 559",
		StorePrefix: "OCT",
		VATRate:     "23%",
	}
)

func validForm() *order.Form {
	return &order.Form{
		SalesType:   "direct",
		StoreID:     "1",
		Name:        "João dos Santos",
		OrderNumber: order.AmountOf(6112),
		Date:        "2026-01-02",
		Items: []order.Entry{
			{ID: 1, Ref: "REF-100", Description: "Candeeiro de mesa", Quantity: 1, UnitPrice: order.AmountOf(123)},
		},
	}
}

func newService(renderers map[string]port.DocumentRenderer) service.OrderService {
	engine := validator.NewOrderEngine(svcStores, svcMethods)
	builder := document.NewBuilder(svcCompany, svcLabels)
	return service.NewOrderService(engine, builder, renderers)
}

func TestValidate_ReturnsReport(t *testing.T) {
	svc := newService(nil)

	t.Run("valid_submission", func(t *testing.T) {
		report := svc.Validate(context.Background(), validForm())
		assert.True(t, report.Valid())
	})

	t.Run("invalid_submission", func(t *testing.T) {
		f := validForm()
		f.Name = "J"
		report := svc.Validate(context.Background(), f)
		require.False(t, report.Valid())
		assert.Equal(t, "name", report.Errors[0].Field)
	})
}

func TestBuildDocument(t *testing.T) {
	svc := newService(nil)

	t.Run("success", func(t *testing.T) {
		doc, report, err := svc.BuildDocument(context.Background(), validForm())
		require.NoError(t, err)
		require.True(t, report.Valid())
		require.NotNil(t, doc)
		assert.NotEqual(t, uuid.Nil, doc.ID)
		assert.Equal(t, "6112", doc.Data.Order.ID)
	})

	t.Run("validation_failure_is_not_an_error", func(t *testing.T) {
		f := validForm()
		f.Items = nil
		doc, report, err := svc.BuildDocument(context.Background(), f)
		assert.NoError(t, err)
		assert.Nil(t, doc)
		assert.False(t, report.Valid())
	})
}

func TestExportDocument(t *testing.T) {
	t.Run("renders_through_the_named_renderer", func(t *testing.T) {
		renderer := new(mocks.MockDocumentRenderer)
		renderer.On("Render", mock.Anything, mock.Anything).Return([]byte("conteudo"), nil)
		renderer.On("ContentType").Return("text/csv; charset=utf-8")
		renderer.On("FileExt").Return("csv")

		svc := newService(map[string]port.DocumentRenderer{"csv": renderer})
		export, report, err := svc.ExportDocument(context.Background(), validForm(), "csv")
		require.NoError(t, err)
		require.True(t, report.Valid())
		require.NotNil(t, export)

		assert.Equal(t, []byte("conteudo"), export.Content)
		assert.Equal(t, "text/csv; charset=utf-8", export.ContentType)
		assert.Equal(t, "encomenda-6112.csv", export.Filename)
		renderer.AssertExpectations(t)
	})

	t.Run("unknown_format", func(t *testing.T) {
		svc := newService(map[string]port.DocumentRenderer{})
		export, _, err := svc.ExportDocument(context.Background(), validForm(), "pdf")
		assert.Nil(t, export)
		assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
	})

	t.Run("validation_failure_skips_rendering", func(t *testing.T) {
		renderer := new(mocks.MockDocumentRenderer)
		svc := newService(map[string]port.DocumentRenderer{"csv": renderer})

		f := validForm()
		f.StoreID = "99"
		export, report, err := svc.ExportDocument(context.Background(), f, "csv")
		assert.NoError(t, err)
		assert.Nil(t, export)
		assert.False(t, report.Valid())
		renderer.AssertNotCalled(t, "Render", mock.Anything, mock.Anything)
	})

	t.Run("renderer_failure", func(t *testing.T) {
		renderer := new(mocks.MockDocumentRenderer)
		renderer.On("Render", mock.Anything, mock.Anything).Return(nil, errors.New("disco cheio"))

		svc := newService(map[string]port.DocumentRenderer{"csv": renderer})
		export, _, err := svc.ExportDocument(context.Background(), validForm(), "csv")
		assert.Nil(t, export)
		assert.ErrorIs(t, err, domain.ErrRenderFailed)
	})
}
