package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"encomendas/internal/domain"
	"encomendas/internal/handler"
	"encomendas/internal/service"
	"encomendas/internal/validator"
	"encomendas/internal/validator/order"
	"encomendas/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newOrderHandler() (*handler.OrderHandler, *mocks.MockOrderService) {
	mockSvc := new(mocks.MockOrderService)
	h := handler.NewOrderHandler(mockSvc)
	return h, mockSvc
}

func postJSON(body []byte, target string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, target, bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func orderBody(t *testing.T) []byte {
	t.Helper()
	body, err := json.Marshal(map[string]interface{}{
		"sales_type":   "direct",
		"store_id":     "1",
		"name":         "João dos Santos",
		"order_number": 6112,
		"date":         "2026-01-02",
		"items": []map[string]interface{}{
			{"id": 1, "ref": "REF-100", "description": "Candeeiro de mesa", "quantity": 1, "unit_price": 123},
		},
	})
	assert.NoError(t, err)
	return body
}

// --- Validate ---

func TestOrderHandler_Validate_Success(t *testing.T) {
	h, mockSvc := newOrderHandler()

	mockSvc.On("Validate", mock.Anything, mock.MatchedBy(func(f *order.Form) bool {
		return f.SalesType == "direct" && f.Name == "João dos Santos"
	})).Return(&validator.Report{})

	w, c := postJSON(orderBody(t), "/api/v1/orders/validate")
	h.Validate(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestOrderHandler_Validate_FieldErrorsStillOK(t *testing.T) {
	h, mockSvc := newOrderHandler()

	mockSvc.On("Validate", mock.Anything, mock.Anything).Return(&validator.Report{
		Errors: []order.FieldError{{Field: "name", Message: "O nome deve ter pelo menos 2 caracteres."}},
	})

	w, c := postJSON(orderBody(t), "/api/v1/orders/validate")
	h.Validate(c)

	// invalid form content is a validation outcome, not an HTTP error
	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                     `json:"success"`
		Data    handler.ValidationResult `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Data.Valid)
	assert.Equal(t, "name", resp.Data.Errors[0].Field)
}

func TestOrderHandler_Validate_MalformedBody(t *testing.T) {
	h, _ := newOrderHandler()

	w, c := postJSON([]byte("{not json"), "/api/v1/orders/validate")
	h.Validate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Document ---

func TestOrderHandler_Document_Success(t *testing.T) {
	h, mockSvc := newOrderHandler()

	doc := &service.Document{
		ID: uuid.New(),
		Data: &domain.DocumentData{
			Order: domain.DocumentOrder{ID: "6112"},
		},
	}
	mockSvc.On("BuildDocument", mock.Anything, mock.Anything).Return(doc, &validator.Report{}, nil)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document")
	h.Document(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestOrderHandler_Document_ValidationFailed(t *testing.T) {
	h, mockSvc := newOrderHandler()

	report := &validator.Report{
		Errors: []order.FieldError{{Field: "store_id", Message: "Loja inválida."}},
	}
	mockSvc.On("BuildDocument", mock.Anything, mock.Anything).Return(nil, report, nil)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document")
	h.Document(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	assert.Equal(t, "store_id", resp.Error.Fields[0].Field)
}

func TestOrderHandler_Document_BuildError(t *testing.T) {
	h, mockSvc := newOrderHandler()

	mockSvc.On("BuildDocument", mock.Anything, mock.Anything).
		Return(nil, &validator.Report{}, domain.ErrUnknownPaymentType)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document")
	h.Document(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "DOCUMENT_BUILD_FAILED", resp.Error.Code)
}

// --- Export ---

func TestOrderHandler_Export_Success(t *testing.T) {
	h, mockSvc := newOrderHandler()

	export := &service.Export{
		ID:          uuid.New(),
		Content:     []byte("conteudo"),
		ContentType: "text/csv; charset=utf-8",
		Filename:    "encomenda-6112.csv",
	}
	mockSvc.On("ExportDocument", mock.Anything, mock.Anything, "csv").
		Return(export, &validator.Report{}, nil)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document/export")
	h.Export(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "encomenda-6112.csv")
	assert.Equal(t, "conteudo", w.Body.String())
	mockSvc.AssertExpectations(t)
}

func TestOrderHandler_Export_DefaultsToCSV(t *testing.T) {
	h, mockSvc := newOrderHandler()

	mockSvc.On("ExportDocument", mock.Anything, mock.Anything, "csv").
		Return(nil, &validator.Report{
			Errors: []order.FieldError{{Field: "name", Message: "O nome deve ter pelo menos 2 caracteres."}},
		}, nil)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document/export")
	h.Export(c)

	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestOrderHandler_Export_UnsupportedFormat(t *testing.T) {
	h, mockSvc := newOrderHandler()

	mockSvc.On("ExportDocument", mock.Anything, mock.Anything, "pdf").
		Return(nil, nil, domain.ErrUnsupportedFormat)

	w, c := postJSON(orderBody(t), "/api/v1/orders/document/export?format=pdf")
	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "UNSUPPORTED_FORMAT", resp.Error.Code)
}
