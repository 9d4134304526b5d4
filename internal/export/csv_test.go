package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"encomendas/internal/domain"
)

func sampleDocument() *domain.DocumentData {
	phone := "+351 912 345 678"
	return &domain.DocumentData{
		Company: domain.Company{Name: "Octosólido2, LDA", NIF: "513 579 559"},
		Customer: domain.Customer{
			Name:  "João dos Santos",
			Email: "cliente@example.com",
			Phone: &phone,
			NIF:   "123 456 789",
			Address: domain.Address{
				Address1:   "Rua das Flores 123",
				PostalCode: "1500-463",
				City:       "Lisboa",
			},
		},
		Order: domain.DocumentOrder{
			ID:        "6112",
			StoreID:   "OCT 1",
			SalesType: domain.SalesTypeDelivery,
			Date:      "2 de janeiro de 2026",
			Items: []domain.DocumentItem{
				{Ref: "REF-100", Description: "Candeeiro de mesa", Quantity: 1, UnitPrice: 123, Total: 123},
				{Ref: "REF-200", Description: "Aplique de parede", Quantity: 3, UnitPrice: 93, Total: 279},
			},
			VAT:         "23%",
			TotalAmount: 402,
			Notes:       "Entregar depois das 14h",
			Payments: []domain.Payment{
				{Amount: 100, Method: domain.PaymentMBWay, Label: "MBWay", Date: "2 de janeiro de 2026"},
				{Amount: 302, Method: domain.PaymentOnDelivery, Label: "No acto de entrega"},
			},
		},
	}
}

func TestCSVRenderer_Render(t *testing.T) {
	out, err := NewCSVRenderer().Render(context.Background(), sampleDocument())
	require.NoError(t, err)

	require.True(t, bytes.HasPrefix(out, BOM))

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, BOM)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	assert.Equal(t, []string{"Empresa", "Octosólido2, LDA"}, records[0])
	assert.Equal(t, []string{"Encomenda", "6112"}, records[2])
	assert.Equal(t, []string{"Telefone", "+351 912 345 678"}, records[7])

	assert.Contains(t, records, []string{"Local de Entrega", "Rua das Flores 123", ""})
	assert.Contains(t, records, itemColumns)
	assert.Contains(t, records, []string{"REF-200", "Aplique de parede", "3", "93.00", "279.00"})
	assert.Contains(t, records, []string{"", "", "", "Total", "402.00"})
	assert.Contains(t, records, []string{"", "", "", "IVA", "23%"})
	assert.Contains(t, records, []string{"100.00", "MBWay", "2 de janeiro de 2026"})
	assert.Contains(t, records, []string{"302.00", "No acto de entrega", ""})
	assert.Contains(t, records, []string{"Notas", "Entregar depois das 14h"})
}

func TestCSVRenderer_DirectSaleOmitsBlocks(t *testing.T) {
	doc := sampleDocument()
	doc.Order.SalesType = domain.SalesTypeDirect
	doc.Customer.Email = ""
	doc.Customer.Phone = nil
	doc.Customer.NIF = ""
	doc.Order.Payments = nil
	doc.Order.Notes = ""

	out, err := NewCSVRenderer().Render(context.Background(), doc)
	require.NoError(t, err)

	reader := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(out, BOM)))
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	require.NoError(t, err)

	for _, rec := range records {
		assert.NotEqual(t, "Telefone", rec[0])
		assert.NotEqual(t, "Local de Entrega", rec[0])
		assert.NotEqual(t, "Notas", rec[0])
	}
}

func TestCSVRenderer_Metadata(t *testing.T) {
	r := NewCSVRenderer()
	assert.Equal(t, "text/csv; charset=utf-8", r.ContentType())
	assert.Equal(t, "csv", r.FileExt())
}
