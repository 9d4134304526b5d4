// Package export renders DocumentData into tabular order sheets.
package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"encomendas/internal/domain"
)

// BOM is the UTF-8 byte order mark, kept for Excel compatibility on Windows.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// itemColumns is the header row of the product table.
var itemColumns = []string{"Referência", "Descrição", "Quantidade", "Preço Unitário", "Total"}

// CSVRenderer renders an order sheet as CSV.
type CSVRenderer struct{}

// NewCSVRenderer creates a CSVRenderer.
func NewCSVRenderer() *CSVRenderer {
	return &CSVRenderer{}
}

// ContentType implements port.DocumentRenderer.
func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }

// FileExt implements port.DocumentRenderer.
func (r *CSVRenderer) FileExt() string { return "csv" }

// Render writes company and customer blocks followed by the product table,
// the VAT-inclusive total and any payment conditions.
func (r *CSVRenderer) Render(_ context.Context, doc *domain.DocumentData) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(BOM)
	w := csv.NewWriter(&buf)

	rows := [][]string{
		{"Empresa", doc.Company.Name},
		{"NIF", doc.Company.NIF},
		{"Encomenda", doc.Order.ID},
		{"Loja", doc.Order.StoreID},
		{"Data", doc.Order.Date},
		{"Cliente", doc.Customer.Name},
	}
	if doc.Customer.Email != "" {
		rows = append(rows, []string{"Email", doc.Customer.Email})
	}
	if doc.Customer.Phone != nil {
		rows = append(rows, []string{"Telefone", *doc.Customer.Phone})
	}
	if doc.Customer.NIF != "" {
		rows = append(rows, []string{"Contribuinte", doc.Customer.NIF})
	}
	if doc.Order.SalesType == domain.SalesTypeDelivery {
		addr := doc.Customer.Address
		rows = append(rows,
			[]string{"Local de Entrega", addr.Address1, addr.Address2},
			[]string{"", addr.PostalCode, addr.City},
		)
		if b := doc.Customer.BillingAddress; b != nil {
			rows = append(rows,
				[]string{"Faturação", b.Address1, b.Address2},
				[]string{"", b.PostalCode, b.City},
			)
		}
	}
	rows = append(rows, nil, itemColumns)
	for _, item := range doc.Order.Items {
		rows = append(rows, []string{
			item.Ref,
			item.Description,
			fmt.Sprintf("%d", item.Quantity),
			amount(item.UnitPrice),
			amount(item.Total),
		})
	}
	rows = append(rows,
		[]string{"", "", "", "Total", amount(doc.Order.TotalAmount)},
		[]string{"", "", "", "IVA", doc.Order.VAT},
	)
	if len(doc.Order.Payments) > 0 {
		rows = append(rows, nil, []string{"Valor", "Meio de Pagamento", "Data"})
		for _, p := range doc.Order.Payments {
			rows = append(rows, []string{amount(p.Amount), p.Label, p.Date})
		}
	}
	if doc.Order.Notes != "" {
		rows = append(rows, nil, []string{"Notas", doc.Order.Notes})
	}

	for _, row := range rows {
		if row == nil {
			row = []string{""}
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func amount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
