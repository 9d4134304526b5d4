package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"encomendas/internal/domain"
)

const sheetName = "Encomenda"

// XLSXRenderer renders an order sheet as an Excel workbook.
type XLSXRenderer struct{}

// NewXLSXRenderer creates an XLSXRenderer.
func NewXLSXRenderer() *XLSXRenderer {
	return &XLSXRenderer{}
}

// ContentType implements port.DocumentRenderer.
func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}

// FileExt implements port.DocumentRenderer.
func (r *XLSXRenderer) FileExt() string { return "xlsx" }

// Render lays out the same blocks as the CSV sheet: company and customer
// details, the product table, totals and payment conditions.
func (r *XLSXRenderer) Render(_ context.Context, doc *domain.DocumentData) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	row := 1
	setRow := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheetName, cell, &values); err != nil {
			return err
		}
		row++
		return nil
	}

	header := [][]interface{}{
		{"Empresa", doc.Company.Name},
		{"NIF", doc.Company.NIF},
		{"Encomenda", doc.Order.ID},
		{"Loja", doc.Order.StoreID},
		{"Data", doc.Order.Date},
		{"Cliente", doc.Customer.Name},
	}
	if doc.Customer.Email != "" {
		header = append(header, []interface{}{"Email", doc.Customer.Email})
	}
	if doc.Customer.Phone != nil {
		header = append(header, []interface{}{"Telefone", *doc.Customer.Phone})
	}
	if doc.Customer.NIF != "" {
		header = append(header, []interface{}{"Contribuinte", doc.Customer.NIF})
	}
	if doc.Order.SalesType == domain.SalesTypeDelivery {
		addr := doc.Customer.Address
		header = append(header,
			[]interface{}{"Local de Entrega", addr.Address1, addr.Address2},
			[]interface{}{"", addr.PostalCode, addr.City},
		)
		if b := doc.Customer.BillingAddress; b != nil {
			header = append(header,
				[]interface{}{"Faturação", b.Address1, b.Address2},
				[]interface{}{"", b.PostalCode, b.City},
			)
		}
	}
	for _, values := range header {
		if err := setRow(values...); err != nil {
			return nil, err
		}
	}

	row++ // blank separator
	cols := make([]interface{}, len(itemColumns))
	for i, c := range itemColumns {
		cols[i] = c
	}
	if err := setRow(cols...); err != nil {
		return nil, err
	}
	for _, item := range doc.Order.Items {
		if err := setRow(item.Ref, item.Description, item.Quantity, item.UnitPrice, item.Total); err != nil {
			return nil, err
		}
	}
	if err := setRow("", "", "", "Total", doc.Order.TotalAmount); err != nil {
		return nil, err
	}
	if err := setRow("", "", "", "IVA", doc.Order.VAT); err != nil {
		return nil, err
	}

	if len(doc.Order.Payments) > 0 {
		row++
		if err := setRow("Valor", "Meio de Pagamento", "Data"); err != nil {
			return nil, err
		}
		for _, p := range doc.Order.Payments {
			if err := setRow(p.Amount, p.Label, p.Date); err != nil {
				return nil, err
			}
		}
	}
	if doc.Order.Notes != "" {
		row++
		if err := setRow("Notas", doc.Order.Notes); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
