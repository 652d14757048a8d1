package handlers

import (
	"github.com/orderflow/orderflow/internal/domain/model"
	"github.com/orderflow/orderflow/internal/server/http/dto"
	"github.com/orderflow/orderflow/internal/usecase"
)

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Unit:     item.Unit,
			Price:    item.Price,
			Amount:   item.Amount,
			Remarks:  item.Remarks,
		})
	}
	return dto.OrderResponse{
		ID:          order.ID,
		Date:        order.Date,
		StoreName:   order.StoreName,
		TaxID:       order.TaxID,
		Address:     order.Address,
		Email:       order.Email,
		Remarks:     order.Remarks,
		Items:       items,
		TotalAmount: order.TotalAmount,
		CreatedAt:   order.CreatedAt,
		SyncedAt:    order.SyncedAt,
	}
}

func toOrderItem(p dto.OrderItemPayload) model.OrderItem {
	return model.OrderItem{
		ID:       p.ID,
		Name:     p.Name,
		Quantity: p.Quantity,
		Unit:     p.Unit,
		Price:    p.Price,
		Remarks:  p.Remarks,
	}
}

func toViolationResponses(violations []usecase.Violation) []dto.ViolationResponse {
	result := make([]dto.ViolationResponse, 0, len(violations))
	for _, v := range violations {
		result = append(result, dto.ViolationResponse{
			Index:   v.Index,
			Name:    v.Name,
			Message: v.Message(),
		})
	}
	return result
}

func toInvoiceDocumentResponse(doc model.InvoiceDocument) dto.InvoiceDocumentResponse {
	rows := make([]dto.InvoiceRowResponse, 0, len(doc.Rows))
	for _, row := range doc.Rows {
		rows = append(rows, dto.InvoiceRowResponse{
			Blank:     row.Blank,
			Name:      row.Name,
			Quantity:  row.Quantity,
			Unit:      row.Unit,
			UnitPrice: row.UnitPrice,
			Amount:    row.Amount,
			Remarks:   row.Remarks,
		})
	}
	return dto.InvoiceDocumentResponse{
		Copy:           string(doc.Copy),
		Title:          doc.Title,
		CopyLabel:      doc.CopyLabel,
		OrderID:        doc.OrderID,
		Date:           doc.Date,
		StoreName:      doc.StoreName,
		TaxID:          doc.TaxID,
		Address:        doc.Address,
		Email:          doc.Email,
		Rows:           rows,
		TotalAmount:    doc.TotalAmount,
		FormattedTotal: doc.FormattedTotal,
		SignatureLines: doc.SignatureLines,
	}
}
