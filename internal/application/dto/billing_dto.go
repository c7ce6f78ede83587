package dto

import "github.com/shopspring/decimal"

// InvoiceItemRequest línea de factura tal como la captura el formulario.
// UnitPrice puede o no incluir IVA según PricesIncludeTax de la cabecera.
type InvoiceItemRequest struct {
	Description string           `json:"descripcion" validate:"required"`
	ProductID   string           `json:"producto_id,omitempty"`
	Quantity    decimal.Decimal  `json:"cantidad"`
	UnitPrice   decimal.Decimal  `json:"precio_unitario"`
	ItemTax     *decimal.Decimal `json:"impuestos_item,omitempty"`
}

// CreateInvoiceRequest body para POST /api/invoices.
// OrderIDs puede traer uno o varios pedidos del mismo cliente, todos
// entregados/listos y cobrados/pagados.
type CreateInvoiceRequest struct {
	OrderIDs         []string             `json:"pedido_ids,omitempty"`
	CustomerID       string               `json:"cliente_id" validate:"required"`
	Items            []InvoiceItemRequest `json:"items"`
	TaxPercent       decimal.Decimal      `json:"iva_percent"`
	PricesIncludeTax bool                 `json:"precios_con_iva"`
	Notes            string               `json:"notas,omitempty"`
}

// CreateExternalInvoiceRequest body para POST /api/invoices/external.
// Factura manual sin pedido; admite adjuntar locators de PDF/XML ya subidos.
type CreateExternalInvoiceRequest struct {
	CustomerID       string               `json:"cliente_id" validate:"required"`
	Items            []InvoiceItemRequest `json:"items"`
	TaxPercent       decimal.Decimal      `json:"iva_percent"`
	PricesIncludeTax bool                 `json:"precios_con_iva"`
	Notes            string               `json:"notas,omitempty"`
	PDFURL           string               `json:"pdf_url,omitempty"`
	XMLURL           string               `json:"xml_url,omitempty"`
}

// CancelInvoiceRequest body para POST /api/invoices/:id/cancel.
type CancelInvoiceRequest struct {
	Reason string `json:"motivo" validate:"required"`
}

// UpdateInvoiceRequest body para PATCH /api/invoices/:id.
// Patch parcial; la capa de aplicación filtra las claves permitidas.
type UpdateInvoiceRequest struct {
	Patch map[string]any `json:"patch" validate:"required"`
}

// InvoiceCreatedResponse resultado de crear una factura.
type InvoiceCreatedResponse struct {
	ID       string          `json:"id"`
	Number   int64           `json:"numero"`
	Subtotal decimal.Decimal `json:"subtotal"`
	TaxTotal decimal.Decimal `json:"impuestos"`
	Total    decimal.Decimal `json:"total"`
}

// InvoiceItemResponse línea de detalle en respuestas.
type InvoiceItemResponse struct {
	ID          string           `json:"id"`
	Description string           `json:"descripcion"`
	ProductID   string           `json:"producto_id,omitempty"`
	Quantity    decimal.Decimal  `json:"cantidad"`
	UnitPrice   decimal.Decimal  `json:"precio_unitario"`
	Subtotal    decimal.Decimal  `json:"subtotal"`
	ItemTax     *decimal.Decimal `json:"impuestos_item,omitempty"`
}

// InvoiceHistoryResponse entrada de historial en respuestas.
type InvoiceHistoryResponse struct {
	ID        string         `json:"id"`
	Kind      string         `json:"cambio"`
	ActorID   string         `json:"actor_id"`
	ActorName string         `json:"actor_nombre,omitempty"`
	Timestamp string         `json:"timestamp"`
	Reason    string         `json:"motivo,omitempty"`
	Patch     map[string]any `json:"diff,omitempty"`
}

// InvoiceResponse factura completa para GET /api/invoices/:id.
// Expone cabecera + detalle + snapshot del cliente en forma estable para el
// colaborador de renderizado (PDF/HTML), que es externo a este servicio.
type InvoiceResponse struct {
	ID              string                   `json:"id"`
	Number          int64                    `json:"numero"`
	CustomerID      string                   `json:"cliente_id"`
	CustomerName    string                   `json:"cliente_nombre,omitempty"`
	CustomerAddress string                   `json:"cliente_direccion,omitempty"`
	OrderIDs        []string                 `json:"pedido_ids,omitempty"`
	OrderNums       []int64                  `json:"pedido_numeros,omitempty"`
	TaxPercent      decimal.Decimal          `json:"iva_percent"`
	Subtotal        decimal.Decimal          `json:"subtotal"`
	TaxTotal        decimal.Decimal          `json:"impuestos"`
	Total           decimal.Decimal          `json:"total"`
	Status          string                   `json:"estado"`
	Notes           string                   `json:"notas,omitempty"`
	External        bool                     `json:"externa"`
	PDFURL          string                   `json:"pdf_url,omitempty"`
	XMLURL          string                   `json:"xml_url,omitempty"`
	IssuedAt        string                   `json:"fecha_emision"`
	CancelledReason string                   `json:"motivo_anulacion,omitempty"`
	Items           []InvoiceItemResponse    `json:"detalle"`
	History         []InvoiceHistoryResponse `json:"historial,omitempty"`
}
