package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/Jaquiaro29/aqualife-api/internal/domain/entity"
	"github.com/Jaquiaro29/aqualife-api/internal/domain/repository"
)

var _ repository.InvoiceRepository = (*InvoiceRepo)(nil)

// InvoiceRepo implementación de InvoiceRepository (usable con pool o tx).
type InvoiceRepo struct {
	q Querier
}

// NewInvoiceRepository construye el adaptador. Pasar pool o tx (Querier).
func NewInvoiceRepository(q Querier) *InvoiceRepo {
	return &InvoiceRepo{q: q}
}

// Create persiste la cabecera de la factura.
func (r *InvoiceRepo) Create(ctx context.Context, inv *entity.Invoice) error {
	const q = `
		INSERT INTO invoices
			(id, numero, customer_id, order_ids, order_nums, iva_percent,
			 subtotal, tax_total, total, estado, notas, externa,
			 pdf_url, xml_url, fecha_emision, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)`
	_, err := r.q.Exec(ctx, q,
		inv.ID, inv.Number, inv.CustomerID, inv.OrderIDs, inv.OrderNums, inv.TaxPercent,
		inv.Subtotal, inv.TaxTotal, inv.Total, inv.Status, inv.Notes, inv.External,
		nullIfEmpty(inv.PDFURL), nullIfEmpty(inv.XMLURL), inv.IssuedAt, inv.CreatedAt, inv.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("el número de factura ya existe: %w", err)
		}
		return fmt.Errorf("insert invoice: %w", err)
	}
	return nil
}

// CreateItem persiste una línea de detalle.
func (r *InvoiceRepo) CreateItem(ctx context.Context, item *entity.InvoiceItem) error {
	const q = `
		INSERT INTO invoice_items
			(id, invoice_id, descripcion, producto_id, cantidad, precio_unitario, subtotal, impuestos_item)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(ctx, q,
		item.ID, item.InvoiceID, item.Description, nullIfEmpty(item.ProductID),
		item.Quantity, item.UnitPrice, item.Subtotal, toNullDecimal(item.ItemTax),
	)
	if err != nil {
		return fmt.Errorf("insert invoice item: %w", err)
	}
	return nil
}

// AppendHistory agrega una entrada inmutable al historial de la factura.
// El diff se serializa según el tipo de cambio (unión etiquetada por "cambio").
func (r *InvoiceRepo) AppendHistory(ctx context.Context, entry *entity.InvoiceHistoryEntry) error {
	diff, err := marshalHistoryDiff(entry)
	if err != nil {
		return err
	}
	const q = `
		INSERT INTO invoice_history
			(id, invoice_id, cambio, actor_id, actor_email, actor_nombre, ts, diff)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err = r.q.Exec(ctx, q,
		entry.ID, entry.InvoiceID, entry.Kind,
		entry.Actor.ID, nullIfEmpty(entry.Actor.Email), nullIfEmpty(entry.Actor.DisplayName),
		entry.Timestamp, diff,
	)
	if err != nil {
		return fmt.Errorf("insert invoice history: %w", err)
	}
	return nil
}

const invoiceColumns = `
	id, numero, customer_id, order_ids, order_nums, iva_percent,
	subtotal, tax_total, total, estado, COALESCE(notas, ''), externa,
	COALESCE(pdf_url, ''), COALESCE(xml_url, ''), fecha_emision,
	COALESCE(anulada_por, ''), anulada_en, COALESCE(motivo_anulacion, ''),
	created_at, updated_at`

// GetByID obtiene una cabecera por ID. Devuelve (nil, nil) si no existe.
func (r *InvoiceRepo) GetByID(ctx context.Context, id string) (*entity.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE id = $1`
	inv, err := scanInvoice(r.q.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get invoice: %w", err)
	}
	return inv, nil
}

// ListByCustomer lista las cabeceras de un cliente, más recientes primero.
func (r *InvoiceRepo) ListByCustomer(ctx context.Context, customerID string) ([]*entity.Invoice, error) {
	q := `SELECT ` + invoiceColumns + ` FROM invoices WHERE customer_id = $1 ORDER BY numero DESC`
	rows, err := r.q.Query(ctx, q, customerID)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}
	defer rows.Close()
	var list []*entity.Invoice
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, fmt.Errorf("scan invoice: %w", err)
		}
		list = append(list, inv)
	}
	return list, rows.Err()
}

// GetItemsByInvoiceID obtiene el detalle de una factura en orden de inserción.
func (r *InvoiceRepo) GetItemsByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceItem, error) {
	const q = `
		SELECT id, invoice_id, descripcion, COALESCE(producto_id, ''),
		       cantidad, precio_unitario, subtotal, impuestos_item
		FROM invoice_items WHERE invoice_id = $1 ORDER BY ctid`
	rows, err := r.q.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceItem
	for rows.Next() {
		var item entity.InvoiceItem
		var itemTax decimal.NullDecimal
		if err := rows.Scan(&item.ID, &item.InvoiceID, &item.Description, &item.ProductID,
			&item.Quantity, &item.UnitPrice, &item.Subtotal, &itemTax); err != nil {
			return nil, fmt.Errorf("scan invoice item: %w", err)
		}
		if itemTax.Valid {
			item.ItemTax = &itemTax.Decimal
		}
		list = append(list, &item)
	}
	return list, rows.Err()
}

// GetHistoryByInvoiceID obtiene el historial de una factura en orden cronológico.
func (r *InvoiceRepo) GetHistoryByInvoiceID(ctx context.Context, invoiceID string) ([]*entity.InvoiceHistoryEntry, error) {
	const q = `
		SELECT id, invoice_id, cambio, actor_id,
		       COALESCE(actor_email, ''), COALESCE(actor_nombre, ''), ts, diff
		FROM invoice_history WHERE invoice_id = $1 ORDER BY ts`
	rows, err := r.q.Query(ctx, q, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("list invoice history: %w", err)
	}
	defer rows.Close()
	var list []*entity.InvoiceHistoryEntry
	for rows.Next() {
		var entry entity.InvoiceHistoryEntry
		var diff []byte
		if err := rows.Scan(&entry.ID, &entry.InvoiceID, &entry.Kind, &entry.Actor.ID,
			&entry.Actor.Email, &entry.Actor.DisplayName, &entry.Timestamp, &diff); err != nil {
			return nil, fmt.Errorf("scan invoice history: %w", err)
		}
		if err := unmarshalHistoryDiff(&entry, diff); err != nil {
			return nil, err
		}
		list = append(list, &entry)
	}
	return list, rows.Err()
}

// Update reescribe los campos mutables de la cabecera (estado y anulación).
func (r *InvoiceRepo) Update(ctx context.Context, inv *entity.Invoice) error {
	const q = `
		UPDATE invoices
		SET estado           = $2,
		    notas            = $3,
		    pdf_url          = $4,
		    xml_url          = $5,
		    anulada_por      = $6,
		    anulada_en       = $7,
		    motivo_anulacion = $8,
		    updated_at       = $9
		WHERE id = $1`
	_, err := r.q.Exec(ctx, q,
		inv.ID, inv.Status, inv.Notes, nullIfEmpty(inv.PDFURL), nullIfEmpty(inv.XMLURL),
		nullIfEmpty(inv.CancelledBy), inv.CancelledAt, nullIfEmpty(inv.CancelledReason),
		inv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update invoice: %w", err)
	}
	return nil
}

// patchColumns claves de patch → columnas. Claves fuera de esta lista se ignoran.
var patchColumns = map[string]string{
	"estado":  "estado",
	"notas":   "notas",
	"pdf_url": "pdf_url",
	"xml_url": "xml_url",
}

// UpdateFields aplica un patch parcial construyendo el SET dinámicamente.
func (r *InvoiceRepo) UpdateFields(ctx context.Context, id string, patch map[string]any) error {
	sets := make([]string, 0, len(patch)+1)
	args := []any{id}
	for k, v := range patch {
		col, ok := patchColumns[k]
		if !ok {
			continue
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if len(sets) == 0 {
		return nil
	}
	sets = append(sets, "updated_at = now()")
	q := "UPDATE invoices SET " + strings.Join(sets, ", ") + " WHERE id = $1"
	if _, err := r.q.Exec(ctx, q, args...); err != nil {
		return fmt.Errorf("patch invoice: %w", err)
	}
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pgxScanner abstrae pgx.Row y pgx.Rows para reutilizar scanInvoice.
type pgxScanner interface {
	Scan(dest ...any) error
}

func scanInvoice(row pgxScanner) (*entity.Invoice, error) {
	var inv entity.Invoice
	err := row.Scan(
		&inv.ID, &inv.Number, &inv.CustomerID, &inv.OrderIDs, &inv.OrderNums, &inv.TaxPercent,
		&inv.Subtotal, &inv.TaxTotal, &inv.Total, &inv.Status, &inv.Notes, &inv.External,
		&inv.PDFURL, &inv.XMLURL, &inv.IssuedAt,
		&inv.CancelledBy, &inv.CancelledAt, &inv.CancelledReason,
		&inv.CreatedAt, &inv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func toNullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

// historyDiff forma serializada del diff según el tipo de cambio.
type historyDiff struct {
	Totals *entity.HistoryTotals `json:"totals,omitempty"`
	Reason string                `json:"motivo,omitempty"`
	Patch  map[string]any        `json:"patch,omitempty"`
}

func marshalHistoryDiff(entry *entity.InvoiceHistoryEntry) ([]byte, error) {
	b, err := json.Marshal(historyDiff{Totals: entry.Totals, Reason: entry.Reason, Patch: entry.Patch})
	if err != nil {
		return nil, fmt.Errorf("marshal history diff: %w", err)
	}
	return b, nil
}

func unmarshalHistoryDiff(entry *entity.InvoiceHistoryEntry, b []byte) error {
	if len(b) == 0 {
		return nil
	}
	var diff historyDiff
	if err := json.Unmarshal(b, &diff); err != nil {
		return fmt.Errorf("unmarshal history diff: %w", err)
	}
	entry.Totals = diff.Totals
	entry.Reason = diff.Reason
	entry.Patch = diff.Patch
	return nil
}
