package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/udyog-sutra-api/internal/domain/entity"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505" // unique_violation
	}
	return strings.Contains(err.Error(), "23505")
}

// keyColumn columna contra la que se compara la clave: id nativo o id legible.
func keyColumn(key entity.Key, displayColumn string) string {
	if key.Kind == entity.KeyNative {
		return "id"
	}
	return displayColumn
}

// setList acumula "col = $n" para un UPDATE parcial en el orden de llamada.
type setList struct {
	cols []string
	args []any
}

func (s *setList) add(col string, v any) {
	s.args = append(s.args, v)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d", col, len(s.args)))
}

// addJSON añade una columna jsonb; el valor es JSON crudo.
func (s *setList) addJSON(col string, raw []byte) {
	s.args = append(s.args, raw)
	s.cols = append(s.cols, fmt.Sprintf("%s = $%d::jsonb", col, len(s.args)))
}

// update compone "UPDATE table SET ... WHERE col = $n".
func (s *setList) update(table, whereCol string, whereVal any) (string, []any) {
	args := append(s.args, whereVal)
	q := fmt.Sprintf("UPDATE %s SET %s WHERE %s = $%d", table, strings.Join(s.cols, ", "), whereCol, len(args))
	return q, args
}

// addPartyPatch columnas comunes de clientes y proveedores.
func (s *setList) addPartyPatch(p entity.PartyPatch) {
	if p.OwnerID != nil {
		s.add("user_id", *p.OwnerID)
	}
	if p.Name != nil {
		s.add("name", *p.Name)
	}
	if p.ContactPerson != nil {
		s.add("contact_person", *p.ContactPerson)
	}
	if p.Email != nil {
		s.add("email", *p.Email)
	}
	if p.Phone != nil {
		s.add("phone", *p.Phone)
	}
	if p.Addresses != nil {
		s.addJSON("addresses", p.Addresses)
	}
	if p.GSTNumber != nil {
		s.add("gst_number", *p.GSTNumber)
	}
	if p.PANNumber != nil {
		s.add("pan_number", *p.PANNumber)
	}
	if p.PaymentTerms != nil {
		s.add("payment_terms", *p.PaymentTerms)
	}
	if p.CreditLimit != nil {
		s.add("credit_limit", *p.CreditLimit)
	}
	if p.Notes != nil {
		s.add("notes", *p.Notes)
	}
	if p.Status != nil {
		s.add("status", *p.Status)
	}
	if p.UpdatedBy != nil {
		s.add("updated_by", *p.UpdatedBy)
	}
}
