package resource

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyUpdate indica um PUT de atualização que só traz a chave primária.
var ErrEmptyUpdate = errors.New("resource: update payload has no fields besides the key")

// ErrNotFound indica que o registro alvo de um update não existe.
var ErrNotFound = errors.New("resource: record not found")

// ReasonNotFound acompanha ErrNotFound no corpo do 400.
const ReasonNotFound = "record not found"

// FieldError é uma violação de um único campo do payload.
type FieldError struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError agrupa as violações encontradas em um payload ou na query
// string. É serializado como está no corpo da resposta 400.
type ValidationError struct {
	Fields []FieldError
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: []FieldError{{Field: field, Reason: reason}}}
}

func (e *ValidationError) Add(field, reason string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Reason: reason})
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Error  string       `json:"error"`
		Fields []FieldError `json:"fields"`
	}{Error: "ValidationError", Fields: e.Fields})
}

// UnrecognizedRequestError é devolvido quando o par (método, rota) não
// corresponde a nenhuma operação do recurso.
type UnrecognizedRequestError struct {
	Method   string
	Resource string
}

func (e *UnrecognizedRequestError) Error() string {
	return fmt.Sprintf("Unrecognized request %q", e.Method+" "+e.Resource)
}

func (e *UnrecognizedRequestError) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]string{
		"error":   "UnrecognizedRequest",
		"message": e.Error(),
	})
}
