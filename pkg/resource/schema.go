package resource

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Motivos publicados no corpo do ValidationError.
const (
	ReasonRequired    = "field required"
	ReasonNotString   = "must be a string"
	ReasonMalformed   = "malformed JSON object"
	ReasonNotPositive = "must be a positive integer"
	ReasonTooLarge    = "must not exceed 1000"
)

// StructSchema valida payloads contra a struct T. Os campos de T devem ser
// ponteiros com tag json; `validate:"required"` exige presença (um string
// vazio é válido, null conta como ausente). Campos desconhecidos são ignorados.
type StructSchema[T any] struct {
	validate *validator.Validate
	fields   []schemaField
}

type schemaField struct {
	index int
	name  string
	typ   reflect.Type
}

// NewSchema monta o schema a partir das tags de T.
func NewSchema[T any]() *StructSchema[T] {
	v := validator.New()
	v.RegisterTagNameFunc(jsonName)

	var fields []schemaField
	typ := reflect.TypeOf((*T)(nil)).Elem()
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if name := jsonName(f); name != "" && f.IsExported() {
			fields = append(fields, schemaField{index: i, name: name, typ: f.Type})
		}
	}

	return &StructSchema[T]{validate: v, fields: fields}
}

// Validate decodifica o payload em T campo a campo, para reportar todos os
// campos com tipo errado de uma vez, e então aplica as regras de validate.
func (s *StructSchema[T]) Validate(payload []byte) (Item, error) {
	raw, err := decodeObject(payload)
	if err != nil {
		return nil, err
	}

	var target T
	val := reflect.ValueOf(&target).Elem()
	verr := &ValidationError{}
	typeFailed := make(map[string]bool)

	for _, f := range s.fields {
		msg, ok := raw[f.name]
		if !ok {
			continue
		}
		ptr := reflect.New(f.typ)
		if err := json.Unmarshal(msg, ptr.Interface()); err != nil {
			verr.Add(f.name, ReasonNotString)
			typeFailed[f.name] = true
			continue
		}
		val.Field(f.index).Set(ptr.Elem())
	}

	if err := s.validate.Struct(target); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return nil, err
		}
		for _, fe := range fieldErrs {
			if typeFailed[fe.Field()] {
				continue
			}
			reason := ReasonRequired
			if fe.Tag() != "required" {
				reason = "failed rule '" + fe.Tag() + "'"
			}
			verr.Add(fe.Field(), reason)
		}
	}

	if len(verr.Fields) > 0 {
		return nil, verr
	}

	item := Item{}
	for _, f := range s.fields {
		fv := val.Field(f.index)
		if fv.Kind() == reflect.Ptr {
			if fv.IsNil() {
				continue
			}
			fv = fv.Elem()
		}
		item[f.name] = fv.Interface()
	}
	return item, nil
}

// decodeObject exige um objeto JSON no topo do corpo.
func decodeObject(payload []byte) (map[string]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(payload)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, NewValidationError("body", ReasonMalformed)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &raw); err != nil {
		return nil, NewValidationError("body", ReasonMalformed)
	}
	return raw, nil
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}
