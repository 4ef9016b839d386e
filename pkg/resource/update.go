package resource

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

var safePlaceholder = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// UpdateExpression é a instrução "SET campo = valor" independente do store:
// cada campo ganha um placeholder de nome (#campo) e de valor (:campo), o que
// evita colisão com palavras reservadas e injeção na linguagem de consulta.
type UpdateExpression struct {
	Expression string
	Names      map[string]string
	Values     map[string]any
}

// BuildUpdate gera a expressão para exatamente os campos informados, em
// ordem alfabética. Um mapa vazio devolve ErrEmptyUpdate.
func BuildUpdate(fields Item) (UpdateExpression, error) {
	if len(fields) == 0 {
		return UpdateExpression{}, ErrEmptyUpdate
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	upd := UpdateExpression{
		Names:  make(map[string]string, len(keys)),
		Values: make(map[string]any, len(keys)),
	}
	assignments := make([]string, 0, len(keys))
	for i, k := range keys {
		token := k
		if !safePlaceholder.MatchString(k) {
			token = "f" + strconv.Itoa(i)
		}
		upd.Names["#"+token] = k
		upd.Values[":"+token] = fields[k]
		assignments = append(assignments, "#"+token+" = :"+token)
	}
	upd.Expression = "SET " + strings.Join(assignments, ", ")

	return upd, nil
}
