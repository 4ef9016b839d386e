package employee

import (
	"fmt"

	"github.com/raywall/employee-service/pkg/config"
	"github.com/raywall/employee-service/pkg/resource"
)

// NewDescriptor monta o descritor do recurso de funcionários a partir da
// seção resource do YAML. Os shapes de Create/Update usam "id" como chave,
// então a tabela precisa ter essa hash key.
func NewDescriptor(cfg config.ResourceConf) (resource.Descriptor, error) {
	if cfg.HashKey != FieldID {
		return resource.Descriptor{}, fmt.Errorf("employee: hash key must be %q, got %q", FieldID, cfg.HashKey)
	}
	return resource.Descriptor{
		Name:            cfg.Name,
		HashKey:         FieldID,
		SearchField:     cfg.SearchField,
		DefaultPageSize: cfg.DefaultPageSize,
		Create:          resource.NewSchema[CreateRequest](),
		Update:          resource.NewSchema[UpdateRequest](),
	}, nil
}
