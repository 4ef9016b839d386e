package resource

// Item é um registro como trafega entre a API e o store: atributos planos
// indexados pelo nome.
type Item map[string]any

// Schema valida um corpo JSON bruto e devolve apenas os campos conhecidos
// que estavam presentes. Em caso de falha o erro é sempre *ValidationError.
type Schema interface {
	Validate(payload []byte) (Item, error)
}

// Descriptor descreve uma entidade exposta pelo Handler. Trocar o descritor
// é o suficiente para servir outra tabela com o mesmo dispatcher.
type Descriptor struct {
	// Name é o segmento da rota, ex: "employees" em /employees/{id}.
	Name string
	// HashKey é o atributo de partição, gerado como UUID na criação.
	HashKey string
	// SearchField é o atributo filtrado por GET /{resource}/search.
	SearchField     string
	DefaultPageSize int

	Create Schema
	Update Schema
}
