package resource

import (
	"context"
	"errors"

	"github.com/raywall/employee-service/dyndb"
)

// Repository é o que o Handler precisa do key-value store.
type Repository interface {
	Put(ctx context.Context, item Item) error
	Get(ctx context.Context, id string) (Item, error)
	FindByID(ctx context.Context, id string) ([]Item, error)
	Update(ctx context.Context, id string, upd UpdateExpression) (Item, error)
	Delete(ctx context.Context, id string) error
	ScanAll(ctx context.Context) ([]Item, error)
	ScanEqual(ctx context.Context, field, value string) ([]Item, error)
}

// DynamoRepository implementa Repository sobre uma tabela DynamoDB com
// chave de partição simples.
type DynamoRepository struct {
	store   dyndb.Store[Item]
	hashKey string
}

func NewDynamoRepository(client dyndb.DynamoDBClient, cfg dyndb.TableConfig) *DynamoRepository {
	store := dyndb.New[Item](client, cfg)
	hashKey := cfg.HashKey
	if hashKey == "" {
		hashKey = "id"
	}
	return &DynamoRepository{store: store, hashKey: hashKey}
}

func (r *DynamoRepository) Put(ctx context.Context, item Item) error {
	return r.store.Put(ctx, item)
}

// Get lê o registro com leitura consistente; ausente devolve ErrNotFound.
func (r *DynamoRepository) Get(ctx context.Context, id string) (Item, error) {
	item, err := r.store.Get(ctx, id, nil)
	if errors.Is(err, dyndb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return *item, nil
}

// FindByID consulta por igualdade na chave de partição; id inexistente
// devolve lista vazia.
func (r *DynamoRepository) FindByID(ctx context.Context, id string) ([]Item, error) {
	return r.store.Query().KeyEqual(r.hashKey, id).All(ctx)
}

// Update só altera registros existentes; id ausente devolve ErrNotFound.
func (r *DynamoRepository) Update(ctx context.Context, id string, upd UpdateExpression) (Item, error) {
	item, err := r.store.Update(ctx, id, nil, dyndb.Update{
		Expression: upd.Expression,
		Names:      upd.Names,
		Values:     upd.Values,
		MustExist:  true,
	})
	if errors.Is(err, dyndb.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return *item, nil
}

func (r *DynamoRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id, nil)
}

func (r *DynamoRepository) ScanAll(ctx context.Context) ([]Item, error) {
	return r.store.Scan().All(ctx)
}

// ScanEqual filtra no servidor e segue todas as continuações com o mesmo filtro.
func (r *DynamoRepository) ScanEqual(ctx context.Context, field, value string) ([]Item, error) {
	return r.store.Scan().FilterEqual(field, value).All(ctx)
}
