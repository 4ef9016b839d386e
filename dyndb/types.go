// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound erro padrão quando o item não existe. Também é devolvido
// pelo Update com MustExist quando a chave não está na tabela.
var ErrNotFound = errors.New("dyndb: item not found")

// DynamoDBClient interface para abstrair o cliente DynamoDB
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store: interface principal (genérica)
type Store[T any] interface {
	Get(ctx context.Context, hashKey, sortKey any) (*T, error)
	Put(ctx context.Context, item T) error
	Update(ctx context.Context, hashKey, sortKey any, upd Update) (*T, error)
	Delete(ctx context.Context, hashKey, sortKey any) error

	// Query e Scan retornam QueryBuilder[T]
	Query() *QueryBuilder[T]
	Scan() *QueryBuilder[T]
}

// TableConfig: configuração da tabela
type TableConfig struct {
	TableName string
	HashKey   string
	SortKey   string // opcional
}

// Update descreve um UpdateItem já renderizado: a expressão SET e os
// mapas de nomes (#campo) e valores (:campo) referenciados por ela.
// Com MustExist, a escrita é condicionada a attribute_exists(hash key) e
// nunca cria um item novo.
type Update struct {
	Expression string
	Names      map[string]string
	Values     map[string]any
	MustExist  bool
}

// QueryBuilder: o builder fluente
type QueryBuilder[T any] struct {
	store      *dynamoStore[T]
	keyCond    *expression.KeyConditionBuilder
	filterCond *expression.ConditionBuilder
	isScan     bool
}
