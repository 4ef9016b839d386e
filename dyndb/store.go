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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

type dynamoStore[T any] struct {
	client DynamoDBClient
	cfg    TableConfig
}

// New cria um store reutilizável
func New[T any](client DynamoDBClient, cfg TableConfig) Store[T] {
	if cfg.HashKey == "" {
		cfg.HashKey = "id"
	}
	return &dynamoStore[T]{
		client: client,
		cfg:    cfg,
	}
}

func (s *dynamoStore[T]) key(hashKey, sortKey any) map[string]types.AttributeValue {
	key := map[string]types.AttributeValue{
		s.cfg.HashKey: attr(hashKey),
	}
	if s.cfg.SortKey != "" && sortKey != nil {
		key[s.cfg.SortKey] = attr(sortKey)
	}
	return key
}

// Get item por chave primária
func (s *dynamoStore[T]) Get(ctx context.Context, hashKey, sortKey any) (*T, error) {
	out, err := s.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.cfg.TableName),
		Key:            s.key(hashKey, sortKey),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dynamostore: get failed: %w", err)
	}
	if out.Item == nil {
		return nil, ErrNotFound
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Item, &item); err != nil {
		return nil, fmt.Errorf("dynamostore: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Put item (upsert)
func (s *dynamoStore[T]) Put(ctx context.Context, item T) error {
	av, err := attributevalue.MarshalMap(item)
	if err != nil {
		return fmt.Errorf("dynamostore: marshal failed: %w", err)
	}

	_, err = s.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.cfg.TableName),
		Item:      av,
	})
	if err != nil {
		return fmt.Errorf("dynamostore: put failed: %w", err)
	}
	return nil
}

// Update aplica uma expressão SET parcial e devolve o item completo após a escrita.
func (s *dynamoStore[T]) Update(ctx context.Context, hashKey, sortKey any, upd Update) (*T, error) {
	values := make(map[string]types.AttributeValue, len(upd.Values))
	for placeholder, v := range upd.Values {
		values[placeholder] = attr(v)
	}

	names := make(map[string]string, len(upd.Names)+1)
	for placeholder, name := range upd.Names {
		names[placeholder] = name
	}

	var condition *string
	if upd.MustExist {
		placeholder := "#pk"
		for _, taken := names[placeholder]; taken; _, taken = names[placeholder] {
			placeholder += "_"
		}
		names[placeholder] = s.cfg.HashKey
		condition = aws.String("attribute_exists(" + placeholder + ")")
	}
	if len(names) == 0 {
		names = nil
	}

	out, err := s.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(s.cfg.TableName),
		Key:                       s.key(hashKey, sortKey),
		UpdateExpression:          aws.String(upd.Expression),
		ConditionExpression:       condition,
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var condErr *types.ConditionalCheckFailedException
		if errors.As(err, &condErr) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("dynamostore: update failed: %w", err)
	}

	var item T
	if err := attributevalue.UnmarshalMap(out.Attributes, &item); err != nil {
		return nil, fmt.Errorf("dynamostore: unmarshal failed: %w", err)
	}
	return &item, nil
}

// Delete item. Remover uma chave inexistente não é erro no DynamoDB.
func (s *dynamoStore[T]) Delete(ctx context.Context, hashKey, sortKey any) error {
	_, err := s.client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(s.cfg.TableName),
		Key:       s.key(hashKey, sortKey),
	})
	if err != nil {
		return fmt.Errorf("dynamostore: delete failed: %w", err)
	}
	return nil
}

// attr converte qualquer valor para types.AttributeValue
func attr(v any) types.AttributeValue {
	if v == nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	av, err := attributevalue.Marshal(v)
	if err != nil {
		return &types.AttributeValueMemberNULL{Value: true}
	}
	return av
}
