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
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/expression"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// === MÉTODOS FLUENTES ===

func (qb *QueryBuilder[T]) KeyEqual(key string, value any) *QueryBuilder[T] {
	cond := expression.KeyEqual(expression.Key(key), expression.Value(value))
	if qb.keyCond == nil {
		qb.keyCond = &cond
	} else {
		tmp := qb.keyCond.And(cond)
		qb.keyCond = &tmp
	}
	return qb
}

func (qb *QueryBuilder[T]) FilterEqual(field string, value any) *QueryBuilder[T] {
	cond := expression.Equal(expression.Name(field), expression.Value(value))
	if qb.filterCond == nil {
		qb.filterCond = &cond
	} else {
		tmp := qb.filterCond.And(cond)
		qb.filterCond = &tmp
	}
	return qb
}

// Query inicia uma Query
func (s *dynamoStore[T]) Query() *QueryBuilder[T] {
	return &QueryBuilder[T]{store: s}
}

// Scan inicia um Scan
func (s *dynamoStore[T]) Scan() *QueryBuilder[T] {
	return &QueryBuilder[T]{store: s, isScan: true}
}

// All percorre todas as páginas até o DynamoDB parar de devolver
// LastEvaluatedKey. A mesma expressão (filtro incluso) é reaplicada em
// cada continuação.
func (qb *QueryBuilder[T]) All(ctx context.Context) ([]T, error) {
	expr, err := qb.build()
	if err != nil {
		return nil, err
	}

	var raw []map[string]types.AttributeValue
	var startKey map[string]types.AttributeValue
	for {
		items, lastKey, err := qb.page(ctx, expr, startKey)
		if err != nil {
			return nil, err
		}
		raw = append(raw, items...)
		if len(lastKey) == 0 {
			break
		}
		startKey = lastKey
	}

	return unmarshalItems[T](raw)
}

// build monta a expressão; nil quando não há condição nenhuma, pois o
// expression.Builder vazio falha com ErrUnsetParameter.
func (qb *QueryBuilder[T]) build() (*expression.Expression, error) {
	if qb.keyCond == nil && qb.filterCond == nil {
		return nil, nil
	}

	builder := expression.NewBuilder()
	if qb.keyCond != nil {
		builder = builder.WithKeyCondition(*qb.keyCond)
	}
	if qb.filterCond != nil {
		builder = builder.WithFilter(*qb.filterCond)
	}

	expr, err := builder.Build()
	if err != nil {
		return nil, fmt.Errorf("dyndb: build expression failed: %w", err)
	}
	return &expr, nil
}

func (qb *QueryBuilder[T]) page(
	ctx context.Context,
	expr *expression.Expression,
	startKey map[string]types.AttributeValue,
) ([]map[string]types.AttributeValue, map[string]types.AttributeValue, error) {
	if qb.isScan || qb.keyCond == nil {
		input := &dynamodb.ScanInput{
			TableName:         aws.String(qb.store.cfg.TableName),
			ExclusiveStartKey: startKey,
		}
		if expr != nil {
			input.FilterExpression = expr.Filter()
			input.ExpressionAttributeNames = expr.Names()
			input.ExpressionAttributeValues = expr.Values()
		}

		out, err := qb.store.client.Scan(ctx, input)
		if err != nil {
			return nil, nil, fmt.Errorf("dyndb: scan failed: %w", err)
		}
		return out.Items, out.LastEvaluatedKey, nil
	}

	out, err := qb.store.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(qb.store.cfg.TableName),
		KeyConditionExpression:    expr.KeyCondition(),
		FilterExpression:          expr.Filter(),
		ExpressionAttributeNames:  expr.Names(),
		ExpressionAttributeValues: expr.Values(),
		ExclusiveStartKey:         startKey,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("dyndb: query failed: %w", err)
	}
	return out.Items, out.LastEvaluatedKey, nil
}

func unmarshalItems[T any](items []map[string]types.AttributeValue) ([]T, error) {
	result := make([]T, 0, len(items))
	for _, item := range items {
		var t T
		if err := attributevalue.UnmarshalMap(item, &t); err != nil {
			return nil, fmt.Errorf("dyndb: unmarshal failed: %w", err)
		}
		result = append(result, t)
	}
	return result, nil
}
