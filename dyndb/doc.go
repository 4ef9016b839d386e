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
//
// Package dyndb fornece uma abstração genérica e fortemente tipada sobre o
// AWS DynamoDB Go SDK (v2).
//
// O pacote oferece a interface `Store[T]` com operações CRUD tipadas
// (`Get`, `Put`, `Update`, `Delete`) e o `QueryBuilder[T]`, que monta
// Query e Scan de forma fluente sobre os Expression Builders do SDK.
//
// Paginação:
//   - `All` segue as continuações até o fim da tabela, reaplicando o mesmo filtro.
//
// Update com `MustExist` condiciona a escrita a attribute_exists da hash key
// e devolve ErrNotFound quando o item não existe.
//
// Exemplo:
//
//	store := dyndb.New[map[string]any](client, dyndb.TableConfig{
//		TableName: "Employees",
//		HashKey:   "id",
//	})
//
//	items, err := store.Scan().
//		FilterEqual("email_address", "john@example.com").
//		All(ctx)
package dyndb
