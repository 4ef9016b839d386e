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
// Package employeeservice expõe o cadastro de funcionários como um endpoint
// CRUD sobre uma tabela DynamoDB, atendendo tanto API Gateway (Lambda) quanto
// um servidor HTTP local.
//
// Visão Geral:
// Uma requisição percorre sempre o mesmo caminho:
//  1. transport traduz o evento (APIGatewayProxyRequest ou http.Request) em resource.Request.
//  2. resource.Handler roteia por (método, template), valida o corpo contra o
//     shape de create ou update e chama o Repository.
//  3. resource.Formatter serializa o resultado ou o erro e anexa os cabeçalhos CORS.
//
// Sub-Pacotes Principais:
//
// 1. dyndb:
//   - Store[T] genérico sobre o SDK v2, com Query/Scan fluentes e continuação.
//
// 2. envloader:
//   - Sobrescrita da configuração via tags "env", "envDefault" e "envRequired".
//
// 3. pkg/resource:
//   - Roteamento, validação, UpdateExpression, paginação e envelope de resposta.
//
// 4. pkg/employee:
//   - Os campos do funcionário e os shapes de create e update.
//
// 5. pkg/config, pkg/logger, pkg/metrics, pkg/observability:
//   - YAML multi-fonte, zerolog e métricas Datadog.
//
// Rotas atendidas (com resource.name = "employees"):
//
//	PUT    /employees           create (sem id) ou update parcial (com id)
//	GET    /employees/{id}      busca por id
//	DELETE /employees/{id}      remoção por id
//	GET    /employees/search    busca por email_address, paginada
//	GET    /employees           scan completo
//
// Exemplo de Início Rápido:
//
//	CONFIG_FILE_PATH=./service.yaml SERVICE_RUNTIME=local PORT=8080 go run ./cmd/server
//	go run ./cmd/toolkit validate -file s3://bucket/service.yaml
package employeeservice
