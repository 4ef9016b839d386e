package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/raywall/employee-service/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "service.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunValidate_HappyPath(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
service:
  name: "cli-test"
  runtime: "local"
  port: 8080
resource:
  name: "employees"
  table_name: "Employees"
  hash_key: "id"
  search_field: "email_address"
`)

	var out bytes.Buffer
	err := runValidate(context.Background(), config.NewLoader(), path, false, &out)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "GET /employees/search")
	assert.Contains(t, out.String(), "DELETE /employees/{id}")
	assert.Contains(t, out.String(), "Configuração Válida")
}

func TestRunValidate_JSONReport(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
service: {name: "cli-test", runtime: "lambda"}
resource: {name: "staff", table_name: "Staff", hash_key: "id", search_field: "email_address"}
`)

	var out bytes.Buffer
	require.NoError(t, runValidate(context.Background(), config.NewLoader(), path, true, &out))

	var rep report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.True(t, rep.Valid)
	assert.Equal(t, "staff", rep.Resource)
	assert.Equal(t, "Staff", rep.Table)
	assert.Len(t, rep.Routes, 5)
}

func TestRunValidate_Invalid(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
service: {name: "cli-test", runtime: "lambda"}
resource: {name: "employees", table_name: "Employees", hash_key: "id", search_field: "id"}
`)

	var out bytes.Buffer
	err := runValidate(context.Background(), config.NewLoader(), path, true, &out)

	require.Error(t, err)
	var rep report
	require.NoError(t, json.Unmarshal(out.Bytes(), &rep))
	assert.False(t, rep.Valid)
	assert.NotEmpty(t, rep.Errors)
}

func TestRunValidate_HashKeyMustBeID(t *testing.T) {
	path := writeConfig(t, `
version: "1.0"
service: {name: "cli-test", runtime: "lambda"}
resource: {name: "employees", table_name: "Employees", hash_key: "pk", search_field: "email_address"}
`)

	var out bytes.Buffer
	err := runValidate(context.Background(), config.NewLoader(), path, false, &out)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "hash key")
	assert.NotContains(t, out.String(), "Configuração Válida")
}
