package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/raywall/employee-service/pkg/config"
	"github.com/raywall/employee-service/pkg/employee"
	"github.com/raywall/employee-service/pkg/resource"
)

// report é a saída JSON do validate, consumida pelo pipeline de deploy.
type report struct {
	Valid    bool     `json:"valid"`
	Source   string   `json:"source"`
	Resource string   `json:"resource,omitempty"`
	Table    string   `json:"table,omitempty"`
	Routes   []string `json:"routes,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

func main() {
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)
	filePtr := validateCmd.String("file", "", "Caminho do arquivo YAML ou URI s3://, ssm://, secretsmanager://")

	if len(os.Args) < 2 {
		fmt.Println("Comandos esperados: validate")
		os.Exit(1)
	}

	switch os.Args[1] {
	case "validate":
		validateCmd.Parse(os.Args[2:])
		if *filePtr == "" {
			fmt.Println("Erro: flag -file é obrigatória")
			os.Exit(1)
		}
		jsonOut := os.Getenv("OUTPUT_FORMAT") == "json"
		if err := runValidate(context.Background(), config.NewLoader(), *filePtr, jsonOut, os.Stdout); err != nil {
			os.Exit(1) // Falha no CI
		}
	default:
		fmt.Println("Comando desconhecido")
		os.Exit(1)
	}
}

// runValidate carrega a configuração pela mesma cadeia do servidor
// (fonte, ambiente, validação, descritor do recurso) e imprime a tabela de
// rotas resultante.
func runValidate(ctx context.Context, loader *config.Loader, source string, jsonOut bool, out io.Writer) error {
	rep := report{Source: source}

	cfg, err := loader.Load(ctx, source)
	if err == nil {
		_, err = employee.NewDescriptor(cfg.Resource)
	}
	if err != nil {
		rep.Errors = append(rep.Errors, err.Error())
	} else {
		rep.Valid = true
		rep.Resource = cfg.Resource.Name
		rep.Table = cfg.Resource.TableName
		for _, e := range resource.NewRouter(cfg.Resource.Name).Routes() {
			rep.Routes = append(rep.Routes, e.Method+" "+e.Template)
		}
	}

	if jsonOut {
		if encErr := json.NewEncoder(out).Encode(rep); encErr != nil {
			return encErr
		}
		return err
	}

	fmt.Fprintf(out, "🔍 Analisando configuração: %s ...\n", source)
	if err != nil {
		fmt.Fprintf(out, "❌ Erro de Carregamento/Estrutura:\n%v\n", err)
		return err
	}
	for _, r := range rep.Routes {
		fmt.Fprintf(out, " - %s\n", r)
	}
	fmt.Fprintln(out, "✅ Configuração Válida e Pronta para Deploy!")
	return nil
}
