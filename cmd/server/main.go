package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/raywall/employee-service/dyndb"
	"github.com/raywall/employee-service/pkg/config"
	"github.com/raywall/employee-service/pkg/employee"
	"github.com/raywall/employee-service/pkg/logger"
	"github.com/raywall/employee-service/pkg/metrics"
	"github.com/raywall/employee-service/pkg/observability"
	"github.com/raywall/employee-service/pkg/resource"
	"github.com/raywall/employee-service/pkg/transport"
	zlog "github.com/rs/zerolog/log"
)

var (
	configPath string
	// Variáveis injetáveis para mocking
	serverStarter = transport.StartHTTPServer
	lambdaStarter = lambda.Start
)

// newDynamoClient usa a cadeia padrão de credenciais; endpoint aponta para
// um DynamoDB local quando informado.
var newDynamoClient = func(ctx context.Context, endpoint string) (dyndb.DynamoDBClient, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("falha ao carregar credenciais AWS: %w", err)
	}
	return dynamodb.NewFromConfig(awsCfg, func(o *dynamodb.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
		}
	}), nil
}

func init() {
	// Vazio é válido: só defaults e variáveis de ambiente
	configPath = os.Getenv("CONFIG_FILE_PATH")
}

func main() {
	if err := run(context.Background(), configPath); err != nil {
		log.Fatalf("FATAL: %v", err)
	}
}

// run contém a lógica principal testável
func run(ctx context.Context, cfgPath string) error {
	cfg, err := config.NewLoader().Load(ctx, cfgPath)
	if err != nil {
		return err
	}

	logger.Configure(cfg.Service.Logging, cfg.Service.Name)

	provider, err := observability.SetupMetrics(cfg.Service.Metrics, cfg.Service.Name)
	if err != nil {
		return err
	}

	client, err := newDynamoClient(ctx, cfg.Resource.Endpoint)
	if err != nil {
		return err
	}

	desc, err := employee.NewDescriptor(cfg.Resource)
	if err != nil {
		return err
	}

	repo := resource.NewDynamoRepository(client, dyndb.TableConfig{
		TableName: cfg.Resource.TableName,
		HashKey:   cfg.Resource.HashKey,
	})
	handler := resource.NewHandler(desc, repo,
		resource.WithCORS(cfg.CORS),
		resource.WithRecorder(metrics.NewRecorder(provider)),
	)

	zlog.Info().
		Str("runtime", cfg.Service.Runtime).
		Str("resource", cfg.Resource.Name).
		Str("table", cfg.Resource.TableName).
		Msg("serviço inicializado")

	switch cfg.Service.Runtime {
	case "local":
		return serverStarter(cfg.Service.Port, handler)
	case "lambda":
		var opts []transport.LambdaOption
		if closer, ok := provider.(io.Closer); ok {
			opts = append(opts, transport.WithFlusher(closer.Close))
		}
		lambdaStarter(transport.NewLambdaHandler(handler, opts...).Handle)
		return nil
	default:
		return fmt.Errorf("runtime desconhecido: %s", cfg.Service.Runtime)
	}
}
