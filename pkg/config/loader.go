package config

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/raywall/employee-service/envloader"
	"gopkg.in/yaml.v3"
)

// --- Interfaces para Mocking ---

type S3Downloader interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
}

type SSMClient interface {
	GetParameter(ctx context.Context, params *ssm.GetParameterInput, optFns ...func(*ssm.Options)) (*ssm.GetParameterOutput, error)
}

type SecretsClient interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// Loader carrega o YAML do serviço a partir de arquivo local, S3, SSM
// Parameter Store ou Secrets Manager, aplica as variáveis de ambiente e valida.
type Loader struct {
	validator *ConfigValidator
	awsConfig func(ctx context.Context) (aws.Config, error)

	s3Client      S3Downloader
	ssmClient     SSMClient
	secretsClient SecretsClient
}

type LoaderOption func(*Loader)

func WithS3Client(c S3Downloader) LoaderOption       { return func(l *Loader) { l.s3Client = c } }
func WithSSMClient(c SSMClient) LoaderOption         { return func(l *Loader) { l.ssmClient = c } }
func WithSecretsClient(c SecretsClient) LoaderOption { return func(l *Loader) { l.secretsClient = c } }

// NewLoader cria uma nova instância. Clientes AWS não informados são criados
// sob demanda a partir de config.LoadDefaultConfig.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{
		validator: NewValidator(),
		awsConfig: func(ctx context.Context) (aws.Config, error) {
			return awsconfig.LoadDefaultConfig(ctx)
		},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load detecta o esquema da fonte e carrega a configuração. Uma fonte vazia
// usa apenas os valores padrão e o ambiente.
func (l *Loader) Load(ctx context.Context, source string) (*ServiceConfig, error) {
	var rawData []byte
	var err error

	switch {
	case source == "":
	case strings.HasPrefix(source, "s3://"):
		rawData, err = l.loadFromS3(ctx, source)
	case strings.HasPrefix(source, "ssm://"):
		rawData, err = l.loadFromSSM(ctx, strings.TrimPrefix(source, "ssm://"))
	case strings.HasPrefix(source, "secretsmanager://"):
		rawData, err = l.loadFromSecrets(ctx, strings.TrimPrefix(source, "secretsmanager://"))
	default:
		rawData, err = os.ReadFile(strings.TrimPrefix(source, "file://"))
	}
	if err != nil {
		return nil, fmt.Errorf("falha leitura config (%s): %w", source, err)
	}

	return l.parseAndValidate(rawData)
}

func (l *Loader) loadFromS3(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("URL S3 inválida: %w", err)
	}
	bucket := u.Host
	key := strings.TrimPrefix(u.Path, "/")

	if l.s3Client == nil {
		cfg, err := l.awsConfig(ctx)
		if err != nil {
			return nil, err
		}
		l.s3Client = s3.NewFromConfig(cfg)
	}

	out, err := l.s3Client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, err
	}
	defer out.Body.Close()

	return io.ReadAll(out.Body)
}

func (l *Loader) loadFromSSM(ctx context.Context, name string) ([]byte, error) {
	if l.ssmClient == nil {
		cfg, err := l.awsConfig(ctx)
		if err != nil {
			return nil, err
		}
		l.ssmClient = ssm.NewFromConfig(cfg)
	}

	out, err := l.ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(name),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("erro no SSM GetParameter: %w", err)
	}
	if out.Parameter == nil || out.Parameter.Value == nil {
		return nil, fmt.Errorf("parâmetro SSM '%s' vazio", name)
	}
	return []byte(*out.Parameter.Value), nil
}

func (l *Loader) loadFromSecrets(ctx context.Context, secretID string) ([]byte, error) {
	if l.secretsClient == nil {
		cfg, err := l.awsConfig(ctx)
		if err != nil {
			return nil, err
		}
		l.secretsClient = secretsmanager.NewFromConfig(cfg)
	}

	out, err := l.secretsClient.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretID),
	})
	if err != nil {
		return nil, fmt.Errorf("erro no SecretsManager: %w", err)
	}
	if out.SecretString == nil {
		return nil, fmt.Errorf("segredo '%s' sem SecretString", secretID)
	}
	return []byte(*out.SecretString), nil
}

// parseAndValidate aplica YAML -> ambiente -> validação, nessa ordem.
func (l *Loader) parseAndValidate(data []byte) (*ServiceConfig, error) {
	cfg := Default()

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("YAML malformado: %w", err)
		}
	}

	if err := envloader.Load(&cfg); err != nil {
		return nil, fmt.Errorf("falha na leitura do ambiente: %w", err)
	}

	if err := l.validator.Validate(&cfg); err != nil {
		return nil, fmt.Errorf("validação da configuração falhou: %w", err)
	}

	return &cfg, nil
}
