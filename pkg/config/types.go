package config

// ServiceConfig representa a estrutura raiz do arquivo YAML do serviço.
type ServiceConfig struct {
	Version  string         `yaml:"version" validate:"required"`
	Service  ServiceDetails `yaml:"service" validate:"required"`
	Resource ResourceConf   `yaml:"resource" validate:"required"`
	CORS     CORSConf       `yaml:"cors"`
}

// ServiceDetails contém os metadados e configurações de runtime do serviço.
type ServiceDetails struct {
	Name    string      `yaml:"name" env:"SERVICE_NAME" validate:"required,hostname_rfc1123"`
	Runtime string      `yaml:"runtime" env:"SERVICE_RUNTIME" validate:"required,oneof=local lambda"`
	Port    int         `yaml:"port" env:"PORT" validate:"required_if=Runtime local,gte=0,lte=65535"`
	Logging LoggingConf `yaml:"logging"`
	Metrics MetricsConf `yaml:"metrics"`
}

// ResourceConf é o descritor da entidade exposta: nome do recurso na rota,
// tabela, chave de partição e campo usado na busca paginada.
type ResourceConf struct {
	Name            string `yaml:"name" env:"RESOURCE_NAME" validate:"required,excludesall=/{} "`
	TableName       string `yaml:"table_name" env:"DYNAMODB_TABLE_NAME" validate:"required"`
	HashKey         string `yaml:"hash_key" env:"DYNAMODB_HASH_KEY" validate:"required"`
	SearchField     string `yaml:"search_field" env:"RESOURCE_SEARCH_FIELD" validate:"required"`
	DefaultPageSize int    `yaml:"default_page_size" env:"RESOURCE_DEFAULT_PAGE_SIZE" validate:"gte=1,lte=1000"`
	Endpoint        string `yaml:"endpoint" env:"DYNAMODB_ENDPOINT" validate:"omitempty,url"` // DynamoDB local
}

type CORSConf struct {
	AllowHeaders []string `yaml:"allow_headers" env:"CORS_ALLOW_HEADERS" validate:"required"`
	AllowOrigin  string   `yaml:"allow_origin" env:"CORS_ALLOW_ORIGIN" validate:"required"`
	AllowMethods []string `yaml:"allow_methods" env:"CORS_ALLOW_METHODS" validate:"required,dive,oneof=OPTIONS GET POST PUT PATCH DELETE HEAD"`
}

type LoggingConf struct {
	Enabled bool   `yaml:"enabled" env:"LOG_ENABLED"`
	Level   string `yaml:"level" env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error"`
	Format  string `yaml:"format" env:"LOG_FORMAT" validate:"omitempty,oneof=json console"`
}

type MetricsConf struct {
	Datadog DatadogConf `yaml:"datadog"`
}

type DatadogConf struct {
	Enabled   bool     `yaml:"enabled" env:"DD_ENABLED"`
	Addr      string   `yaml:"addr" env:"DD_AGENT_HOST" validate:"required_if=Enabled true"`
	Namespace string   `yaml:"namespace" env:"DD_NAMESPACE"`
	Tags      []string `yaml:"tags" env:"DD_TAGS"`
}

// Default devolve a configuração base sobre a qual o YAML e o ambiente
// são aplicados. Reproduz os valores fixos do handler original.
func Default() ServiceConfig {
	return ServiceConfig{
		Version: "1.0",
		Service: ServiceDetails{
			Name:    "employee-service",
			Runtime: "lambda",
			Logging: LoggingConf{Enabled: true, Level: "info", Format: "json"},
		},
		Resource: ResourceConf{
			Name:            "employees",
			TableName:       "Employees",
			HashKey:         "id",
			SearchField:     "email_address",
			DefaultPageSize: 10,
		},
		CORS: CORSConf{
			AllowHeaders: []string{"Content-Type"},
			AllowOrigin:  "*",
			AllowMethods: []string{"OPTIONS", "POST", "GET", "PUT", "DELETE"},
		},
	}
}
