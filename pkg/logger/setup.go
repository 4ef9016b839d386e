package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/raywall/employee-service/pkg/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Configure inicializa o logger global baseando-se na configuração do YAML.
func Configure(cfg config.LoggingConf, service string) zerolog.Logger {
	return ConfigureWriter(cfg, service, os.Stdout)
}

// ConfigureWriter é o Configure com destino explícito (usado nos testes).
func ConfigureWriter(cfg config.LoggingConf, service string, out io.Writer) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(cfg.Level))
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	// JSON para produção, Console "bonito" para local se solicitado
	output := out
	if !cfg.Enabled {
		output = io.Discard
	} else if cfg.Format == "console" {
		output = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	logger := zerolog.New(output).
		With().
		Timestamp().
		Str("service", service).
		Logger()

	// log.Ctx cai no DefaultContextLogger quando o ctx não tem logger
	log.Logger = logger
	zerolog.DefaultContextLogger = &logger

	return logger
}
