package metrics

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// Recorder traduz eventos do dispatcher em métricas do Provider.
// Falhas de envio são apenas logadas: métrica nunca derruba uma requisição.
type Recorder struct {
	provider Provider
}

func NewRecorder(p Provider) *Recorder {
	return &Recorder{provider: p}
}

// ObserveRequest registra contagem e latência por rota e status HTTP.
func (r *Recorder) ObserveRequest(route string, status int, latency time.Duration) {
	if r == nil || r.provider == nil {
		return
	}
	tags := []string{"route:" + route, fmt.Sprintf("status:%d", status)}

	if err := r.provider.Count(MetricRequests, 1, tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricRequests).Msg("falha ao enviar métrica")
	}
	if err := r.provider.Histogram(MetricLatency, float64(latency.Milliseconds()), tags); err != nil {
		log.Warn().Err(err).Str("metric", MetricLatency).Msg("falha ao enviar métrica")
	}
}

// ObserveSearch registra quantos itens casaram com o filtro da busca.
func (r *Recorder) ObserveSearch(matched int) {
	if r == nil || r.provider == nil {
		return
	}
	if err := r.provider.Gauge(MetricSearchResult, float64(matched), nil); err != nil {
		log.Warn().Err(err).Str("metric", MetricSearchResult).Msg("falha ao enviar métrica")
	}
}
