package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var SizesDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "preview_sizes_decoded_total",
}, []string{"variant"})
var SizesRegistered = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "preview_sizes_registered_total",
}, []string{"source"})
var DecodeAnomalies = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "preview_decode_anomalies_total",
}, []string{"kind"})
var WebDocumentsDecoded = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "preview_web_documents_decoded_total",
}, []string{"outcome"})
var MinithumbnailsExpanded = prometheus.NewCounter(prometheus.CounterOpts{
	Name: "preview_minithumbnails_expanded_total",
})

func init() {
	prometheus.MustRegister(SizesDecoded)
	prometheus.MustRegister(SizesRegistered)
	prometheus.MustRegister(DecodeAnomalies)
	prometheus.MustRegister(WebDocumentsDecoded)
	prometheus.MustRegister(MinithumbnailsExpanded)
}
