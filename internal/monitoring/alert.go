package monitoring

import (
	"github.com/rs/zerolog/log"
)

// DataQualityAlert logs a data-quality finding (for now an alert is
// just a structured log entry).
func DataQualityAlert(message string, labels map[string]string) {
	log.Error().
		Str("alert", message).
		Fields(labels).
		Msg("ALERT: data quality issue detected")
}
