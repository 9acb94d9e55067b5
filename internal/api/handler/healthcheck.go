package handler

import (
	"net/http"

	"github.com/vfg2006/marketing-analytics-api/pkg/log"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		err := json.NewEncoder(w).Encode(map[string]string{
			"status":  "ok",
			"message": "API em funcionamento",
		})
		if err != nil {
			log.L.WithError(err).Warn("erro ao responder ao healthcheck")
		}
	})
}
