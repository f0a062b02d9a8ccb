package handler

import (
	"net/http"
	"time"
)

// SessionCounter informa quantas sessões estão abertas
type SessionCounter interface {
	Count() int
}

type HealthcheckResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Sessions int       `json:"sessions"`
}

func HealthcheckHandler(sessions SessionCounter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, HealthcheckResponse{
			Status:   "ok",
			Time:     time.Now(),
			Sessions: sessions.Count(),
		})
	})
}
