package handler

import (
	"net/http"
	"user_api/internal/common"
	"user_api/internal/domain/model"
)

// Healthcheck is unauthenticated and reports a constant status.
func Healthcheck(w http.ResponseWriter, r *http.Request) {
	common.RespondWithJSON(w, http.StatusOK, model.Healthcheck{Status: "ok"})
}
