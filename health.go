package caltrainlive

import (
	"net/http"
)

type healthResponse struct {
	Status            string `json:"status"`
	CatalogAgeSeconds int64  `json:"catalog_age_seconds"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", CatalogAgeSeconds: -1}
	if age, ok := service.catalog.Age(); ok {
		resp.CatalogAgeSeconds = int64(age.Seconds())
	}
	writeJSON(w, http.StatusOK, resp)
}
