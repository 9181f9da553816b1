package handler

import "net/http"

// HandleRoot is the liveness check.
//
// GET /
func HandleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "OSS Maintainer Matching Service API"})
}
