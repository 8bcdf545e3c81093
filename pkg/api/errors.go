package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/hatchdotlol/passcheck/pkg/models"
)

const somethingWentWrong = "Something went wrong"

// sendJSON writes v without HTML escaping; generated passwords contain
// '<', '>' and '&' and must reach the client unchanged.
func sendJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		http.Error(w, somethingWentWrong, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(bytes.TrimSuffix(buf.Bytes(), []byte("\n")))
}

func sendError(w http.ResponseWriter, code int, message string) {
	sendJSON(w, code, models.ErrorResp{Success: false, Message: message})
}
