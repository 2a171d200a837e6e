package httputils

import (
	"git.gammaspectra.live/P2Pool/pool-dashboard/utils"
	"io"
	"net/http"
	"strings"
)

func EncodeJson(r *http.Request, writer io.Writer, d any) error {
	encoder := utils.NewJSONEncoder(writer)
	if strings.Index(strings.ToLower(r.Header.Get("user-agent")), "mozilla") != -1 {
		encoder.SetIndent("", "    ")
	}
	return encoder.EncodeWithOption(d, utils.JsonEncodeOptions...)
}

type errorResponse struct {
	Error string `json:"error"`
}

// WriteJson sets the JSON content type and status, then encodes d
func WriteJson(r *http.Request, writer http.ResponseWriter, status int, d any) error {
	writer.Header().Set("content-type", "application/json; charset=utf-8")
	writer.WriteHeader(status)
	return EncodeJson(r, writer, d)
}

// WriteJsonError responds with a {"error": message} body
func WriteJsonError(r *http.Request, writer http.ResponseWriter, status int, message string) error {
	return WriteJson(r, writer, status, errorResponse{Error: message})
}
