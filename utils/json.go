package utils

import (
	"github.com/goccy/go-json"
	"io"
)

var JsonEncodeOptions = []json.EncodeOptionFunc{json.DisableHTMLEscape(), json.DisableNormalizeUTF8()}

func UnmarshalJSON(data []byte, val any) error {
	return json.UnmarshalNoEscape(data, val)
}

func NewJSONEncoder(writer io.Writer) *json.Encoder {
	return json.NewEncoder(writer)
}
