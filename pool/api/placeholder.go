package api

import (
	"bytes"
	_ "embed"
	"fmt"
	"github.com/valyala/fastjson"
	"io"
	"net/http"
	"strconv"
)

// PlaceholderHost is the Host of clients serving the built-in placeholder data
const PlaceholderHost = "http://placeholder.invalid"

//go:embed placeholder/pools.json
var placeholderDocument []byte

// placeholderTransport answers pool API requests from an in-memory document set
type placeholderTransport struct {
	documents map[string][]byte
}

func newPlaceholderTransport(document []byte) (*placeholderTransport, error) {
	v, err := fastjson.ParseBytes(document)
	if err != nil {
		return nil, fmt.Errorf("%w: placeholder: %w", ErrMalformedResponse, err)
	}

	t := &placeholderTransport{
		documents: make(map[string][]byte),
	}

	pools := v.GetArray("pools")
	t.documents["/pools"] = wrapDocument("pools", v.Get("pools"))
	for _, pool := range pools {
		id := str(pool, "id")
		if id == "" {
			continue
		}
		t.documents[poolPath(id)] = wrapDocument("pool", pool)
	}

	for resource, key := range map[string]string{"blocks": "blocks", "payments": "payments", "performance": "stats"} {
		o := v.GetObject(resource)
		if o == nil {
			continue
		}
		o.Visit(func(id []byte, list *fastjson.Value) {
			t.documents[poolPath(string(id), resource)] = wrapDocument(key, list)
		})
	}

	return t, nil
}

func wrapDocument(key string, v *fastjson.Value) []byte {
	buf := []byte(`{` + strconv.Quote(key) + `:`)
	if v == nil {
		buf = append(buf, `[]`...)
	} else {
		buf = v.MarshalTo(buf)
	}
	return append(buf, '}')
}

func (t *placeholderTransport) RoundTrip(request *http.Request) (*http.Response, error) {
	response := &http.Response{
		Proto:      "HTTP/1.1",
		ProtoMajor: 1,
		ProtoMinor: 1,
		Header:     make(http.Header),
		Request:    request,
	}

	body, ok := t.documents[request.URL.EscapedPath()]
	if !ok || request.Method != http.MethodGet {
		response.StatusCode = http.StatusNotFound
		body = nil
	} else {
		response.StatusCode = http.StatusOK
		response.Header.Set("content-type", "application/json")
	}
	response.Status = fmt.Sprintf("%d %s", response.StatusCode, http.StatusText(response.StatusCode))
	response.ContentLength = int64(len(body))
	response.Body = io.NopCloser(bytes.NewReader(body))
	return response, nil
}

// NewPlaceholderClient returns a client serving a fixed set of example pools without any upstream API.
// Wallet lookups fall back to the approximation from pool figures.
func NewPlaceholderClient() *Client {
	transport, err := newPlaceholderTransport(placeholderDocument)
	if err != nil {
		panic(err)
	}
	c := NewClient(PlaceholderHost)
	c.StratumHost = "{id}.localhost"
	c.Client.Transport = transport
	return c
}
