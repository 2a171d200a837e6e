package main

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed assets
var assets embed.FS

func staticHandler() http.Handler {
	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		panic(err)
	}
	fileServer := http.StripPrefix("/static/", http.FileServer(http.FS(sub)))
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		// let the file server pick the content type
		writer.Header().Del("content-type")
		writer.Header().Set("cache-control", "public, max-age=86400")
		fileServer.ServeHTTP(writer, request)
	})
}
