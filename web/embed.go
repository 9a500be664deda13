// Package web bundles the browser client that cmd/battleship serves
// alongside the JSON API.
package web

import (
	"embed"
	"net/http"
)

//go:embed index.html styles.css app.js
var assets embed.FS

// Static serves the embedded client files.
func Static() http.FileSystem {
	return http.FS(assets)
}
