// Package web embeds the single-page order board UI. The page is a thin DOM
// binding over the JSON API; all state transitions happen server-side.
package web

import "embed"

//go:embed index.html
var FS embed.FS
