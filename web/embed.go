// Package web embeds the chat widget page. The widget is intentionally tiny:
// all conversation state lives server-side, the page only renders events and
// posts submissions.
package web

import "embed"

//go:embed all:static
var Static embed.FS
