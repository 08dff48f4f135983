package web

import "embed"

//go:embed all:static
var Static embed.FS
