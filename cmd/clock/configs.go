package main

import "embed"

//go:embed configs/*.json
var configFS embed.FS
