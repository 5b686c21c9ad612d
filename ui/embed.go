package ui

import "embed"

//go:embed templates/*.html templates/fragments/*.html static/*
var embeddedFiles embed.FS
