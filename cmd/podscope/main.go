// filepath: cmd/podscope/main.go
package main

import (
	"embed"

	"podscope/internal/cli"

	// Import docs for Swagger
	_ "podscope/docs"
)

//go:embed templates
var templatesFS embed.FS

// @title podscope API
// @version 1.0.0
// @description A demonstration service for container-orchestration pedagogy: pod identity, a per-replica visit counter and time-gated readiness.
// @BasePath /
// @schemes http

func main() {
	// Delegate all execution to the CLI package
	cli.Execute(templatesFS)
}
