// Package main is the shaengine CLI entrypoint.
package main

import (
	"os"

	"shaengine/internal/app"
)

func main() {
	application := app.New()
	os.Exit(application.Run(os.Args[1:]))
}
