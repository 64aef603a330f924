// cmd/mirureader/main.go
package main

import (
	"mirureader/internal/app"
	"mirureader/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
