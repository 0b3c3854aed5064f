package main

import (
	"github.com/alecthomas/kong"

	"droscher.com/AuthenticEats/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("Authentic Eats"), kong.Description("AuthenticEats is a restaurant discovery and authenticity review service."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
