package main

import (
	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/deadpages/cmd/deadpages/commands"
	"git.home.luguber.info/inful/deadpages/internal/version"
)

func main() {
	cli := &commands.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("deadpages"),
		kong.Description("Find Markdown files in a book's source tree that are not referenced from SUMMARY.md."),
		kong.UsageOnError(),
		kong.Vars{"version": version.Version},
	)

	err := ctx.Run(&commands.Global{})
	ctx.FatalIfErrorf(err)
}
