package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/nestruts/palgen"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "palgen"
	app.Usage = "Generate a source code array from a .pal palette file"
	app.Version = "1.0.0"
	app.ArgsUsage = "FILE"

	// Any filename is valid, including "help" and "h"
	app.HideHelp = true

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.HelpPrinter(cli.ErrWriter, cli.AppHelpTemplate, c.App)
			return cli.NewExitError("palgen: missing FILE argument", 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		g := palgen.New(logger)

		if err := g.GenerateFile(c.App.Writer, c.Args().First()); err != nil {
			return cli.NewExitError(err, 1)
		}

		return nil
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
