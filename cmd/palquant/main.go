package main

import (
	"io/ioutil"
	"log"
	"os"

	"github.com/nestruts/palgen"
	"github.com/urfave/cli/v2"
)

// Size of the NES system palette
const defaultColors = 64

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "palquant"
	app.Usage = "Derive a .pal palette file from an image"
	app.Description = "The raw palette is written to standard output"
	app.Version = "1.0.0"
	app.ArgsUsage = "IMAGE"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
		&cli.IntFlag{
			Name:  "colors",
			Value: defaultColors,
			Usage: "maximum number of colors",
		},
	}

	app.Action = func(c *cli.Context) error {
		if c.NArg() < 1 {
			cli.HelpPrinter(cli.ErrWriter, cli.AppHelpTemplate, c.App)
			return cli.NewExitError("palquant: missing IMAGE argument", 1)
		}

		logger := log.New(ioutil.Discard, "", 0)
		if c.Bool("verbose") {
			logger.SetOutput(os.Stderr)
		}

		g := palgen.New(logger)

		if err := g.Quantize(c.App.Writer, c.Args().First(), c.Int("colors")); err != nil {
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
