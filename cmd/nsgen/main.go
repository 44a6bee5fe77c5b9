// Command nsgen generates the typed travel information records and their
// decoders from a schema file.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "nsgen",
		Usage: "generate Go records from a schema file",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "in", Value: "schemas.yaml"},
			&cli.StringFlag{Name: "out", Value: "zz_generated.go"},
			&cli.StringFlag{Name: "package", Required: true},
		},
		Action: func(c *cli.Context) error {
			data, err := os.ReadFile(c.String("in"))
			if err != nil {
				return err
			}
			src, err := Generate(data, filepath.Base(c.String("in")), c.String("package"))
			if err != nil {
				return err
			}
			return os.WriteFile(c.String("out"), src, 0o644)
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "nsgen:", err)
		os.Exit(1)
	}
}
