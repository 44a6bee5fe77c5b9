package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"strings"

	"github.com/kr/pretty"
	"github.com/urfave/cli/v2"

	"nstravel/pkg/nsdata"
	"nstravel/pkg/travelinfo"
)

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "construct a record of the given schema from a JSON document",
		ArgsUsage: "<schema> [file]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "schemas", Usage: "schema file to use instead of the built-in one"},
			&cli.BoolFlag{Name: "list", Usage: "list the known schemas"},
		},
		Action: func(c *cli.Context) error {
			reg, err := loadRegistry(c.String("schemas"))
			if err != nil {
				return err
			}
			if c.Bool("list") {
				for _, name := range reg.Names() {
					fmt.Fprintln(c.App.Writer, name)
				}
				return nil
			}
			if c.NArg() < 1 {
				return cli.Exit("expected a schema name", 2)
			}

			var in io.Reader = os.Stdin
			if path := c.Args().Get(1); path != "" && path != "-" {
				f, err := os.Open(path)
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			m, err := readJSONObject(in)
			if err != nil {
				return err
			}

			opts := []nsdata.Option{nsdata.WithLogger(slog.Default())}
			if c.Bool("strict") {
				opts = append(opts, nsdata.WithStrict())
			}
			inst, err := reg.Construct(c.Args().First(), m, opts...)
			if err != nil {
				return err
			}
			if c.Bool("json") {
				return writeJSON(c.App.Writer, inst.Map())
			}
			_, err = pretty.Fprintf(c.App.Writer, "%# v\n", inst.Map())
			return err
		},
	}
}

func rawCommand() *cli.Command {
	return &cli.Command{
		Name:      "raw",
		Usage:     "GET an API path and print the JSON body",
		ArgsUsage: "<path> [key=value...]",
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return cli.Exit("expected a path", 2)
			}
			client, err := apiClient(c)
			if err != nil {
				return err
			}
			params := url.Values{}
			for _, kv := range c.Args().Tail() {
				k, v, ok := strings.Cut(kv, "=")
				if !ok {
					return cli.Exit("parameters must look like key=value, got "+kv, 2)
				}
				params.Add(k, v)
			}
			body, err := client.Raw(c.Context, c.Args().First(), params)
			if err != nil {
				return err
			}
			return writeJSON(c.App.Writer, body)
		},
	}
}

func loadRegistry(path string) (*nsdata.Registry, error) {
	if path == "" {
		return travelinfo.Registry()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return nsdata.LoadRegistry(data)
}

// readJSONObject decodes a single JSON object, keeping numbers as
// json.Number like the API client does.
func readJSONObject(r io.Reader) (map[string]any, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("decoding input: %w", err)
	}
	if m == nil {
		return nil, fmt.Errorf("decoding input: expected a JSON object")
	}
	return m, nil
}
