package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"github.com/pontaoski/lox/ast"
)

func readSource(path string) (string, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return "", tracerr.Wrap(err)
	}
	return string(data), nil
}

// prepare loads settings, applies flag overrides and sets up logging.
func prepare(c *cli.Context) (*session, error) {
	path := c.String("config")
	settings, err := loadSettings(path, c.IsSet("config"))
	if err != nil {
		return nil, err
	}
	if c.IsSet("log-level") {
		settings.LogLevel = c.String("log-level")
	}
	if c.Bool("no-color") {
		settings.Color = false
	}

	if err := setupLogging(os.Stderr, settings.LogLevel); err != nil {
		return nil, err
	}
	plog.Debugf("settings: %+v", settings)

	return newSession(os.Stdout, os.Stderr, settings), nil
}

func exitFor(s *session) error {
	if code := s.exitStatus(); code != 0 {
		return cli.Exit("", code)
	}
	return nil
}

func sourceArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", cli.Exit(fmt.Sprintf("Usage: lox %s <script>", c.Command.Name), exitUsage)
	}
	return readSource(c.Args().First())
}

func main() {
	app := &cli.App{
		Name:      "lox",
		Usage:     "lox interpreter",
		ArgsUsage: "[script]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "print-ast",
				Aliases: []string{"p"},
				Usage:   "print a sample syntax tree",
			},
			&cli.StringFlag{
				Name:  "config",
				Value: settingsFile,
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "one of CRITICAL, ERROR, WARNING, NOTICE, INFO, DEBUG, TRACE",
			},
			&cli.BoolFlag{
				Name: "no-color",
			},
		},
		ExitErrHandler: func(context *cli.Context, err error) {
			if err == nil {
				return
			}
			if _, ok := err.(cli.ExitCoder); ok {
				cli.HandleExitCoder(err)
				return
			}
			tracerr.PrintSourceColor(err)
			cli.OsExiter(1)
		},
		Action: func(c *cli.Context) error {
			if c.NArg() > 1 {
				return cli.Exit("Usage: lox [script]", exitUsage)
			}

			s, err := prepare(c)
			if err != nil {
				return err
			}

			if c.Bool("print-ast") {
				fmt.Fprintln(s.out, ast.Format(demoExpression()))
			}

			if c.NArg() == 0 {
				return s.runPrompt(os.Stdin)
			}

			source, err := readSource(c.Args().First())
			if err != nil {
				return err
			}
			if err := s.run(source); err != nil {
				return err
			}
			return exitFor(s)
		},
		Commands: []*cli.Command{
			{
				Name:  "init",
				Usage: "write a default settings file",
				Action: func(c *cli.Context) error {
					path := c.String("config")
					if _, err := os.Stat(path); err == nil {
						return cli.Exit(fmt.Sprintf("%s already exists", path), 1)
					}
					return writeSettings(path, defaultSettings())
				},
			},
			{
				Name:      "tokens",
				Usage:     "print the tokens of a script",
				ArgsUsage: "<script>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "raw",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					source, err := sourceArg(c)
					if err != nil {
						return err
					}
					s, err := prepare(c)
					if err != nil {
						return err
					}
					if err := s.dumpTokens(source, c.Bool("raw")); err != nil {
						return err
					}
					return exitFor(s)
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of a script",
				ArgsUsage: "<script>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "raw",
						Value: false,
					},
				},
				Action: func(c *cli.Context) error {
					source, err := sourceArg(c)
					if err != nil {
						return err
					}
					s, err := prepare(c)
					if err != nil {
						return err
					}
					if err := s.dumpAST(source, c.Bool("raw")); err != nil {
						return err
					}
					return exitFor(s)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		os.Exit(exitUsage)
	}
}
