package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/rmarchant/gitcorpus/config"
	"github.com/rmarchant/gitcorpus/internal/dataset"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "gitcorpus",
		Usage:   "Extract commit message/diff datasets from Git repositories",
		Version: "1.0.0",
		Commands: []*cli.Command{
			ExtractCmd(),
			SurveyCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
		},
		Action: rootAction,
	}
}

// rootAction handles the default command behavior. A bare repository
// path argument runs the survey command against it.
func rootAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return surveyRepo(c, c.Args().Get(0))
}

// splitExtensions parses a comma-separated extension list.
func splitExtensions(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	exts := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			exts = append(exts, p)
		}
	}
	return exts
}

// getFormat parses the dataset format flag.
func getFormat(s string) dataset.Format {
	switch s {
	case "jsonl", "ndjson":
		return dataset.FormatJSONL
	default:
		return dataset.FormatCSV
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
