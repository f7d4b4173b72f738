package cmd

import (
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/rmarchant/gitcorpus/internal/dataset"
	"github.com/rmarchant/gitcorpus/internal/extract"
	"github.com/rmarchant/gitcorpus/internal/git"
)

// ExtractCmd returns the extract command.
func ExtractCmd() *cli.Command {
	return &cli.Command{
		Name:    "extract",
		Aliases: []string{"x"},
		Usage:   "Extract a (message, changes) dataset from repository history",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Path to the output file",
			},
			&cli.StringFlag{
				Name:    "extensions",
				Aliases: []string{"e"},
				Usage:   "Target file extensions (comma-separated), ie: \"py,pyi\"",
			},
			&cli.IntFlag{
				Name:    "size",
				Aliases: []string{"n"},
				Usage:   "Target size of the dataset",
			},
			&cli.IntFlag{
				Name:  "message-len-min",
				Usage: "Minimum commit message length",
				Value: 8,
			},
			&cli.IntFlag{
				Name:  "message-len-max",
				Usage: "Maximum commit message length",
				Value: 64,
			},
			&cli.IntFlag{
				Name:  "changes-len-min",
				Usage: "Minimum commit changes length",
				Value: 1,
			},
			&cli.IntFlag{
				Name:  "changes-len-max",
				Usage: "Maximum commit changes length",
				Value: 1024,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Usage:   "Dataset format (csv, jsonl)",
				Value:   "csv",
			},
			&cli.BoolFlag{
				Name:  "progress",
				Usage: "Show progress of saved commits",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Show per-commit skip reasons",
			},
		},
		Action: extractAction,
	}
}

func extractAction(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	// CLI flags override config file values.
	if c.IsSet("extensions") {
		cfg.Extract.Extensions = splitExtensions(c.String("extensions"))
	}
	if c.IsSet("size") {
		cfg.Extract.Size = c.Int("size")
	}
	if c.IsSet("message-len-min") {
		cfg.Extract.MessageLenMin = c.Int("message-len-min")
	}
	if c.IsSet("message-len-max") {
		cfg.Extract.MessageLenMax = c.Int("message-len-max")
	}
	if c.IsSet("changes-len-min") {
		cfg.Extract.ChangesLenMin = c.Int("changes-len-min")
	}
	if c.IsSet("changes-len-max") {
		cfg.Extract.ChangesLenMax = c.Int("changes-len-max")
	}

	outputPath := c.String("output")
	if outputPath == "" {
		return fmt.Errorf("an output file path is required (--output)")
	}
	if len(cfg.Extract.ExtensionSet()) == 0 {
		return fmt.Errorf("at least one target extension is required (--extensions)")
	}
	if cfg.Extract.Size <= 0 {
		return fmt.Errorf("a positive dataset size is required (--size)")
	}

	reader, err := git.Open(c.String("repo"))
	if err != nil {
		return err
	}

	reporter := &extract.ConsoleReporter{
		Progress: c.Bool("progress"),
		Verbose:  c.Bool("verbose"),
	}

	engine := extract.NewEngine(reader, cfg.Extract, reporter)
	records, totals, err := engine.Run()
	if err != nil {
		return err
	}

	writer := dataset.NewWriter(getFormat(c.String("format")))
	if err := writer.Write(records, outputPath); err != nil {
		return err
	}

	fmt.Printf("Total commits processed: %d\n", totals.Processed)
	fmt.Printf("Total commits saved: %d\n", totals.Saved)
	return nil
}
