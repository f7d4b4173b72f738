package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/rmarchant/gitcorpus/internal/survey"
)

// SurveyCmd returns the survey command.
func SurveyCmd() *cli.Command {
	return &cli.Command{
		Name:    "survey",
		Aliases: []string{"s"},
		Usage:   "Count files per extension in the HEAD tree",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "repo",
				Aliases: []string{"r"},
				Usage:   "Path to Git repository",
				Value:   ".",
			},
			&cli.StringSliceFlag{
				Name:  "include",
				Usage: "Glob patterns to include (can be specified multiple times)",
			},
			&cli.StringSliceFlag{
				Name:  "exclude",
				Usage: "Glob patterns to exclude (can be specified multiple times)",
			},
		},
		Action: func(c *cli.Context) error {
			return surveyRepo(c, c.String("repo"))
		},
	}
}

func surveyRepo(c *cli.Context, repoPath string) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}

	include := cfg.Survey.Include
	exclude := cfg.Survey.Exclude
	if flags := c.StringSlice("include"); len(flags) > 0 {
		include = flags
	}
	if flags := c.StringSlice("exclude"); len(flags) > 0 {
		exclude = flags
	}

	census, err := survey.Run(survey.Options{
		RepoPath: repoPath,
		Include:  include,
		Exclude:  exclude,
	})
	if err != nil {
		return err
	}

	color.Green("Extension census of HEAD")
	fmt.Printf("Repository: %s\n", repoPath)
	fmt.Printf("Total files: %d\n\n", census.TotalFiles)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Extension\tFiles")
	for _, entry := range census.Extensions {
		fmt.Fprintf(tw, "%s\t%d\n", entry.Extension, entry.Files)
	}
	if census.NoExtension > 0 {
		fmt.Fprintf(tw, "(none)\t%d\n", census.NoExtension)
	}
	tw.Flush()

	return nil
}
