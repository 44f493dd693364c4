package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"repopress/internal/compress"
	"repopress/internal/report"
	"repopress/internal/scan"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <repository>",
	Short: "Fetch a GitHub repository into a text report",
	Long: `Downloads a GitHub repository through the contents API and writes a single
text report: the README, the repository structure, and every file's contents.

The repository may be given as a full URL or as owner/name shorthand. A token
is required; set it in the environment variable named by the config's
github.tokenEnv (default GITHUB_TOKEN).

Examples:
  repopress fetch octocat/hello-world
  repopress fetch https://github.com/octocat/hello-world --compress medium`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	logger := newLogger(cfg)

	level, err := resolveLevel(compress.LevelNone)
	if err != nil {
		return err
	}

	token := os.Getenv(cfg.GitHub.TokenEnv)
	if token == "" {
		return fmt.Errorf("GitHub token not set: export %s", cfg.GitHub.TokenEnv)
	}

	owner, name, err := scan.ParseRepoURL(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("Fetching repository: %s/%s\n", owner, name)
	fetcher := scan.NewGitHubFetcher(token, scanOptions(cfg), logger)
	snap, err := fetcher.FetchRepository(cmd.Context(), owner, name)
	if err != nil {
		return err
	}

	outputName := name + "_contents.txt"
	if _, err := report.WriteReport(outputName, remoteReport(snap), false); err != nil {
		return err
	}
	fmt.Printf("Repository contents saved to '%s'.\n", outputName)

	if level == compress.LevelNone {
		return nil
	}

	compressedPath, err := compressReport(outputName, level, cfg.Output.Gzip, logger)
	if err != nil {
		return err
	}
	fmt.Printf("Compressed analysis saved to '%s'.\n", compressedPath)
	return nil
}
