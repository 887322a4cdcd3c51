package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/harrison/mdbook-blog/internal/blog"
	"github.com/harrison/mdbook-blog/internal/logger"
	"github.com/harrison/mdbook-blog/internal/mdbook"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// logLevelEnv is the environment variable consulted when --log-level is
// not given. A .env file next to the book can set it.
const logLevelEnv = "MDBOOK_BLOG_LOG"

// NewRootCommand creates and returns the root cobra command for
// mdbook-blog. Invoked with no subcommand it runs one preprocessing pass:
// the [context, book] pair arrives on stdin, the mutated book leaves on
// stdout, and every diagnostic goes to stderr.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mdbook-blog",
		Short: "An mdBook preprocessor that grafts dated posts into the book",
		Long: `mdbook-blog scans a posts directory inside the book source for files
named YYYY-MM-DD-<anything>.md and appends each one to the book as a
chapter filed under a single section.

Configure it in book.toml:

  [preprocessor.blog]
  directory = "posts"      # scanned directory, relative to src
  chapter-name = "Posts"   # section the posts are filed under
  sort-by = "newest"       # newest, oldest, name-a-z or name-z-a
  future = false           # include posts dated after today

mdBook invokes the preprocessor itself on every build; there is no need
to run it by hand.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE:    runPreprocess,
		// Errors surface exactly once, via main
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn or error (default: $MDBOOK_BLOG_LOG or info)")

	// Add subcommands
	cmd.AddCommand(NewSupportsCommand())

	return cmd
}

// runPreprocess implements the preprocessing pass
func runPreprocess(cmd *cobra.Command, args []string) error {
	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), resolveLogLevel(cmd))

	ctx, book, err := mdbook.ParseInput(cmd.InOrStdin())
	if err != nil {
		return err
	}

	if ctx.MdBookVersion != "" {
		ok, err := mdbook.VersionMatches(ctx.MdBookVersion)
		switch {
		case err != nil:
			log.LogWarn(fmt.Sprintf("Cannot check mdbook version %q: %v", ctx.MdBookVersion, err))
		case !ok:
			log.LogWarn(fmt.Sprintf("The book was built with mdbook %s, but mdbook-blog targets ^%s; continuing anyway", ctx.MdBookVersion, mdbook.Version))
		}
	}

	book, err = blog.New(log).Run(ctx, book)
	if err != nil {
		return err
	}

	encoder := json.NewEncoder(cmd.OutOrStdout())
	if err := encoder.Encode(book); err != nil {
		return fmt.Errorf("failed to encode book: %w", err)
	}
	return nil
}

// resolveLogLevel picks the diagnostic verbosity: the --log-level flag
// wins, then MDBOOK_BLOG_LOG, then "info".
func resolveLogLevel(cmd *cobra.Command) string {
	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		return level
	}
	if level := os.Getenv(logLevelEnv); level != "" {
		return level
	}
	return "info"
}
