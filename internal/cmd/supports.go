package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/harrison/mdbook-blog/internal/blog"
	"github.com/harrison/mdbook-blog/internal/logger"
)

// ErrUnsupportedRenderer is returned by the supports subcommand for
// renderers this preprocessor does not handle. mdBook reads the answer
// from the exit code alone, so main maps this error to a bare non-zero
// exit instead of printing it.
var ErrUnsupportedRenderer = errors.New("unsupported renderer")

// NewSupportsCommand creates and returns the supports subcommand mdBook
// probes before preprocessing. The answer travels in the exit code: 0
// when the renderer is supported, 1 otherwise.
func NewSupportsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "supports <renderer>",
		Short: "Report via exit code whether a renderer is supported",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !blog.New(logger.NewNoOpLogger()).SupportsRenderer(args[0]) {
				return ErrUnsupportedRenderer
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
}
