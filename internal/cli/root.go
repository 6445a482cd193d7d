package cli

import (
	"github.com/spf13/cobra"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/dataset"
	"github.com/margdarshak/disha/internal/logger"
	"github.com/margdarshak/disha/internal/repository"
)

// App holds the wired dependencies CLI commands run against.
type App struct {
	Data        *dataset.Dataset
	DataPath    string
	NewAgent    func(opts ...agent.Option) *agent.Agent
	Transcripts repository.TranscriptRepo
	Log         *logger.Logger
}

// NewRootCmd creates the top-level "disha" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "disha",
		Short: "Career guidance agent for 12th-grade students",
	}

	root.AddCommand(
		newServeCmd(app),
		newChatCmd(app),
		newDataCmd(app),
	)

	return root
}
