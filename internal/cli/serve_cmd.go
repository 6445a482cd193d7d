package cli

import (
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/server"
	"github.com/margdarshak/disha/internal/session"
)

func newServeCmd(app *App) *cobra.Command {
	var addr string
	var origins []string
	var idleTTL time.Duration

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if !cmd.Flags().Changed("origins") {
				if v := os.Getenv("DISHA_CORS_ORIGINS"); v != "" {
					origins = strings.Split(v, ",")
				}
			}

			sessions := session.NewManager(func() *agent.Agent {
				return app.NewAgent()
			}, idleTTL, app.Log)

			chat := server.NewChatHandler(sessions, app.Transcripts, app.Log)
			srv := server.New(addr, chat, sessions, origins, app.Log)
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8000", "Listen address")
	cmd.Flags().StringSliceVar(&origins, "origins", nil, "Allowed CORS origins (empty allows all)")
	cmd.Flags().DurationVar(&idleTTL, "idle-ttl", 30*time.Minute, "Idle session eviction timeout")

	return cmd
}
