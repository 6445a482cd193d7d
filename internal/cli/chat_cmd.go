package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/margdarshak/disha/internal/agent"
	"github.com/margdarshak/disha/internal/domain"
	"github.com/margdarshak/disha/internal/tui"
)

func newChatCmd(app *App) *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the guidance agent in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
				return fmt.Errorf("chat requires an interactive terminal; use 'disha serve' for programmatic access")
			}

			if !cmd.Flags().Changed("language") {
				choice, err := pickLanguage()
				if err != nil {
					return err
				}
				language = choice
			}

			var opts []agent.Option
			switch language {
			case "en":
				opts = append(opts, agent.WithLanguage(domain.LangEnglish))
			case "mr":
				opts = append(opts, agent.WithLanguage(domain.LangMarathi))
			case "auto", "":
				// Detected from the first utterance.
			default:
				return fmt.Errorf("unknown language %q (want en, mr, or auto)", language)
			}

			model := tui.NewChatModel(app.NewAgent(opts...))
			p := tea.NewProgram(model, tea.WithAltScreen())
			_, err := p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&language, "language", "auto", "Conversation language: en, mr, or auto")

	return cmd
}

// pickLanguage asks for the conversation language up front.
func pickLanguage() (string, error) {
	choice := "auto"
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Conversation language").
			Options(
				huh.NewOption("Detect from my first message", "auto"),
				huh.NewOption("English", "en"),
				huh.NewOption("मराठी (Marathi)", "mr"),
			).
			Value(&choice),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}
