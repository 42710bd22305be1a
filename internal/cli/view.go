package cli

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/graphstream/pkg/pipeline"
)

// Terminal size assumed until the first resize event.
const (
	defaultCols = 100
	defaultRows = 40
)

// viewCommand creates the view command, an interactive terminal explorer.
func (c *CLI) viewCommand() *cobra.Command {
	var flags sceneFlags

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore a scene interactively in the terminal",
		Long: `View opens a full-screen map of the live set around the camera. Pan with
the arrow keys or hjkl and zoom with + and -. Space hovers the node nearest
the center of the screen, highlighting its edges; d starts or stops dragging
it with the camera.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load(cmd)
			if err != nil {
				return err
			}
			prog := newProgress(c.Logger)
			// Manager logs would tear the alternate screen.
			scene, err := c.newRunner().Build(cmd.Context(), cfg, pipeline.Options{
				Logger: log.New(io.Discard),
			})
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Built scene with %d nodes", scene.Graph.NodeCount()))

			p := tea.NewProgram(NewViewModel(scene, defaultCols, defaultRows),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err = p.Run()
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
