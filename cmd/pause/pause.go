package pause

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/common"
	"github.com/hchk/hchk/pkg/checks"
	"github.com/hchk/hchk/pkg/logger"
)

type pauseCmd struct {
	logger *logger.Logger
}

func (c *pauseCmd) run(out *os.File, id string) error {
	client, err := common.NewClientFromEnv(c.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	check := client.Find(id)
	if check == nil {
		return fmt.Errorf("no check matching %q", id)
	}

	if check.Status == checks.StatusPaused {
		fmt.Fprintf(out, "%s: check is already paused\n", check.Name)
		return nil
	}

	paused, err := client.Pause(check)
	if err != nil {
		return fmt.Errorf("failed to pause check: %w", err)
	}

	fmt.Fprintf(out, "%s: %s\n", paused.Name, paused.Status)
	return nil
}

// NewPauseCmd returns the pause check command
func NewPauseCmd(logger *logger.Logger) *cobra.Command {
	c := &pauseCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "pause <id>",
		Short: "Pause a check",
		Long:  `Pause a check addressed by its ID or a fragment of its name`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(os.Stdout, args[0])
		},
	}

	return cmd
}
