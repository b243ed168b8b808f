package del

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/common"
	"github.com/hchk/hchk/pkg/logger"
)

type delCmd struct {
	logger *logger.Logger
}

func (c *delCmd) run(out *os.File, id string) error {
	client, err := common.NewClientFromEnv(c.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	check := client.Find(id)
	if check == nil {
		return fmt.Errorf("no check matching %q", id)
	}

	deleted, err := client.Delete(check)
	if err != nil {
		return fmt.Errorf("failed to delete check: %w", err)
	}

	fmt.Fprintf(out, "deleted %s (%s)\n", deleted.Name, deleted.ID())
	return nil
}

// NewDelCmd returns the delete check command
func NewDelCmd(logger *logger.Logger) *cobra.Command {
	c := &delCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "del <id>",
		Short: "Delete a check",
		Long:  `Delete a check addressed by its ID or a fragment of its name`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(os.Stdout, args[0])
		},
	}

	return cmd
}
