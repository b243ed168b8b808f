package ping

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/common"
	"github.com/hchk/hchk/pkg/logger"
)

type pingCmd struct {
	logger *logger.Logger
}

func (c *pingCmd) run(out *os.File, id string) error {
	client, err := common.NewClientFromEnv(c.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	check := client.Find(id)
	if check == nil {
		return fmt.Errorf("no check matching %q", id)
	}

	if err := client.Ping(check); err != nil {
		return fmt.Errorf("failed to ping check: %w", err)
	}

	fmt.Fprintf(out, "%s: pinged\n", check.Name)
	return nil
}

// NewPingCmd returns the ping check command
func NewPingCmd(logger *logger.Logger) *cobra.Command {
	c := &pingCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "ping <id>",
		Short: "Ping a check",
		Long:  `Send a heartbeat to a check's ping endpoint`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(os.Stdout, args[0])
		},
	}

	return cmd
}
