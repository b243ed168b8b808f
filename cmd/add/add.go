package add

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/common"
	"github.com/hchk/hchk/pkg/logger"
)

type addCmd struct {
	name       string
	schedule   string
	graceHours int
	tz         string
	tags       string
	logger     *logger.Logger
}

func (c *addCmd) parseArgs(args []string) error {
	c.name = args[0]
	c.schedule = args[1]
	c.graceHours = 1
	if len(args) > 2 {
		grace, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid grace hours %q: %w", args[2], err)
		}
		c.graceHours = grace
	}
	if len(args) > 3 {
		c.tz = args[3]
	}
	if len(args) > 4 {
		c.tags = args[4]
	}
	return nil
}

func (c *addCmd) run(out *os.File) error {
	client, err := common.NewClientFromEnv(c.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	check, err := client.Add(c.name, c.schedule, c.graceHours, c.tz, c.tags)
	if err != nil {
		return fmt.Errorf("failed to add check: %w", err)
	}

	fmt.Fprintf(out, "%s %s %s\n", check.Name, check.ID(), check.PingURL)
	return nil
}

// NewAddCmd returns the add check command
func NewAddCmd(logger *logger.Logger) *cobra.Command {
	c := &addCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "add <name> <schedule> [grace-hours] [tz] [tags]",
		Short: "Add a check",
		Long:  `Add a check with a cron schedule. Adding an existing name updates it instead of creating a duplicate.`,
		Args:  cobra.RangeArgs(2, 5),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.parseArgs(args); err != nil {
				return err
			}
			return c.run(os.Stdout)
		},
	}

	return cmd
}
