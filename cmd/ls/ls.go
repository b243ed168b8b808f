package ls

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/fatih/color"
	isatty "github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/hchk/hchk/cmd/common"
	"github.com/hchk/hchk/pkg/checks"
	"github.com/hchk/hchk/pkg/logger"
)

type lsCmd struct {
	long   bool
	up     bool
	down   bool
	logger *logger.Logger
}

func statusColor(status string) *color.Color {
	switch status {
	case checks.StatusUp:
		return color.New(color.FgGreen)
	case checks.StatusDown:
		return color.New(color.FgRed)
	case checks.StatusGrace:
		return color.New(color.FgCyan)
	case checks.StatusPaused:
		return color.New(color.FgYellow)
	}
	return color.New(color.FgWhite)
}

func (c *lsCmd) run(out *os.File, query string) error {
	client, err := common.NewClientFromEnv(c.logger)
	if err != nil {
		return fmt.Errorf("failed to create client: %w", err)
	}

	list, err := client.Get(query)
	if err != nil {
		return fmt.Errorf("failed to list checks: %w", err)
	}

	sort.Slice(list, func(i, j int) bool { return list[i].Name < list[j].Name })

	if c.up || c.down {
		filtered := list[:0]
		for _, check := range list {
			if (c.up && check.Status == checks.StatusUp) || (c.down && check.Status == checks.StatusDown) {
				filtered = append(filtered, check)
			}
		}
		list = filtered
	}

	tty := isatty.IsTerminal(out.Fd())
	if tty {
		fmt.Fprintf(out, "total %d\n", len(list))
	}

	if c.long {
		for _, check := range list {
			buf, err := json.MarshalIndent(check, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(out, string(buf))
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 3, ' ', 0)
	for _, check := range list {
		status := check.Status
		if tty {
			status = statusColor(check.Status).Sprint(check.Status)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			status,
			check.ShortID(),
			check.Name,
			check.HumanizedLastPingAt(),
		)
	}
	return w.Flush()
}

// NewLsCmd returns the list checks command
func NewLsCmd(logger *logger.Logger) *cobra.Command {
	c := &lsCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "ls [query]",
		Short: "List checks",
		Long:  `List checks, optionally filtered by a name or ID fragment`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) > 0 {
				query = args[0]
			}
			return c.run(os.Stdout, query)
		},
	}

	flags := cmd.Flags()
	flags.BoolVarP(&c.long, "long", "l", false, "long listing (full JSON)")
	flags.BoolVarP(&c.up, "up", "u", false, "list 'up' checks only")
	flags.BoolVarP(&c.down, "down", "d", false, "list 'down' checks only")

	return cmd
}
