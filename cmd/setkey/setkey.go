package setkey

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hchk/hchk/pkg/config"
	"github.com/hchk/hchk/pkg/logger"
)

type setkeyCmd struct {
	logger *logger.Logger
}

func (c *setkeyCmd) run(in io.Reader, out *os.File, args []string) error {
	var key string
	if len(args) > 0 {
		key = args[0]
	} else {
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && line == "" {
			return fmt.Errorf("failed to read key from stdin: %w", err)
		}
		key = line
	}

	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("API key cannot be empty")
	}

	path, err := config.DefaultKeyPath()
	if err != nil {
		return err
	}
	if err := config.SaveAPIKey(path, key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}

	fmt.Fprintf(out, "API key saved to %s\n", path)
	return nil
}

// NewSetkeyCmd returns the setkey command
func NewSetkeyCmd(logger *logger.Logger) *cobra.Command {
	c := &setkeyCmd{logger: logger}

	cmd := &cobra.Command{
		Use:   "setkey [key]",
		Short: "Store the API key",
		Long:  `Store the API key in the local key file. Reads the key from stdin when the argument is omitted.`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.run(os.Stdin, os.Stdout, args)
		},
	}

	return cmd
}
