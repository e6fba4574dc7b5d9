package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/go-i2p/timeconv/lib/config"
	"github.com/go-i2p/timeconv/lib/util/logger"
	"github.com/go-i2p/timeconv/lib/util/time/unixtime"
	"github.com/jonboulle/clockwork"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/oops"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries what every subcommand needs once the root has loaded config.
type app struct {
	clock clockwork.Clock
	cfg   *config.Config
}

func newRootCommand(clock clockwork.Clock) *cobra.Command {
	a := &app{clock: clock}

	root := &cobra.Command{
		Use:           "timeconv",
		Short:         "Convert between Unix time counts, UTC timestamps and ISO8601 text",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.InitConfig()
			if err != nil {
				return err
			}
			if err := logger.SetLevel(cfg.LogLevel); err != nil {
				return err
			}
			a.cfg = cfg
			log.WithFields(logger.Fields{
				"at":      "timeconv",
				"command": cmd.Name(),
				"unit":    cfg.Unit.String(),
			}).Debug("configuration loaded")
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&config.CfgFile, "config", "", "config file (default $HOME/.timeconv/config.yaml)")
	flags.StringP("unit", "u", "", "unit of integer values: s, ms, us or ns (default from config, ms)")
	flags.String("log-level", "", "log to stderr at this level: debug, info, warn, error, off")
	_ = viper.BindPFlag("unit", flags.Lookup("unit"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))

	root.AddCommand(
		a.fromUnixCommand(),
		a.toUnixCommand(),
		a.convertCommand(),
		a.formatCommand(),
		a.inspectCommand(),
		a.nowCommand(),
		a.watchCommand(),
		configCommand(),
	)
	return root
}

func (a *app) fromUnixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "from-unix VALUE...",
		Short: "Print the ISO8601 form of Unix time counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				value, err := parseInteger(arg)
				if err != nil {
					return err
				}
				t, err := unixtime.FromUnixTime(value, a.cfg.Unit)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), unixtime.FormatISO8601(t))
			}
			return nil
		},
	}
}

func (a *app) toUnixCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "to-unix TIMESTAMP...",
		Short: "Print ISO8601 timestamps as Unix time counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				t, err := unixtime.ParseISO8601(arg)
				if err != nil {
					return err
				}
				value, err := unixtime.ToUnixTime(t, a.cfg.Unit)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), value)
			}
			return nil
		},
	}
}

func (a *app) convertCommand() *cobra.Command {
	var from, to string
	cmd := &cobra.Command{
		Use:   "convert VALUE...",
		Short: "Rescale Unix time counts between units",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fromUnit := a.cfg.Unit
			if from != "" {
				u, err := unixtime.ParseUnit(from)
				if err != nil {
					return err
				}
				fromUnit = u
			}
			toUnit, err := unixtime.ParseUnit(to)
			if err != nil {
				return err
			}
			for _, arg := range args {
				value, err := parseInteger(arg)
				if err != nil {
					return err
				}
				out, err := unixtime.Convert(value, fromUnit, toUnit)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), out)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&from, "from", "", "unit of the input (default --unit)")
	cmd.Flags().StringVar(&to, "to", "", "unit of the output")
	_ = cmd.MarkFlagRequired("to")
	return cmd
}

func (a *app) formatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "format TIMESTAMP...",
		Short: "Rewrite ISO8601 timestamps in canonical UTC form",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				t, err := unixtime.ParseISO8601(arg)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), unixtime.FormatISO8601(t))
			}
			return nil
		},
	}
}

func (a *app) inspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect VALUE",
		Short: "Show an instant in every unit",
		Long: "Show an instant in every unit. VALUE is either an integer in --unit " +
			"or an ISO8601 timestamp.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := parseObservation(args[0], a.cfg.Unit)
			if err != nil {
				return err
			}
			renderInstant(cmd.OutOrStdout(), t)
			return nil
		},
	}
}

func (a *app) nowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "now",
		Short: "Show the current time in every unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			renderInstant(cmd.OutOrStdout(), unixtime.Truncate(a.clock.Now()))
			return nil
		},
	}
}

func configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the configuration file",
	}
	var dir string
	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write the default configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				dir = config.BuildConfigDirPath()
			}
			file, err := config.WriteDefault(dir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), file)
			return nil
		},
	}
	initCmd.Flags().StringVar(&dir, "dir", "", "directory to write config.yaml into (default $HOME/.timeconv)")
	cmd.AddCommand(initCmd)
	return cmd
}

// renderInstant writes t as a table: canonical text, then one row per unit.
func renderInstant(w io.Writer, t time.Time) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Unit", "Value"})
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append([]string{"iso8601", unixtime.FormatISO8601(t)})
	for _, unit := range unixtime.Units {
		value, err := unixtime.ToUnixTime(t, unit)
		if err != nil {
			table.Append([]string{unit.String(), "out of range"})
			continue
		}
		table.Append([]string{unit.String(), strconv.FormatInt(value, 10)})
	}
	if ticks, err := unixtime.Ticks(t); err == nil {
		table.Append([]string{"ticks", strconv.FormatInt(ticks, 10)})
	}
	table.Render()
}

func parseInteger(text string) (int64, error) {
	value, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, oops.
			Code("invalid_integer").
			In("timeconv").
			With("input", text).
			Wrapf(err, "not a Unix time count")
	}
	return value, nil
}

// parseObservation reads text as an integer count in unit when it is one,
// and as ISO8601 otherwise.
func parseObservation(text string, unit unixtime.Unit) (time.Time, error) {
	text = strings.TrimSpace(text)
	if value, err := strconv.ParseInt(text, 10, 64); err == nil {
		return unixtime.FromUnixTime(value, unit)
	}
	return unixtime.ParseISO8601(text)
}
