// Package cli implements the cpusched command line.
package cli

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/me/cpusched/internal/config"
	"github.com/me/cpusched/internal/input"
	"github.com/me/cpusched/internal/kernel"
	"github.com/me/cpusched/internal/logging"
	"github.com/me/cpusched/internal/report"
	"github.com/me/cpusched/pkg/model"
)

var (
	flagServer    string
	flagDebug     bool
	flagLogLevel  string
	flagLogFormat string
	flagOutput    string
	flagSeed      uint64
	flagMaxTicks  int

	logger *slog.Logger
)

// defaultServer returns the server URL from CPUSCHED_SERVER. Empty means the
// simulation runs in-process.
func defaultServer() string {
	return os.Getenv("CPUSCHED_SERVER")
}

// NewRootCmd creates the root cobra command for the cpusched CLI.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "cpusched <input_file> [scheduler_type] [quantum]",
		Short: "cpusched simulates CPU scheduling disciplines",
		Long: `cpusched reads process descriptors (creation_time duration priority triples,
or a .yaml file with a processes list) and simulates them tick by tick.

scheduler_type selects the discipline: 1 FCFS, 2 SJF, 3 PNP, 4 PP, 5 RR.
Short names are accepted too. When it is absent or 0 every discipline runs in
order. Other numbers fall back to FCFS. quantum only applies to RR (default 2).`,
		Args: cobra.RangeArgs(1, 3),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := logging.Setup(flagLogLevel, flagLogFormat, flagDebug, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			logger = l
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulation(cmd, args)
		},
		SilenceUsage: true,
	}

	sim := config.DefaultSimConfig()
	root.PersistentFlags().StringVar(&flagServer, "server", defaultServer(), "Run on a cpusched server at this URL (or CPUSCHED_SERVER env)")
	root.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	root.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&flagLogFormat, "log-format", "text", "Log format (text, json)")
	root.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format (table, json, yaml)")
	root.Flags().Uint64Var(&flagSeed, "seed", sim.Seed, "Seed for the simulated register fill")
	root.Flags().IntVar(&flagMaxTicks, "max-ticks", sim.MaxTicks, "Abort a run after this many ticks (0 = unbounded)")

	return root
}

func runSimulation(cmd *cobra.Command, args []string) error {
	format, err := report.ParseFormat(flagOutput)
	if err != nil {
		return err
	}

	sim := config.DefaultSimConfig()
	sim.Seed = flagSeed
	sim.MaxTicks = flagMaxTicks

	path := args[0]
	descs, err := input.ReadFile(path)
	if err != nil {
		logger.Warn("cannot read input, continuing with no processes", "path", path, "error", err)
		descs = nil
	}

	all := true
	discipline := model.DisciplineFCFS
	if len(args) > 1 {
		discipline, all = parseSchedulerType(args[1])
	}
	if len(args) > 2 {
		if q, err := strconv.Atoi(args[2]); err == nil && q > 0 {
			sim.Quantum = q
		} else {
			logger.Warn("invalid quantum, using default", "quantum", args[2], "default", sim.Quantum)
		}
	}
	logger.Info("input loaded", "path", path, "processes", len(descs), "all", all, "discipline", discipline.String())

	var results []*kernel.Result
	if flagServer != "" {
		req := model.SimulationRequest{Quantum: sim.Quantum, Seed: sim.Seed, Processes: descs}
		if !all {
			req.Discipline = discipline.String()
		}
		results, err = NewClient(flagServer, logger).Simulate(cmd.Context(), req)
	} else {
		results, err = simulateLocal(descs, discipline, all, sim)
	}
	if err != nil {
		return err
	}
	return report.Render(cmd.OutOrStdout(), format, results)
}

func simulateLocal(descs []model.Descriptor, d model.Discipline, all bool, sim config.SimConfig) ([]*kernel.Result, error) {
	k := kernel.New(logger, kernel.WithSeed(sim.Seed))
	if all {
		return k.RunAll(descs, sim.Quantum, sim.MaxTicks)
	}
	res, err := k.Run(descs, kernel.Options{Discipline: d, Quantum: sim.Quantum, MaxTicks: sim.MaxTicks})
	if err != nil {
		return nil, err
	}
	return []*kernel.Result{res}, nil
}

// parseSchedulerType maps the scheduler_type argument to a discipline.
// all is true when every discipline should run.
func parseSchedulerType(s string) (d model.Discipline, all bool) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		if d, err := model.ParseDiscipline(s); err == nil {
			return d, false
		}
		logger.Warn("unrecognized scheduler type, running all disciplines", "scheduler_type", s)
		return model.DisciplineFCFS, true
	}
	if n == 0 {
		return model.DisciplineFCFS, true
	}
	d = model.DisciplineFromType(n)
	if int(d) != n {
		logger.Warn("unknown scheduler type, using FCFS", "scheduler_type", n)
	}
	return d, false
}
