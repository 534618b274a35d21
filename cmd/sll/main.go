package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qjpcpu/linkedlist/cli"
	fmt2 "github.com/qjpcpu/linkedlist/fmt"
	"github.com/qjpcpu/linkedlist/json"
	"github.com/qjpcpu/linkedlist/list"
)

type options struct {
	verbose    bool
	showTable  bool
	showJSON   bool
	showPretty bool
	showTime   bool
	seed       string
}

func newRootCmd() *cobra.Command {
	var (
		opt    options
		logger = zap.NewNop()
	)
	cmd := &cobra.Command{
		Use:   "sll [operation...]",
		Short: "Apply insert/delete operations to a singly linked list",
		Long: `sll applies operations to an empty list of strings and prints the list after each one.

Operations:
  insert:<value>:<index>   (alias ins) insert value at index, clamped to [0, len]
  delete:<value>           (alias del) delete the first node equal to value

Without operations and without --seed the sample session is replayed.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if opt.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			l, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			logger = l
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && opt.seed == "" {
				args = sampleSession
			}
			ops, err := parseOperations(args)
			if err != nil {
				return err
			}
			l := list.New[string]()
			if opt.seed != "" {
				if err := json.Unmarshal([]byte(opt.seed), l); err != nil {
					return fmt.Errorf("bad seed %q: %w", opt.seed, err)
				}
			}
			return run(cmd.OutOrStdout(), logger, l, ops, opt)
		},
	}
	cmd.PersistentFlags().BoolVarP(&opt.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVarP(&opt.showTable, "table", "t", false, "Print the final list as a table")
	cmd.Flags().BoolVarP(&opt.showJSON, "json", "j", false, "Print the final list as json")
	cmd.Flags().BoolVarP(&opt.showPretty, "pretty", "p", false, "Print the final list as colored json")
	cmd.Flags().BoolVarP(&opt.showTime, "time", "T", false, "Prefix every step with wall clock time")
	cmd.Flags().StringVarP(&opt.seed, "seed", "s", "", `Start from a json array of strings, e.g. '["a","b"]'`)
	return cmd
}

func run(w io.Writer, logger *zap.Logger, l *list.LinkedList[string], ops []operation, opt options) error {
	p := fmt2.NewPrinter(w)
	if opt.showTime {
		p = p.PrependTime()
	}
	if opt.seed != "" {
		logger.Debug("Seeded list", zap.Int("len", l.Len()))
		p("seed => %v", l)
	}
	for _, op := range ops {
		ok := op.apply(l)
		logger.Debug("Applied operation",
			zap.String("kind", op.kind),
			zap.String("value", op.value),
			zap.Int("index", op.index),
			zap.Bool("ok", ok),
			zap.Int("len", l.Len()))
		if op.kind == opDelete {
			p("%s => %v %v", op.raw, ok, l)
		} else {
			p("%s => %v", op.raw, l)
		}
	}
	if opt.showTable {
		cli.ListTable(w, l.Values())
	}
	if opt.showJSON {
		data, err := json.Marshal(l)
		if err != nil {
			return fmt.Errorf("encode list: %w", err)
		}
		fmt.Fprintln(w, string(data))
	}
	if opt.showPretty {
		values := l.Values()
		if values == nil {
			values = []string{}
		}
		fmt2.NewJSONPrinter(w)("%v", values)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
