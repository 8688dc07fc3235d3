package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-arraylist/pkg/datastructs/arraylist"
	"github.com/huynhanx03/go-arraylist/pkg/logger"
	"github.com/huynhanx03/go-arraylist/pkg/settings"
)

func newRootCmd() *cobra.Command {
	cfg := settings.Default()

	cmd := &cobra.Command{
		Use:          "arraylist [values...]",
		Short:        "Load integers into an array list, then print it before and after sorting",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				values, err := parseValues(args)
				if err != nil {
					return err
				}
				cfg.Demo.Values = values
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log, err := logger.New(cfg.Logger)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			return run(cmd.OutOrStdout(), log, cfg.Demo)
		},
	}

	flags := cmd.Flags()
	flags.IntVar(&cfg.Demo.InitialCapacity, "capacity", cfg.Demo.InitialCapacity, "initial capacity of the list")
	flags.StringVar(&cfg.Logger.LogLevel, "log-level", cfg.Logger.LogLevel, "log level (debug, info, warn, error)")
	flags.StringVar(&cfg.Logger.FileLogName, "log-file", cfg.Logger.FileLogName, "optional rotating log file")

	return cmd
}

func parseValues(args []string) ([]int, error) {
	values := make([]int, 0, len(args))
	for _, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid value %q", arg)
		}
		values = append(values, v)
	}
	return values, nil
}

// run exercises every list operation and prints the list before and after sorting.
func run(w io.Writer, log *zap.Logger, demo settings.Demo) error {
	list, err := arraylist.NewWithCapacity[int](demo.InitialCapacity)
	if err != nil {
		return err
	}

	for _, v := range demo.Values {
		list.Append(v)
	}
	log.Debug("values appended",
		zap.Int("size", list.Size()),
		zap.Int("capacity", list.Cap()),
	)

	fmt.Fprintf(w, "Before sorting: %s\n", list)
	arraylist.Quicksort(list)
	fmt.Fprintf(w, "After sorting: %s\n", list)
	log.Info("list sorted", zap.Int("size", list.Size()))

	if list.IsEmpty() {
		return nil
	}

	// Insert at the middle, read it back, then remove it.
	mid := list.Size() / 2
	if err := list.InsertAt(mid, 0); err != nil {
		return err
	}
	fmt.Fprintf(w, "After insertAt(%d, 0): %s\n", mid, list)

	got, err := list.Get(mid)
	if err != nil {
		return err
	}
	log.Debug("element read", zap.Int("index", mid), zap.Int("value", got))

	removed, err := list.RemoveAt(mid)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "After removeAt(%d) = %d: %s\n", mid, removed, list)
	fmt.Fprintf(w, "Size: %d\n", list.Size())
	return nil
}
