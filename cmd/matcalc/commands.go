// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/densemat/config"
	"github.com/katalvlaran/densemat/matrix"
	"github.com/katalvlaran/densemat/matrixio"
)

var errResizeNoTarget = errors.New("resize: set --rows and/or --cols")

// app carries the state shared by every subcommand of one root command.
type app struct {
	cfgPath   string
	format    string
	logLevel  string
	precision int

	cfg    *config.Config
	log    *slog.Logger
	stderr io.Writer
}

func newRootCmd(stderr io.Writer) *cobra.Command {
	a := &app{stderr: stderr}

	root := &cobra.Command{
		Use:               "matcalc",
		Short:             "dense matrix calculator",
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgPath, "config", "", "config file path (yaml)")
	pf.StringVar(&a.format, "format", config.DefaultFormat, "output format: yaml|json|text")
	pf.StringVar(&a.logLevel, "log-level", config.DefaultLogLevel, "log level: debug|info|warn|error")
	pf.IntVar(&a.precision, "precision", config.DefaultPrecision, "significant digits, -1 for shortest")

	root.AddCommand(
		a.scalarCmd("det FILE", "determinant (Laplace expansion)", matrix.Det),
		a.unaryCmd("inverse FILE", "inverse via adjugate / determinant", matrix.InverseOf),
		a.unaryCmd("transpose FILE", "transpose", matrix.T),
		a.unaryCmd("complements FILE", "matrix of cofactors", (*matrix.Dense).CalcComplements),
		a.unaryCmd("adjugate FILE", "transposed cofactor matrix", matrix.Adjugate),
		a.binaryCmd("add A B", "element-wise sum", matrix.Sum),
		a.binaryCmd("sub A B", "element-wise difference", matrix.Diff),
		a.binaryCmd("mul A B", "matrix product", matrix.Product),
		a.scaleCmd(),
		a.eqCmd(),
		a.resizeCmd(),
		a.identityCmd(),
	)

	return root
}

// setup resolves config: defaults, then the file, then explicitly set flags.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		loaded, err := config.Load(a.cfgPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = a.format
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("precision") {
		cfg.Precision = a.precision
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	level, _ := config.ParseLevel(cfg.LogLevel)
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(a.stderr, &slog.HandlerOptions{Level: level}))
	a.log.Debug("config resolved",
		"file", a.cfgPath, "format", cfg.Format, "precision", cfg.Precision)

	return nil
}

func (a *app) read(path string) (*matrix.Dense, error) {
	m, err := matrixio.ReadFile(path)
	if err != nil {
		a.log.Error("read failed", "file", path, "err", err)
		return nil, err
	}
	a.log.Debug("read", "file", path, "rows", m.Rows(), "cols", m.Cols())

	return m, nil
}

func (a *app) emit(cmd *cobra.Command, m *matrix.Dense) error {
	return matrixio.Encode(cmd.OutOrStdout(), m, a.cfg.OutputFormat(), matrixio.WithPrecision(a.cfg.Precision))
}

// observe logs the outcome of op and passes err through.
func (a *app) observe(op string, start time.Time, err error) error {
	if err != nil {
		a.log.Error("operation failed", "op", op, "err", err)
		return err
	}
	a.log.Debug("operation done", "op", op, "elapsed", time.Since(start))

	return nil
}

func (a *app) unaryCmd(use, short string, op func(*matrix.Dense) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.read(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := op(m)
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) binaryCmd(use, short string, op func(x, y *matrix.Dense) (*matrix.Dense, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.read(args[0])
			if err != nil {
				return err
			}
			y, err := a.read(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := op(x, y)
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) scalarCmd(use, short string, op func(*matrix.Dense) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := a.read(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			v, err := op(m)
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(v, 'g', a.cfg.Precision, 64))

			return err
		},
	}
}

func (a *app) scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale FILE K",
		Short: "multiply every element by K",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			k, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("scale: factor %q: %w", args[1], err)
			}
			m, err := a.read(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			res, err := matrix.ScaleBy(m, k)
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}

			return a.emit(cmd, res)
		},
	}
}

func (a *app) eqCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eq A B",
		Short: "compare within tolerance; prints true or false",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.read(args[0])
			if err != nil {
				return err
			}
			y, err := a.read(args[1])
			if err != nil {
				return err
			}
			start := time.Now()
			eq, err := x.Equal(y)
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), eq)

			return err
		},
	}
}

func (a *app) resizeCmd() *cobra.Command {
	var rows, cols int
	cmd := &cobra.Command{
		Use:   "resize FILE",
		Short: "change row and/or column count, keeping the overlap",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			setRows, setCols := cmd.Flags().Changed("rows"), cmd.Flags().Changed("cols")
			if !setRows && !setCols {
				return errResizeNoTarget
			}
			m, err := a.read(args[0])
			if err != nil {
				return err
			}
			start := time.Now()
			if setRows {
				err = m.SetRows(rows)
			}
			if err == nil && setCols {
				err = m.SetCols(cols)
			}
			if err = a.observe(cmd.Name(), start, err); err != nil {
				return err
			}

			return a.emit(cmd, m)
		},
	}
	cmd.Flags().IntVar(&rows, "rows", 0, "new row count")
	cmd.Flags().IntVar(&cols, "cols", 0, "new column count")

	return cmd
}

func (a *app) identityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "identity N",
		Short: "print the N×N identity matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("identity: size %q: %w", args[0], err)
			}
			id, err := matrix.NewIdentity(n)
			if err = a.observe(cmd.Name(), time.Now(), err); err != nil {
				return err
			}

			return a.emit(cmd, id)
		},
	}
}
