package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/homecalc/homeownership-calculator/internal/calculation"
	"github.com/homecalc/homeownership-calculator/internal/config"
	"github.com/homecalc/homeownership-calculator/internal/logging"
	"github.com/homecalc/homeownership-calculator/internal/output"
	"github.com/homecalc/homeownership-calculator/internal/web"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "homecalc",
		Short:         "Home ownership vs renting projections",
		Long:          "homecalc projects the year-by-year cost and sale value of buying a home\nagainst renting, as a web form or from YAML scenario files.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newServeCommand(),
		newProjectCommand(),
		newAmortizeCommand(),
		newExampleConfigCommand(),
	)
	return root
}

func newServeCommand() *cobra.Command {
	var (
		addr      string
		logLevel  string
		logFormat string
		metrics   bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculator form, results page and CSV export",
		Long:  "Serve the calculator over HTTP. Settings come from HOMECALC_* environment variables; flags override them.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Addr = addr
			}
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("metrics") {
				cfg.MetricsEnabled = metrics
			}

			logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger.Sugar().Named("engine"))

			var m *web.Metrics
			if cfg.MetricsEnabled {
				m = web.NewMetrics()
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return web.NewServer(engine, logger.Named("http"), m).ListenAndServe(ctx, cfg.Addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":5000", "listen address")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "json", "log format (json, console)")
	cmd.Flags().BoolVar(&metrics, "metrics", true, "expose Prometheus metrics on /metrics")
	return cmd
}

func newProjectCommand() *cobra.Command {
	var (
		configFile string
		format     string
		outDir     string
		logLevel   string
	)
	cmd := &cobra.Command{
		Use:   "project",
		Short: "Run every scenario in a YAML file and write one report per scenario",
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter, err := output.ResolveFormatter(format)
			if err != nil {
				return err
			}

			logger, err := logging.NewSugared(logging.Config{Level: logLevel, Format: "console"})
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			cfg, err := parser.LoadFromFile(configFile)
			if err != nil {
				return err
			}
			inputs, err := parser.Resolve(cfg)
			if err != nil {
				return err
			}

			engine := calculation.NewCalculationEngine()
			engine.SetLogger(logger)
			comparison, err := engine.RunScenarios(cmd.Context(), inputs)
			if err != nil {
				return err
			}

			summary, err := output.ConsoleFormatter{}.FormatComparison(comparison)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, string(summary))
			fmt.Fprintln(out)

			for i := range comparison.Projections {
				name, err := output.WriteFormatted(formatter, &comparison.Projections[i], outDir, output.Extension(formatter.Name()))
				if err != nil {
					return fmt.Errorf("scenario %q: %w", comparison.Projections[i].Name, err)
				}
				fmt.Fprintf(out, "Wrote %s\n", name)
			}
			name, ok, err := output.WriteComparison(formatter, comparison, outDir)
			if err != nil {
				return fmt.Errorf("comparison: %w", err)
			}
			if ok {
				fmt.Fprintf(out, "Wrote %s\n", name)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "scenario file (YAML)")
	cmd.Flags().StringVarP(&format, "format", "f", "console", "report format (console, csv, html, json)")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "directory for report files")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	_ = cmd.MarkFlagRequired("config")
	return cmd
}

func newAmortizeCommand() *cobra.Command {
	var (
		price       float64
		downPayment float64
		rate        float64
		years       int
	)
	cmd := &cobra.Command{
		Use:   "amortize",
		Short: "Print the month-by-month amortization trail of a loan",
		RunE: func(cmd *cobra.Command, args []string) error {
			loan := price - downPayment
			months := years * 12
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Loan %s over %d months at %s: monthly payment %s\n\n",
				output.FormatCurrency(loan), months, output.FormatPercentage(rate),
				output.FormatCurrency(calculation.MonthlyPayment(loan, rate, months)))
			_, err := out.Write(output.FormatInstallments(calculation.MonthlyInstallments(loan, rate, months)))
			return err
		},
	}
	cmd.Flags().Float64Var(&price, "price", 0, "purchase price (USD)")
	cmd.Flags().Float64Var(&downPayment, "down-payment", 0, "down payment (USD)")
	cmd.Flags().Float64Var(&rate, "rate", 0, "annual mortgage rate in percent")
	cmd.Flags().IntVar(&years, "years", 30, "loan tenure in years")
	_ = cmd.MarkFlagRequired("price")
	return cmd
}

func newExampleConfigCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example-config [path]",
		Short: "Write an example scenario file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "example_config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := output.SaveConfiguration(config.NewInputParser().CreateExampleConfiguration(), path); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", path)
			return nil
		},
	}
}
