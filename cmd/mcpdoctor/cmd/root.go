// Package cmd wires the diagnostic pipeline behind the CLI entry point.
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/config"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/inquiry"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/logging"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/probe"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/report"
	"github.com/hugo-lorenzo-mato/mcp-doctor/internal/tui"
)

var (
	cfgFile   string
	logLevel  string
	logFormat string
	noColor   bool
	quiet     bool

	// Version info - set via SetVersion()
	appVersion string
	appCommit  string
	appDate    string
)

var rootCmd = &cobra.Command{
	Use:   "mcpdoctor",
	Short: "Diagnose a stuck MCP execution environment",
	Long: `mcpdoctor inspects the host for signs that an MCP tool-execution
service has become unresponsive: related processes, resource headroom,
configuration files, and filesystem writability. It reports findings and
suggests recovery steps; it never terminates processes or edits
configuration itself.

Diagnostic failures are reported in the output, not through the exit
code: the command exits non-zero only when it cannot produce a report
at all.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDiagnose,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion injects build-time version information.
func SetVersion(version, commit, date string) {
	appVersion = version
	appCommit = commit
	appDate = date
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default: .mcpdoctor.yaml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info",
		"log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto",
		"log format (auto, text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false,
		"suppress non-essential output")
	rootCmd.Flags().Duration("probe-timeout", config.DefaultProbeTimeout,
		"per-probe timeout")
	rootCmd.Flags().String("artifact-dir", ".",
		"directory for the report artifact")

	// Bind flags to viper (errors are nil when flag exists)
	_ = viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag("no_color", rootCmd.PersistentFlags().Lookup("no-color"))
	_ = viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	_ = viper.BindPFlag("probe_timeout", rootCmd.Flags().Lookup("probe-timeout"))
	_ = viper.BindPFlag("artifact_dir", rootCmd.Flags().Lookup("artifact-dir"))
}

func runDiagnose(cmd *cobra.Command, _ []string) error {
	loader := config.NewLoaderWithViper(viper.GetViper())
	if cfgFile != "" {
		loader = loader.WithConfigFile(cfgFile)
	}
	settings, err := loader.Load()
	if err != nil {
		return err
	}

	logger := logging.New(logging.Config{
		Level:  settings.Log.Level,
		Format: settings.Log.Format,
	})

	sys := inquiry.NewHostInquiry()
	out := cmd.OutOrStdout()

	rep, err := diagnose(cmd.Context(), settings, sys, logger)
	if err != nil {
		// The only fatal path: no report could be constructed.
		return fmt.Errorf("cannot construct report: %w", err)
	}

	writeReport(rep, settings, out, logger)
	return nil
}

// diagnose runs the probe pipeline and aggregates the findings.
func diagnose(ctx context.Context, settings *config.Settings, sys inquiry.SystemInquiry, logger *logging.Logger) (*report.Report, error) {
	env := report.CaptureEnvironment()

	diskPath := inquiry.RootDiskPath()
	if wd, ok := sys.WorkingDirectory(); ok {
		diskPath = wd
	}

	processProbe := probe.NewProcessProbe(settings.MatchPatterns)

	runner := probe.NewRunner(settings.ProbeTimeout, logger.Logger)
	runner.Register(probe.NewHostInfoProbe())
	runner.Register(processProbe)
	runner.Register(probe.NewResourceProbe(diskPath))
	runner.Register(probe.NewConfigProbe(config.NewLocator()))
	runner.Register(probe.NewScratchWriteProbe(""))
	runner.Register(probe.NewAdvisorProbe(probe.NewAdvisor(settings.StuckPatterns), processProbe))

	findings := runner.RunAll(ctx, sys, env)

	aggregator := report.NewAggregator(sys, settings.TailLines)
	return aggregator.Aggregate(findings, env)
}

func writeReport(rep *report.Report, settings *config.Settings, out io.Writer, logger *logging.Logger) {
	styled := tui.SupportsStyling(out, settings.NoColor)
	if settings.Quiet {
		out = io.Discard
	}
	writer := report.NewWriter(settings.ArtifactDir, out, tui.NewRenderer(styled), logger.Sanitizer(), logger.Logger)
	_, _ = writer.Write(rep)
}
