// Package cmd provides the root command and CLI setup for jsguard.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"jsguard.dev/pkg/jsguard/internal/adapter"
	"jsguard.dev/pkg/jsguard/internal/controller"
	"jsguard.dev/pkg/jsguard/internal/domain"
	m "jsguard.dev/pkg/jsguard/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

var (
	textOutputFlag string
	csvOutputFlag  string
	xlsxOutputFlag string
	excludeFlag    []string
	verboseFlag    bool
	logFileFlag    string
)

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
	workflow = newWorkflow(ui)
}

func newWorkflow(ui controller.UI) domain.Workflow {
	scanner := domain.NewScanner(fsAdapter, domain.DefaultRegistry())
	walker := domain.NewWalker(fsAdapter, scanner, ui)

	return domain.NewWorkflow(fsAdapter, reportStore, ui, walker)
}

const rootLongDescription = `jsguard scans JavaScript and TypeScript sources (.js, .jsx, .ts, .tsx)
line by line for potentially dangerous constructs such as eval(), new Function(),
innerHTML assignment, dynamic require() and child_process calls.

Findings are printed as a table, or written to a text report (--output),
a CSV file (--csv) and an Excel workbook (--xlsx).

Directory names given with --exclude are skipped wherever they occur:
  jsguard ./web -e node_modules -e dist
  jsguard ./web --exclude node_modules,dist,build`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "jsguard [directory]",
		Short:        "Flag potentially dangerous JavaScript/TypeScript code",
		Long:         rootLongDescription,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Scan(cmd.Context(), scanArgs(args))
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&textOutputFlag, outputFlagName, "o", "", "write the plain-text report to `PATH` instead of the console")
	bindFlagToConfig(cmd.Flags().Lookup(outputFlagName), outputConfigKey)

	cmd.Flags().StringVarP(&csvOutputFlag, csvFlagName, "c", "", "write a CSV report to `PATH`")
	bindFlagToConfig(cmd.Flags().Lookup(csvFlagName), csvConfigKey)

	cmd.Flags().StringVarP(&xlsxOutputFlag, xlsxFlagName, "x", "", "write an Excel report to `PATH`")
	bindFlagToConfig(cmd.Flags().Lookup(xlsxFlagName), xlsxConfigKey)

	cmd.Flags().StringSliceVarP(&excludeFlag, excludeFlagName, "e", nil, "directory `NAME`s to skip at any depth (-e NAME [NAME...], repeatable, comma-separated)")
	bindFlagToConfig(cmd.Flags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, "", "write a rotating debug log to `PATH`")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

func scanArgs(args []string) domain.ScanArgs {
	root := m.Path(".")
	if len(args) > 0 {
		root = m.Path(args[0])
	}

	return domain.ScanArgs{
		Root:       root,
		Exclude:    viper.GetStringSlice(excludeConfigKey),
		TextOutput: m.Path(viper.GetString(outputConfigKey)),
		CSVOutput:  m.Path(viper.GetString(csvConfigKey)),
		XLSXOutput: m.Path(viper.GetString(xlsxConfigKey)),
	}
}

// expandExcludeArgs rewrites "-e A B" into "--exclude=A --exclude=B" so the
// names following an exclude flag are not taken as the directory. A bare
// flag with no names becomes an empty exclude list. Parsing stops at "--".
func expandExcludeArgs(args []string) []string {
	expanded := make([]string, 0, len(args))

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return append(expanded, args[i:]...)
		}

		if arg != "-e" && arg != "--"+excludeFlagName {
			expanded = append(expanded, arg)
			continue
		}

		names := 0
		for i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
			i++
			names++
			expanded = append(expanded, "--"+excludeFlagName+"="+args[i])
		}

		if names == 0 {
			expanded = append(expanded, "--"+excludeFlagName+"=")
		}
	}

	return expanded
}

// executeRoot runs cmd with args after exclude-list expansion.
func executeRoot(cmd *cobra.Command, args []string) error {
	cmd.SetArgs(expandExcludeArgs(args))

	return cmd.Execute()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := executeRoot(rootCmd, os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
}
