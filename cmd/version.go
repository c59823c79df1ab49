package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"
)

const unknownVersion = "unknown"

// buildDetails is what jsguard knows about its own binary.
type buildDetails struct {
	Version   string
	GoVersion string
	Revision  string
	Time      string
	Modified  bool
}

func readBuildDetails(info *debug.BuildInfo) buildDetails {
	details := buildDetails{Version: unknownVersion}
	if info == nil {
		return details
	}

	if info.Main.Version != "" {
		details.Version = info.Main.Version
	}

	details.GoVersion = info.GoVersion

	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			details.Revision = setting.Value
		case "vcs.time":
			details.Time = setting.Value
		case "vcs.modified":
			details.Modified = setting.Value == "true"
		}
	}

	return details
}

func printBuildDetails(cmd *cobra.Command, details buildDetails, short bool) {
	if short {
		cmd.Println(details.Version)
		return
	}

	cmd.Println("jsguard version\t", details.Version)

	if details.GoVersion != "" {
		cmd.Println("go version\t", details.GoVersion)
	}

	if details.Revision != "" {
		revision := details.Revision
		if details.Modified {
			revision += " (modified)"
		}

		cmd.Println("commit\t\t", revision)
	}

	if details.Time != "" {
		cmd.Println("built\t\t", details.Time)
	}
}

func newVersionCmd() *cobra.Command {
	var short bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long:  "Displays the jsguard build version, the Go version and the source revision it was built from.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			info, ok := debug.ReadBuildInfo()
			if !ok {
				info = nil
			}

			printBuildDetails(cmd, readBuildDetails(info), short)
		},
	}

	cmd.Flags().BoolVar(&short, "short", false, "print only the version")

	return cmd
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
