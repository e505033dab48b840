package cmd

import (
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathworlds/internal/save"
)

// version is set via -ldflags at build time.
var version = ""

// buildDetails describes the running binary.
type buildDetails struct {
	Version   string
	Revision  string
	Time      string
	Modified  bool
	GoVersion string
}

// readBuild combines the ldflags version with module and VCS build info.
func readBuild(info *debug.BuildInfo, ok bool) buildDetails {
	d := buildDetails{Version: version}
	if !ok || info == nil {
		if d.Version == "" {
			d.Version = "(devel)"
		}
		return d
	}
	if d.Version == "" {
		d.Version = info.Main.Version
	}
	if d.Version == "" {
		d.Version = "(devel)"
	}
	d.GoVersion = info.GoVersion
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			d.Revision = s.Value
		case "vcs.time":
			d.Time = s.Value
		case "vcs.modified":
			d.Modified = s.Value == "true"
		}
	}
	return d
}

func (d buildDetails) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "mathworlds %s", d.Version)
	if d.Revision != "" {
		rev := d.Revision[:min(len(d.Revision), 12)]
		if d.Modified {
			rev += "-dirty"
		}
		fmt.Fprintf(&b, " (%s", rev)
		if d.Time != "" {
			fmt.Fprintf(&b, ", %s", d.Time)
		}
		b.WriteString(")")
	}
	if d.GoVersion != "" {
		fmt.Fprintf(&b, " %s", d.GoVersion)
	}
	return b.String()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build and save-format versions",
	Run: func(cmd *cobra.Command, args []string) {
		d := readBuild(debug.ReadBuildInfo())
		fmt.Println(d)
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Printf("save key %s (legacy: %s)\n", save.CurrentKey, strings.Join(save.LegacyKeys, ", "))
		}
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "Also print the save-format key")
}
