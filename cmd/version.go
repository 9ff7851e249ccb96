package cmd

import (
	"fmt"

	"prompt-gallery/pkg/util"

	"github.com/spf13/cobra"
)

func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "打印版本信息",
		Args:  cobra.NoArgs,
		// 不需要读取配置
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		Run: func(cmd *cobra.Command, args []string) {
			v := util.GetVersion()
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "prompt-gallery %s\n", v.Version)
			fmt.Fprintf(w, "  Go:     %s (%s)\n", v.GoVersion, v.Platform)
			fmt.Fprintf(w, "  Commit: %s\n", v.GitCommit)
			fmt.Fprintf(w, "  Date:   %s\n", v.BuildDate)
		},
	}
}
