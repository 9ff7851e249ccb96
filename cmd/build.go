package cmd

import (
	"prompt-gallery/pkg/service"
	"prompt-gallery/pkg/signals"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewBuildCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "解析目录下的所有 markdown 并生成画廊 JSON",
		Long: "按文件名顺序解析目录中匹配 gallery.pattern 的文件，按编号去重（先出现的保留），" +
			"按编号倒序写入同目录下的 gallery.output。单个文件失败只记录日志，不影响其他文件",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := opts.cfg.GalleryConfig.InputDir
			if len(args) == 1 {
				dir = args[0]
			}

			ctx := signals.SetupSignalHandler()
			svc := service.NewGalleryService(opts.cfg.GalleryConfig)
			result, err := svc.Build(ctx, dir)
			if err != nil {
				return err
			}
			if len(result.Failed) > 0 {
				zap.S().Warnf("%d 个文件处理失败，已跳过", len(result.Failed))
			}
			return nil
		},
	}
	return cmd
}
