package cmd

import (
	"prompt-gallery/pkg/service"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewParseCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse",
		Short: "从标准输入读取 markdown，输出 JSON 到标准输出",
		Long:  "读取标准输入中的整篇 markdown，按文档中的出现顺序输出提示词数组（不去重、不排序）",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := service.NewGalleryService(opts.cfg.GalleryConfig)
			cases, err := svc.ParseStream(cmd.InOrStdin())
			if err != nil {
				return err
			}
			zap.S().Infof("解析出 %d 条提示词", len(cases))
			return service.Encode(cmd.OutOrStdout(), cases)
		},
	}
	return cmd
}
