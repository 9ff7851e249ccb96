package cmd

import (
	"fmt"

	"prompt-gallery/pkg/db"
	"prompt-gallery/pkg/model"
	"prompt-gallery/pkg/service"
	"prompt-gallery/pkg/signals"

	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func NewStatsCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats [file]",
		Short: "统计画廊 JSON 中各分类的提示词数量",
		Long:  "把已生成的画廊 JSON 载入 DuckDB（默认内存库），输出总数、带图数量和分类分布",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := opts.cfg.GalleryConfig.OutputPath("")
			if len(args) == 1 {
				file = args[0]
			}

			cases, err := service.LoadGalleryFile(file)
			if err != nil {
				return err
			}

			ctx := signals.SetupSignalHandler()

			// 初始化 DuckDB
			if err := db.InitDuckDB(opts.cfg.DuckDBConfig); err != nil {
				return err
			}
			defer func() {
				if err := db.CloseDuckDB(); err != nil {
					zap.S().Warnf("关闭 DuckDB 失败: %v", err)
				}
			}()

			statsService := service.NewStatsService(db.GetDuckDBWithContext(ctx))
			if err := statsService.Load(ctx, cases); err != nil {
				return err
			}
			summary, err := statsService.Summary(ctx)
			if err != nil {
				return err
			}

			labels := make(map[string]string)
			for _, c := range model.DefaultCategories() {
				labels[c.ID] = c.Label()
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "提示词总数: %d\n", summary.Total)
			fmt.Fprintf(w, "带图片: %d\n\n", summary.WithImage)

			rows := make([][]string, 0, len(summary.Tags))
			for _, tc := range summary.Tags {
				label, ok := labels[tc.Tag]
				if !ok {
					label = tc.Tag
				}
				rows = append(rows, []string{tc.Tag, label, cast.ToString(tc.Count)})
			}
			return writeTable(w, []string{"分类", "名称", "数量"}, rows)
		},
	}
	return cmd
}
