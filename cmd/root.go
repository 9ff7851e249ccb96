package cmd

import (
	"errors"

	"prompt-gallery/config"
	"prompt-gallery/pkg/logger"
	"prompt-gallery/pkg/util"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// rootOptions 所有子命令共用的全局参数和配置
type rootOptions struct {
	configFilePath string
	logLevel       string
	cfg            *config.GlobalConfig
}

func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:          "prompt-gallery",
		Short:        "提示词画廊数据生成工具",
		Long:         "从 markdown 文档中提取提示词案例（标题、图片、提示词），自动分类后生成前端画廊使用的 JSON",
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd:   true,
			DisableNoDescFlag:   true,
			DisableDescriptions: true,
			HiddenDefaultCmd:    true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.init(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configFilePath, "config", "c", "", "配置文件路径，不指定时使用默认配置")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "日志级别，覆盖配置文件中的 log.level")

	rootCmd.AddCommand(NewParseCommand(opts))
	rootCmd.AddCommand(NewBuildCommand(opts))
	rootCmd.AddCommand(NewCategoriesCommand())
	rootCmd.AddCommand(NewStatsCommand(opts))
	rootCmd.AddCommand(NewConfigCommand())
	rootCmd.AddCommand(NewVersionCommand())

	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		zap.S().Info("使用 'build' 子命令生成画廊数据，或用 'parse' 从标准输入解析")
		cmd.Help()
	}
	rootCmd.Version = util.GetVersion().Version
	return rootCmd
}

// init 读取配置并初始化日志
func (o *rootOptions) init(cmd *cobra.Command) error {
	cfg, err := config.Load(o.configFilePath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogConfig.Level = o.logLevel
	}
	if errs := cfg.Validate(); len(errs) > 0 {
		return errors.Join(errs...)
	}
	if _, err := logger.Init(cfg.LogConfig); err != nil {
		return err
	}
	o.cfg = cfg
	return nil
}
