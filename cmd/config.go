package cmd

import (
	"os"
	"path/filepath"

	"prompt-gallery/config"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const configHeader = `# prompt-gallery 配置文件
# 所有配置项都可以用环境变量覆盖，例如 PROMPT_GALLERY_GALLERY_OUTPUT=gallery.json

`

func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "配置文件相关操作",
		// 现有配置有问题时也要能重新生成
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
	}
	cmd.AddCommand(newConfigInitCommand())
	return cmd
}

func newConfigInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "生成默认配置文件",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "./etc/config.yaml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := WriteDefaultConfig(path, force); err != nil {
				return err
			}
			zap.S().Infof("默认配置已写入 %s", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "覆盖已存在的配置文件")
	return cmd
}

// WriteDefaultConfig 把默认配置以 yaml 写入 path
func WriteDefaultConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return errors.Errorf("%s 已存在，使用 --force 覆盖", path)
	}
	data, err := yaml.Marshal(config.NewDefaultGlobalConfig())
	if err != nil {
		return errors.Wrap(err, "序列化默认配置失败")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(err, "创建配置目录失败")
	}
	if err := os.WriteFile(path, append([]byte(configHeader), data...), 0o644); err != nil {
		return errors.Wrapf(err, "写入 %s 失败", path)
	}
	return nil
}
