package cmd

import (
	"encoding/json"
	"strings"

	"prompt-gallery/pkg/model"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func NewCategoriesCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "categories",
		Short: "列出内置的分类表和关键词",
		Args:  cobra.NoArgs,
		// 内置分类表，不依赖配置
		PersistentPreRun: func(cmd *cobra.Command, args []string) {},
		RunE: func(cmd *cobra.Command, args []string) error {
			categories := model.DefaultCategories()
			w := cmd.OutOrStdout()

			switch output {
			case "text":
				rows := make([][]string, 0, len(categories))
				for _, c := range categories {
					rows = append(rows, []string{c.ID, c.Label(), strings.Join(c.Keywords, ", ")})
				}
				return writeTable(w, []string{"ID", "名称", "关键词"}, rows)
			case "yaml":
				enc := yaml.NewEncoder(w)
				enc.SetIndent(2)
				if err := enc.Encode(categories); err != nil {
					return errors.Wrap(err, "输出 yaml 失败")
				}
				return enc.Close()
			case "json":
				enc := json.NewEncoder(w)
				enc.SetEscapeHTML(false)
				enc.SetIndent("", "  ")
				return enc.Encode(categories)
			default:
				return errors.Errorf("不支持的输出格式 %q，只支持 text、yaml、json", output)
			}
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "text", "输出格式: text、yaml 或 json")
	return cmd
}
