package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var usageCmd = &cobra.Command{
	Use:   "usage",
	Short: "学生使用记录的导入导出",
}

var usageImportCmd = &cobra.Command{
	Use:   "import <agentId> <file.xlsx>",
	Short: "从 xlsx 导入学生使用记录，按学生编号合并",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		f, err := os.Open(args[1])
		if err != nil {
			return err
		}
		defer f.Close()

		merged, err := a.AgentService.ImportUsageRecords(args[0], f)
		if err != nil {
			return fmt.Errorf("导入使用记录失败: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "导入完成，当前共 %d 条记录\n", len(merged))
		return nil
	},
}

var usageExportCmd = &cobra.Command{
	Use:   "export <agentId>",
	Short: "导出智能体的学生使用记录为 xlsx",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = a.Config.Export.Dir
		}
		path, err := a.AgentService.ExportUsageRecords(args[0], dir)
		if err != nil {
			return fmt.Errorf("导出使用记录失败: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已导出: %s\n", path)
		return nil
	},
}

var usageTemplateCmd = &cobra.Command{
	Use:   "template",
	Short: "导出使用记录导入模板",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		dir, _ := cmd.Flags().GetString("dir")
		if dir == "" {
			dir = a.Config.Export.Dir
		}
		path, err := a.AgentService.ExportUsageTemplate(dir)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已导出: %s\n", path)
		return nil
	},
}

func init() {
	usageExportCmd.Flags().String("dir", "", "导出目录，默认取配置 export.dir")
	usageTemplateCmd.Flags().String("dir", "", "导出目录，默认取配置 export.dir")
	usageCmd.AddCommand(usageImportCmd, usageExportCmd, usageTemplateCmd)
	rootCmd.AddCommand(usageCmd)
}
