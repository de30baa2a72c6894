package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "学习报告相关操作",
}

var reportShowCmd = &cobra.Command{
	Use:   "show",
	Short: "打印当前学习报告",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		report := a.ReportService.Get()
		data, err := a.ReportService.Export()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "学生: %s（%s %s）\n",
			report.StudentInfo.Name, report.StudentInfo.Grade, report.StudentInfo.Subject)
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

var reportExportCmd = &cobra.Command{
	Use:   "export",
	Short: "导出学习报告为 JSON 文件",
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
		path, err := a.ReportService.ExportToFile(dir)
		if err != nil {
			return fmt.Errorf("导出学习报告失败: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已导出: %s\n", path)
		return nil
	},
}

var reportImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "从 JSON 文件导入学习报告",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}
		if err := a.ReportService.Import(data); err != nil {
			return fmt.Errorf("导入学习报告失败: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), "导入完成")
		return nil
	},
}

var reportResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "重置学习报告为初始数据",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		if err := a.ReportService.Reset(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "学习报告已重置")
		return nil
	},
}

func init() {
	reportExportCmd.Flags().String("dir", "", "导出目录，默认取配置 export.dir")
	reportCmd.AddCommand(reportShowCmd, reportExportCmd, reportImportCmd, reportResetCmd)
	rootCmd.AddCommand(reportCmd)
}
