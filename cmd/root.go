package cmd

import (
	"os"

	"teaching_platform_backend/internal/app"
	"teaching_platform_backend/internal/config"
	"teaching_platform_backend/pkg/logger"

	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "teaching-platform",
	Short:         "教学平台数据管理工具：学习报告、错题本和智能体",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "configs", "配置文件所在目录")
}

// newApp 加载配置、初始化日志并组装依赖，所有子命令共用
func newApp() (*app.App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}
	logger.InitLogger(cfg)
	return app.New(cfg)
}
