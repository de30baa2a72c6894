package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "补种缺失的初始数据（已有数据不动）",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		// newApp 在 seed.on_start 开启时已补种过，这里保证关掉开关也能手动补
		if err := a.Seed(); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "初始数据就绪")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
