package cmd

import (
	"fmt"

	"teaching_platform_backend/internal/model"

	"github.com/spf13/cobra"
)

var agentCmd = &cobra.Command{
	Use:   "agent",
	Short: "教学智能体相关操作",
}

var agentListCmd = &cobra.Command{
	Use:   "list",
	Short: "列出全部智能体",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, agent := range a.AgentService.Agents() {
			state := "启用"
			if !agent.IsActive {
				state = "停用"
			}
			line := fmt.Sprintf("%s  %s  [%s]", agent.ID, agent.Name, state)
			if stats, ok := a.AgentService.Statistics(agent.ID); ok {
				line += fmt.Sprintf("  使用%d次 评分%.1f(%d人)",
					stats.TotalUsage, stats.AverageRating, stats.TotalRatings)
			}
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		return nil
	},
}

var agentCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "创建智能体",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		description, _ := cmd.Flags().GetString("description")
		specialty, _ := cmd.Flags().GetStringSlice("specialty")
		color, _ := cmd.Flags().GetString("color")
		createdBy, _ := cmd.Flags().GetString("created-by")

		agent, err := a.AgentService.CreateAgent(model.Agent{
			Name:        args[0],
			Description: description,
			Specialty:   specialty,
			Color:       color,
			CreatedBy:   createdBy,
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已创建: %s (%s)\n", agent.Name, agent.ID)
		return nil
	},
}

var agentDeleteCmd = &cobra.Command{
	Use:   "delete <agentId>",
	Short: "删除智能体",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		found, err := a.AgentService.DeleteAgent(args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("智能体不存在: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "已删除")
		return nil
	},
}

var agentCommentsCmd = &cobra.Command{
	Use:   "comments <agentId>",
	Short: "列出智能体的学生留言",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		for _, c := range a.AgentService.CommentsByAgent(args[0]) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s(%s)  %d赞  [%s]\n  %s\n",
				c.ID, c.StudentName, c.StudentID, c.Likes, c.AuditStatus, c.Content)
		}
		return nil
	},
}

var agentAuditCmd = &cobra.Command{
	Use:   "audit <approved|rejected> <commentId>...",
	Short: "批量审核留言",
	Args:  cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		remark, _ := cmd.Flags().GetString("remark")
		auditor, _ := cmd.Flags().GetString("auditor")

		updated, err := a.AgentService.UpdateCommentsAuditStatus(
			args[1:], model.AuditStatus(args[0]), remark, auditor)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "已审核 %d 条留言\n", len(updated))
		return nil
	},
}

var agentRateCmd = &cobra.Command{
	Use:   "rate <agentId> <1-5>",
	Short: "给智能体评分",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		user, _ := cmd.Flags().GetString("user")
		var rating int
		if _, err := fmt.Sscanf(args[1], "%d", &rating); err != nil {
			return fmt.Errorf("评分必须是 1-5 的整数")
		}
		if err := a.AgentService.RateAgent(user, args[0], rating); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "评分已记录")
		return nil
	},
}

func init() {
	agentCreateCmd.Flags().String("description", "", "智能体描述")
	agentCreateCmd.Flags().StringSlice("specialty", nil, "擅长领域，逗号分隔")
	agentCreateCmd.Flags().String("color", "blue", "主题色")
	agentCreateCmd.Flags().String("created-by", "admin", "创建人")
	agentAuditCmd.Flags().String("remark", "", "审核备注")
	agentAuditCmd.Flags().String("auditor", "admin", "审核人")
	agentRateCmd.Flags().String("user", "admin", "评分用户")
	agentCmd.AddCommand(agentListCmd, agentCreateCmd, agentDeleteCmd,
		agentCommentsCmd, agentAuditCmd, agentRateCmd)
	rootCmd.AddCommand(agentCmd)
}
