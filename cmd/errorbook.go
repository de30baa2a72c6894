package cmd

import (
	"fmt"

	"teaching_platform_backend/internal/model"

	"github.com/spf13/cobra"
)

var errorbookCmd = &cobra.Command{
	Use:   "errorbook",
	Short: "错题本相关操作",
}

var errorbookListCmd = &cobra.Command{
	Use:   "list",
	Short: "按条件列出错题",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		subject, _ := cmd.Flags().GetString("subject")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		status, _ := cmd.Flags().GetString("status")
		point, _ := cmd.Flags().GetString("point")

		questions := a.ErrorService.Filter(model.QuestionFilter{
			Subject:        subject,
			Difficulty:     difficulty,
			Status:         model.QuestionStatus(status),
			KnowledgePoint: point,
		})
		for _, q := range questions {
			priority := ""
			if q.IsPriority {
				priority = " [重点]"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s  %s/%s  %s  %s  重做%d次%s\n",
				q.ID, q.Subject, q.KnowledgePoint, q.Difficulty, q.Status, q.RetryCount, priority)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "共 %d 题\n", len(questions))
		return nil
	},
}

var errorbookRetryCmd = &cobra.Command{
	Use:   "retry <questionId> <answer>",
	Short: "提交错题重做答案",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		result, err := a.ErrorService.SubmitRetry(args[0], args[1])
		if err != nil {
			return err
		}
		if !result.Found {
			return fmt.Errorf("错题不存在: %s", args[0])
		}
		if result.IsCorrect {
			fmt.Fprintln(cmd.OutOrStdout(), "回答正确")
		} else {
			fmt.Fprintln(cmd.OutOrStdout(), "回答错误")
		}
		return nil
	},
}

var errorbookStatusCmd = &cobra.Command{
	Use:   "status <questionId> <not_reviewed|reviewing|mastered>",
	Short: "手动修改错题复习状态",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		found, err := a.ErrorService.UpdateStatus(args[0], model.QuestionStatus(args[1]))
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("错题不存在: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "状态已更新")
		return nil
	},
}

var errorbookPriorityCmd = &cobra.Command{
	Use:   "priority <questionId>",
	Short: "切换错题重点标记",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		found, err := a.ErrorService.TogglePriority(args[0])
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("错题不存在: %s", args[0])
		}
		fmt.Fprintln(cmd.OutOrStdout(), "重点标记已切换")
		return nil
	},
}

var errorbookStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "打印错题统计",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()

		doc, ok := a.ErrorService.Get()
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "错题本为空")
			return nil
		}
		stat := doc.Statistics
		fmt.Fprintf(cmd.OutOrStdout(), "总错题: %d  已掌握: %d  复习中: %d  未复习: %d\n",
			stat.TotalErrors, stat.MasteredCount, stat.ReviewingCount, stat.NotReviewedCount)
		for subject, count := range stat.BySubject {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", subject, count)
		}
		for point, ps := range stat.ByKnowledgePoint {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d题 正确率%d%% 掌握度%d\n",
				point, ps.Count, ps.CorrectRate, ps.Mastery)
		}
		return nil
	},
}

func init() {
	errorbookListCmd.Flags().String("subject", "", "按学科筛选")
	errorbookListCmd.Flags().String("difficulty", "", "按难度筛选")
	errorbookListCmd.Flags().String("status", "", "按状态筛选")
	errorbookListCmd.Flags().String("point", "", "按知识点筛选")
	errorbookCmd.AddCommand(errorbookListCmd, errorbookRetryCmd, errorbookStatusCmd,
		errorbookPriorityCmd, errorbookStatsCmd)
	rootCmd.AddCommand(errorbookCmd)
}
