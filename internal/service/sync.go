package service

import (
	"sort"

	"teaching_platform_backend/internal/model"

	"github.com/samber/lo"
)

type weakPoint struct {
	Name  string
	Score int
}

// MergeErrorsIntoReport 是错题本到学习报告的同步合并，纯函数，只改 report。
// 掌握度低于 70 的知识点取最弱的 5 个，前 3 个写进薄弱维度；
// 未掌握的数学错题会按数量压低两个能力分，下限分别是 60 和 65。
func MergeErrorsIntoReport(report *model.LearningReport, errorLog model.ErrorLog) {
	points := make([]weakPoint, 0, len(errorLog.Statistics.ByKnowledgePoint))
	for name, stat := range errorLog.Statistics.ByKnowledgePoint {
		if stat.Mastery < 70 {
			points = append(points, weakPoint{Name: name, Score: stat.Mastery})
		}
	}
	// map 遍历无序，按 (掌握度, 名称) 排序保证结果稳定
	sort.Slice(points, func(i, j int) bool {
		if points[i].Score != points[j].Score {
			return points[i].Score < points[j].Score
		}
		return points[i].Name < points[j].Name
	})
	if len(points) > 5 {
		points = points[:5]
	}

	weakest := points
	if len(weakest) > 3 {
		weakest = weakest[:3]
	}
	report.AbilityRadar.WeakestDimensions = lo.Map(weakest, func(p weakPoint, _ int) string {
		return p.Name
	})

	mathErrors := lo.CountBy(errorLog.Questions, func(q model.Question) bool {
		return q.Subject == "数学" && q.Status != model.StatusMastered
	})
	if mathErrors == 0 {
		return
	}

	setAbility(report, "概念理解", maxInt(60, 95-mathErrors*5))
	setAbility(report, "计算准确", maxInt(65, 90-mathErrors*4))
}

func setAbility(report *model.LearningReport, dimension string, score int) {
	for i := range report.AbilityRadar.Current {
		if report.AbilityRadar.Current[i].Dimension == dimension {
			report.AbilityRadar.Current[i].Score = score
			return
		}
	}
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
