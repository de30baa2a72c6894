package service

import (
	"testing"

	"teaching_platform_backend/internal/fixture"
	"teaching_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func abilityScore(report model.LearningReport, dimension string) int {
	for _, a := range report.AbilityRadar.Current {
		if a.Dimension == dimension {
			return a.Score
		}
	}
	return -1
}

func TestMergeWeakestDimensions(t *testing.T) {
	report := fixture.DefaultLearningReport()
	errorLog := model.ErrorLog{
		Statistics: model.ErrorStatistics{
			ByKnowledgePoint: map[string]model.KnowledgePointStat{
				"二次函数": {Mastery: 10},
				"不等式":  {Mastery: 30},
				"语法":   {Mastery: 50},
				"自由落体": {Mastery: 60},
				"极限":   {Mastery: 65},
				"导数":   {Mastery: 68},
				"已掌握":  {Mastery: 100},
			},
		},
	}

	MergeErrorsIntoReport(&report, errorLog)

	// 掌握度最低的前 3 个进薄弱维度
	assert.Equal(t, []string{"二次函数", "不等式", "语法"}, report.AbilityRadar.WeakestDimensions)
}

func TestMergeWeakestDimensionsTiesSortByName(t *testing.T) {
	report := fixture.DefaultLearningReport()
	errorLog := model.ErrorLog{
		Statistics: model.ErrorStatistics{
			ByKnowledgePoint: map[string]model.KnowledgePointStat{
				"丙": {Mastery: 40},
				"甲": {Mastery: 40},
				"乙": {Mastery: 40},
			},
		},
	}

	MergeErrorsIntoReport(&report, errorLog)
	// 同分按名称排序，保证结果稳定
	assert.Equal(t, []string{"丙", "乙", "甲"}, report.AbilityRadar.WeakestDimensions)
}

func TestMergeMathErrorsLowerAbilityScores(t *testing.T) {
	report := fixture.DefaultLearningReport()
	errorLog := model.ErrorLog{
		Questions: []model.Question{
			{ID: "a", Subject: "数学", Status: model.StatusNotReviewed},
			{ID: "b", Subject: "数学", Status: model.StatusReviewing},
			{ID: "c", Subject: "数学", Status: model.StatusMastered},
			{ID: "d", Subject: "英语", Status: model.StatusNotReviewed},
		},
	}

	MergeErrorsIntoReport(&report, errorLog)

	// 2 道未掌握的数学错题: 95-2*5=85, 90-2*4=82
	assert.Equal(t, 85, abilityScore(report, "概念理解"))
	assert.Equal(t, 82, abilityScore(report, "计算准确"))
}

func TestMergeMathErrorsFloor(t *testing.T) {
	report := fixture.DefaultLearningReport()
	questions := make([]model.Question, 20)
	for i := range questions {
		questions[i] = model.Question{Subject: "数学", Status: model.StatusNotReviewed}
	}

	MergeErrorsIntoReport(&report, model.ErrorLog{Questions: questions})

	assert.Equal(t, 60, abilityScore(report, "概念理解"))
	assert.Equal(t, 65, abilityScore(report, "计算准确"))
}

func TestMergeNoMathErrorsKeepsScores(t *testing.T) {
	report := fixture.DefaultLearningReport()
	before := abilityScore(report, "概念理解")

	MergeErrorsIntoReport(&report, model.ErrorLog{
		Questions: []model.Question{
			{Subject: "英语", Status: model.StatusNotReviewed},
		},
	})

	assert.Equal(t, before, abilityScore(report, "概念理解"))
	assert.Empty(t, report.AbilityRadar.WeakestDimensions)
}
