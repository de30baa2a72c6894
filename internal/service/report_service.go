package service

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"teaching_platform_backend/internal/fixture"
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/repository"
	"teaching_platform_backend/internal/util"
	"teaching_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

// ReportService 管理学习报告单文档。
// 所有修改都是 读全文档 -> 原地改 -> 写全文档，最后写入者胜出。
// 目标记录不存在时静默跳过并返回 found=false，调用方自行决定是否提示。
type ReportService struct {
	ReportRepo *repository.ReportRepository
	Now        func() time.Time
}

func NewReportService(reportRepo *repository.ReportRepository) *ReportService {
	return &ReportService{
		ReportRepo: reportRepo,
		Now:        time.Now,
	}
}

// Get 返回当前学习报告，首次访问时用内置默认数据初始化，永远不会失败
func (s *ReportService) Get() model.LearningReport {
	report, ok := s.ReportRepo.Find()
	if ok {
		return report
	}
	report = fixture.DefaultLearningReport()
	if err := s.Save(report); err != nil {
		logger.Log.Error("初始化学习报告失败", zap.Error(err))
	}
	return report
}

// Save 整体覆盖学习报告并刷新 lastUpdated
func (s *ReportService) Save(report model.LearningReport) error {
	report.LastUpdated = s.Now().Format(time.RFC3339)
	return s.ReportRepo.Save(report)
}

// UpdateProgress 更新知识模块进度，进度 >= 95 时状态置为 mastered
func (s *ReportService) UpdateProgress(moduleID int, progress int) (bool, error) {
	report := s.Get()
	for i := range report.KnowledgeMap.Modules {
		m := &report.KnowledgeMap.Modules[i]
		if m.ID != moduleID {
			continue
		}
		m.Progress = progress
		if progress >= 95 {
			m.Status = model.ModuleMastered
		} else if progress > 0 {
			m.Status = model.ModuleLearning
		}
		return true, s.Save(report)
	}
	logger.Log.Debug("模块不存在，跳过进度更新", zap.Int("moduleId", moduleID))
	return false, nil
}

// UpdateAbilityScore 更新当前能力雷达中某个维度的分数
func (s *ReportService) UpdateAbilityScore(dimension string, score int) (bool, error) {
	report := s.Get()
	for i := range report.AbilityRadar.Current {
		if report.AbilityRadar.Current[i].Dimension != dimension {
			continue
		}
		report.AbilityRadar.Current[i].Score = score
		return true, s.Save(report)
	}
	logger.Log.Debug("能力维度不存在，跳过更新", zap.String("dimension", dimension))
	return false, nil
}

// AddAchievement 解锁成就，已存在的 id 不重复添加
func (s *ReportService) AddAchievement(achievement model.Achievement) (bool, error) {
	report := s.Get()
	for _, a := range report.Overview.Achievements {
		if a.ID == achievement.ID {
			return false, nil
		}
	}
	achievement.Unlocked = true
	achievement.Date = s.Now().Format("2006-01-02")
	report.Overview.Achievements = append(report.Overview.Achievements, achievement)
	return true, s.Save(report)
}

// MarkRecommendationComplete 标记建议完成。只有正向操作，没有取消完成。
func (s *ReportService) MarkRecommendationComplete(recommendationID int) (bool, error) {
	report := s.Get()
	for i := range report.Recommendations.ActionItems {
		item := &report.Recommendations.ActionItems[i]
		if item.ID != recommendationID {
			continue
		}
		item.Completed = true
		item.CompletedDate = s.Now().Format(time.RFC3339)
		return true, s.Save(report)
	}
	return false, nil
}

// AddLearningRecord 记录今日学习数据，同一天的记录按字段覆盖
func (s *ReportService) AddLearningRecord(record model.DailyMetric) error {
	report := s.Get()
	// 和前端图表一致，日期用 MM-DD
	record.Date = s.Now().Format("01-02")

	for i := range report.PerformanceTrends.Daily {
		if report.PerformanceTrends.Daily[i].Date == record.Date {
			report.PerformanceTrends.Daily[i] = record
			return s.Save(report)
		}
	}
	report.PerformanceTrends.Daily = append(report.PerformanceTrends.Daily, record)
	return s.Save(report)
}

// UpdateStreak 连续学习天数 +1，并维护最佳纪录
func (s *ReportService) UpdateStreak() error {
	report := s.Get()
	report.Overview.StreakDays++
	if report.Overview.StreakDays > report.PerformanceTrends.KeyMetrics.BestStreak {
		report.PerformanceTrends.KeyMetrics.BestStreak = report.Overview.StreakDays
	}
	report.PerformanceTrends.KeyMetrics.CurrentStreak = report.Overview.StreakDays
	return s.Save(report)
}

// Export 导出整份报告为 JSON
func (s *ReportService) Export() ([]byte, error) {
	return json.MarshalIndent(s.Get(), "", "  ")
}

// ExportToFile 把报告写到 dir/learning_report_<YYYY-MM-DD>.json
func (s *ReportService) ExportToFile(dir string) (string, error) {
	data, err := s.Export()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, util.ReportFileName(s.Now()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}
	return path, nil
}

// Import 导入序列化形式的报告，整体覆盖，不做 schema 校验
func (s *ReportService) Import(data []byte) error {
	var report model.LearningReport
	if err := json.Unmarshal(data, &report); err != nil {
		return fmt.Errorf("导入数据解析失败: %w", err)
	}
	return s.Save(report)
}

// ImportDocument 导入已解析的报告对象
func (s *ReportService) ImportDocument(report model.LearningReport) error {
	return s.Save(report)
}

// Reset 恢复内置默认报告
func (s *ReportService) Reset() error {
	return s.Save(fixture.DefaultLearningReport())
}

// Clear 删除报告数据，下次 Get 时重新初始化
func (s *ReportService) Clear() error {
	return s.ReportRepo.Clear()
}

// SyncFromErrorLog 把错题本的知识点掌握情况合并进学习报告。
// 单向同步：错题本 -> 报告，反向永不发生。
func (s *ReportService) SyncFromErrorLog(errorLog model.ErrorLog) error {
	report := s.Get()
	MergeErrorsIntoReport(&report, errorLog)
	return s.Save(report)
}
