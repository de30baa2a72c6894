package service

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/util"
	"teaching_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

// 导入表格里认得的列名，中英文表头都支持
var usageColumnAliases = map[string][]string{
	"studentId":      {"studentId", "学生编号", "学号"},
	"studentName":    {"studentName", "学生姓名", "姓名"},
	"usageCount":     {"usageCount", "使用次数"},
	"completionRate": {"completionRate", "完成率"},
	"tags":           {"tags", "标签"},
	"isRisk":         {"isRisk", "风险", "风险标记"},
}

var usageExportHeader = []string{"学生编号", "学生姓名", "使用次数", "完成率", "标签", "风险"}

func (s *AgentService) UsageRecords(agentID string) []model.UsageRecord {
	return s.AgentRepo.UsageRecords()[agentID]
}

// MergeUsageRecords 按 studentId 合并导入行：已有行被导入行整体替换，
// 新 studentId 追加到末尾。没有 studentId 的行直接丢弃。
func (s *AgentService) MergeUsageRecords(agentID string, imported []model.UsageRecord) ([]model.UsageRecord, error) {
	all := s.AgentRepo.UsageRecords()
	current := all[agentID]

	merged := make([]model.UsageRecord, 0, len(current)+len(imported))
	index := make(map[string]int)
	for _, record := range current {
		if record.StudentID == "" {
			continue
		}
		index[record.StudentID] = len(merged)
		merged = append(merged, record)
	}
	for _, record := range imported {
		if record.StudentID == "" {
			continue
		}
		if pos, ok := index[record.StudentID]; ok {
			merged[pos] = record
		} else {
			index[record.StudentID] = len(merged)
			merged = append(merged, record)
		}
	}

	all[agentID] = merged
	if err := s.AgentRepo.SaveUsageRecords(all); err != nil {
		return nil, err
	}
	return merged, nil
}

// ImportUsageRecords 从 xlsx 导入学生使用记录。
// 全部行先归一化再入库：解析失败或没有有效行时存储保持原样。
func (s *AgentService) ImportUsageRecords(agentID string, r io.Reader) ([]model.UsageRecord, error) {
	rows, err := util.ReadFirstSheet(r)
	if err != nil {
		return nil, err
	}

	records := make([]model.UsageRecord, 0, len(rows))
	dropped := 0
	for _, row := range rows {
		record, ok := normalizeUsageRow(row)
		if !ok {
			dropped++
			continue
		}
		records = append(records, record)
	}
	if dropped > 0 {
		logger.Log.Warn("部分导入行缺少学生编号，已丢弃",
			zap.String("agentId", agentID), zap.Int("dropped", dropped))
	}
	if len(records) == 0 {
		return nil, util.ErrEmptyImport
	}
	return s.MergeUsageRecords(agentID, records)
}

// normalizeUsageRow 把松散类型的表格行映射成固定结构。
// 拿不到学生编号的行宁可丢弃也不猜。
func normalizeUsageRow(row map[string]string) (model.UsageRecord, bool) {
	studentID := strings.TrimSpace(pickColumn(row, "studentId"))
	if studentID == "" {
		return model.UsageRecord{}, false
	}
	return model.UsageRecord{
		StudentID:      studentID,
		StudentName:    strings.TrimSpace(pickColumn(row, "studentName")),
		UsageCount:     util.LooseInt(pickColumn(row, "usageCount")),
		CompletionRate: util.LooseFloat(pickColumn(row, "completionRate")),
		Tags:           util.SplitTags(pickColumn(row, "tags")),
		IsRisk:         util.LooseBool(pickColumn(row, "isRisk")),
	}, true
}

func pickColumn(row map[string]string, field string) string {
	for _, alias := range usageColumnAliases[field] {
		if value, ok := row[alias]; ok && strings.TrimSpace(value) != "" {
			return value
		}
	}
	return ""
}

// ExportUsageRecords 导出某个智能体的使用记录和统计概览，
// 文件名为 <agent名>-usage-<YYYYMMDD>.xlsx
func (s *AgentService) ExportUsageRecords(agentID string, dir string) (string, error) {
	agent, err := s.AgentByID(agentID)
	if err != nil {
		return "", err
	}

	records := s.UsageRecords(agentID)
	rows := make([][]interface{}, 0, len(records))
	for _, record := range records {
		risk := ""
		if record.IsRisk {
			risk = "是"
		}
		rows = append(rows, []interface{}{
			record.StudentID,
			record.StudentName,
			record.UsageCount,
			record.CompletionRate,
			strings.Join(record.Tags, ","),
			risk,
		})
	}

	sheets := []util.Sheet{
		{Name: "使用记录", Header: usageExportHeader, Rows: rows},
	}
	if stats, ok := s.Statistics(agentID); ok {
		sheets = append(sheets, util.Sheet{
			Name:   "统计概览",
			Header: []string{"总使用次数", "平均评分", "评分人数", "留言数"},
			Rows: [][]interface{}{
				{stats.TotalUsage, stats.AverageRating, stats.TotalRatings, stats.TotalComments},
			},
		})
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, util.ExcelFileName(fmt.Sprintf("%s-usage", agent.Name), s.Now()))
	if err := util.WriteSheets(path, sheets); err != nil {
		return "", err
	}
	return path, nil
}

// ExportUsageTemplate 导出只含表头的导入模板
func (s *AgentService) ExportUsageTemplate(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, util.ExcelFileName("usage-template", s.Now()))
	sheets := []util.Sheet{{Name: "使用记录", Header: usageExportHeader}}
	if err := util.WriteSheets(path, sheets); err != nil {
		return "", err
	}
	return path, nil
}
