package service

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usageXLSX(t *testing.T, header []string, rows [][]interface{}) *bytes.Reader {
	t.Helper()
	path := filepath.Join(t.TempDir(), "import.xlsx")
	require.NoError(t, util.WriteSheets(path, []util.Sheet{
		{Name: "使用记录", Header: header, Rows: rows},
	}))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return bytes.NewReader(data)
}

func TestMergeUsageRecordsReplacesByStudentID(t *testing.T) {
	svc := newAgentService(t)

	// student-001 原来 45 次，导入行整体替换
	merged, err := svc.MergeUsageRecords("agent-001", []model.UsageRecord{
		{StudentID: "student-001", StudentName: "张小明", UsageCount: 9},
		{StudentID: "student-100", StudentName: "新同学", UsageCount: 1},
	})
	require.NoError(t, err)
	require.Len(t, merged, 4)

	// 原有顺序保持，新学生追加在末尾
	assert.Equal(t, "student-001", merged[0].StudentID)
	assert.Equal(t, 9, merged[0].UsageCount)
	assert.Empty(t, merged[0].Tags)
	assert.Equal(t, "student-100", merged[3].StudentID)
}

func TestMergeUsageRecordsDropsRowsWithoutStudentID(t *testing.T) {
	svc := newAgentService(t)

	merged, err := svc.MergeUsageRecords("agent-003", []model.UsageRecord{
		{StudentName: "无编号", UsageCount: 3},
	})
	require.NoError(t, err)
	assert.Len(t, merged, 1)
}

func TestImportUsageRecordsChineseHeaders(t *testing.T) {
	svc := newAgentService(t)

	r := usageXLSX(t,
		[]string{"学生编号", "学生姓名", "使用次数", "完成率", "标签", "风险"},
		[][]interface{}{
			{"student-001", "张小明", "9", "88%", "进步明显，积极", "否"},
			{"student-200", "陈晨", "5", "46", "需要关注", "高风险"},
		})

	merged, err := svc.ImportUsageRecords("agent-001", r)
	require.NoError(t, err)
	require.Len(t, merged, 4)

	assert.Equal(t, 9, merged[0].UsageCount)
	assert.Equal(t, 88.0, merged[0].CompletionRate)
	assert.Equal(t, []string{"进步明显", "积极"}, merged[0].Tags)
	assert.False(t, merged[0].IsRisk)

	last := merged[3]
	assert.Equal(t, "student-200", last.StudentID)
	assert.True(t, last.IsRisk)
}

func TestImportUsageRecordsEnglishHeaders(t *testing.T) {
	svc := newAgentService(t)

	r := usageXLSX(t,
		[]string{"studentId", "studentName", "usageCount", "completionRate"},
		[][]interface{}{
			{"student-300", "English Row", "7", "70"},
		})

	merged, err := svc.ImportUsageRecords("agent-003", r)
	require.NoError(t, err)
	require.Len(t, merged, 2)
	assert.Equal(t, "student-300", merged[1].StudentID)
	assert.Equal(t, 70.0, merged[1].CompletionRate)
}

func TestImportUsageRecordsAllRowsInvalid(t *testing.T) {
	svc := newAgentService(t)
	before := svc.UsageRecords("agent-001")

	r := usageXLSX(t,
		[]string{"学生姓名", "使用次数"},
		[][]interface{}{{"没编号", "3"}})

	_, err := svc.ImportUsageRecords("agent-001", r)
	assert.ErrorIs(t, err, util.ErrEmptyImport)
	// 导入失败不碰存储
	assert.Equal(t, before, svc.UsageRecords("agent-001"))
}

func TestImportUsageRecordsGarbageFile(t *testing.T) {
	svc := newAgentService(t)
	before := svc.UsageRecords("agent-001")

	_, err := svc.ImportUsageRecords("agent-001", bytes.NewReader([]byte("not an xlsx")))
	assert.Error(t, err)
	assert.Equal(t, before, svc.UsageRecords("agent-001"))
}

func TestExportUsageRecords(t *testing.T) {
	svc := newAgentService(t)
	dir := t.TempDir()

	path, err := svc.ExportUsageRecords("agent-001", dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "数学小助手-usage-20250309.xlsx"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := util.ReadFirstSheet(f)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "student-001", rows[0]["学生编号"])
	assert.Equal(t, "45", rows[0]["使用次数"])
	assert.Equal(t, "是", rows[2]["风险"])
}

func TestExportUsageRecordsUnknownAgent(t *testing.T) {
	svc := newAgentService(t)
	_, err := svc.ExportUsageRecords("agent-404", t.TempDir())
	assert.ErrorIs(t, err, util.ErrAgentNotFound)
}

func TestExportUsageTemplate(t *testing.T) {
	svc := newAgentService(t)

	path, err := svc.ExportUsageTemplate(t.TempDir())
	require.NoError(t, err)
	assert.FileExists(t, path)
}
