package util

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteSheetsThenReadFirstSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.xlsx")
	err := WriteSheets(path, []Sheet{
		{
			Name:   "使用记录",
			Header: []string{"学生编号", "学生姓名", "使用次数"},
			Rows: [][]interface{}{
				{"stu-001", "张三", 5},
				{"stu-002", "李四", 3},
			},
		},
		{
			Name:   "统计概览",
			Header: []string{"总使用次数"},
			Rows:   [][]interface{}{{8}},
		},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := ReadFirstSheet(f)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "stu-001", records[0]["学生编号"])
	assert.Equal(t, "张三", records[0]["学生姓名"])
	assert.Equal(t, "5", records[0]["使用次数"])
	assert.Equal(t, "stu-002", records[1]["学生编号"])
}

func TestReadFirstSheetShortRow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "short.xlsx")
	err := WriteSheets(path, []Sheet{
		{
			Name:   "Sheet",
			Header: []string{"学生编号", "标签"},
			Rows:   [][]interface{}{{"stu-001"}},
		},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	records, err := ReadFirstSheet(f)
	require.NoError(t, err)
	require.Len(t, records, 1)
	// 行比表头短时缺失列取空串
	assert.Equal(t, "", records[0]["标签"])
}

func TestReadFirstSheetHeaderOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	err := WriteSheets(path, []Sheet{
		{Name: "Sheet", Header: []string{"学生编号"}},
	})
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = ReadFirstSheet(f)
	assert.ErrorIs(t, err, ErrEmptyImport)
}

func TestFileNames(t *testing.T) {
	at := time.Date(2025, 3, 9, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, "数学小助手-usage-20250309.xlsx", ExcelFileName("数学小助手-usage", at))
	assert.Equal(t, "learning_report_2025-03-09.json", ReportFileName(at))
}
