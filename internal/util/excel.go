package util

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"
)

// Sheet 是一页待导出的表格数据
type Sheet struct {
	Name   string
	Header []string
	Rows   [][]interface{}
}

// ReadFirstSheet 读取 xlsx 第一个工作表，首行为表头，
// 返回每行 表头->单元格 的映射，缺失单元格取空串。
func ReadFirstSheet(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("解析表格文件失败: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrEmptyImport
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(rows) < 2 {
		return nil, ErrEmptyImport
	}

	header := rows[0]
	records := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(header))
		for i, name := range header {
			if name == "" {
				continue
			}
			if i < len(row) {
				record[name] = row[i]
			} else {
				record[name] = ""
			}
		}
		records = append(records, record)
	}
	return records, nil
}

// WriteSheets 把多页数据写成一个 xlsx 文件
func WriteSheets(path string, sheets []Sheet) error {
	if len(sheets) == 0 {
		return ErrEmptyImport
	}

	f := excelize.NewFile()
	defer f.Close()

	for i, sheet := range sheets {
		name := sheet.Name
		if i == 0 {
			if err := f.SetSheetName("Sheet1", name); err != nil {
				return err
			}
		} else {
			if _, err := f.NewSheet(name); err != nil {
				return err
			}
		}

		header := make([]interface{}, len(sheet.Header))
		for j, h := range sheet.Header {
			header[j] = h
		}
		if err := f.SetSheetRow(name, "A1", &header); err != nil {
			return err
		}
		for j, row := range sheet.Rows {
			cell, err := excelize.CoordinatesToCellName(1, j+2)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(name, cell, &row); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

// ExcelFileName 生成 <prefix>-<YYYYMMDD>.xlsx
func ExcelFileName(prefix string, t time.Time) string {
	return fmt.Sprintf("%s-%s.xlsx", prefix, t.Format("20060102"))
}

// ReportFileName 生成 learning_report_<YYYY-MM-DD>.json
func ReportFileName(t time.Time) string {
	return fmt.Sprintf("learning_report_%s.json", t.Format("2006-01-02"))
}
