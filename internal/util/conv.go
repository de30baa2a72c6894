package util

import (
	"strconv"
	"strings"
)

// LooseInt 宽松地把表格单元格转成整数，解析失败时返回 0
func LooseInt(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	// "85.0" 这类带小数的也接受
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return int(f)
	}
	return 0
}

// LooseFloat 宽松地解析浮点数，"85%" 按 85 处理
func LooseFloat(s string) float64 {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%"))
	if s == "" {
		return 0
	}
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

// LooseBool 解析表格里的布尔标记，只认已知的真值写法
func LooseBool(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "是", "高", "高风险":
		return true
	}
	return false
}

// SplitTags 按中英文逗号、顿号拆分标签并去掉空白项
func SplitTags(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == '，' || r == '、'
	})
	var tags []string
	for _, f := range fields {
		if t := strings.TrimSpace(f); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
