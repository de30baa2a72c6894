package util

import "errors"

var (
	ErrAgentNotFound = errors.New("智能体不存在")
	ErrInvalidRating = errors.New("评分必须在 1-5 之间")
	ErrEmptyImport   = errors.New("导入文件中没有可用数据行")
)
