// Package kvstore 提供平台数据核心使用的键值存储后端。
// 每个 key 对应一份完整的 JSON 文档，写入整体覆盖（last-writer-wins）。
package kvstore

import "errors"

// ErrKeyNotFound 表示存储中不存在该 key。首次访问属于预期情况，由上层用默认文档兜底。
var ErrKeyNotFound = errors.New("kvstore: key not found")

// Store 是可注入的存储后端接口
type Store interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	Close() error
}
