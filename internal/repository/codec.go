package repository

import (
	"encoding/json"
	"errors"

	"teaching_platform_backend/pkg/kvstore"
	"teaching_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

// loadDoc 读取并反序列化一份文档。key 不存在、payload 损坏或后端故障
// 都按"没有数据"处理并留日志，由上层用默认文档兜底，绝不向 UI 抛错。
func loadDoc[T any](kv kvstore.Store, key string) (T, bool) {
	var doc T

	data, err := kv.Get(key)
	if errors.Is(err, kvstore.ErrKeyNotFound) {
		return doc, false
	}
	if err != nil {
		logger.Log.Error("读取存储失败", zap.String("key", key), zap.Error(err))
		return doc, false
	}

	if err := json.Unmarshal(data, &doc); err != nil {
		logger.Log.Warn("存储数据损坏，回退默认数据", zap.String("key", key), zap.Error(err))
		var zero T
		return zero, false
	}
	return doc, true
}

func saveDoc[T any](kv kvstore.Store, key string, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return kv.Set(key, data)
}

func hasDoc(kv kvstore.Store, key string) bool {
	_, err := kv.Get(key)
	return err == nil
}
