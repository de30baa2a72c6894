package repository

import (
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/pkg/kvstore"
)

type ErrorLogRepository struct {
	KV kvstore.Store
}

func NewErrorLogRepository(kv kvstore.Store) *ErrorLogRepository {
	return &ErrorLogRepository{KV: kv}
}

func (r *ErrorLogRepository) Find() (model.ErrorLog, bool) {
	return loadDoc[model.ErrorLog](r.KV, KeyErrorQuestions)
}

func (r *ErrorLogRepository) Save(doc model.ErrorLog) error {
	return saveDoc(r.KV, KeyErrorQuestions, doc)
}

func (r *ErrorLogRepository) Exists() bool {
	return hasDoc(r.KV, KeyErrorQuestions)
}

func (r *ErrorLogRepository) Clear() error {
	return r.KV.Delete(KeyErrorQuestions)
}
