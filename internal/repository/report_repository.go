package repository

import (
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/pkg/kvstore"
)

type ReportRepository struct {
	KV kvstore.Store
}

func NewReportRepository(kv kvstore.Store) *ReportRepository {
	return &ReportRepository{KV: kv}
}

// Find 返回存储中的学习报告，不存在或损坏时 ok 为 false
func (r *ReportRepository) Find() (model.LearningReport, bool) {
	return loadDoc[model.LearningReport](r.KV, KeyLearningReport)
}

func (r *ReportRepository) Save(report model.LearningReport) error {
	return saveDoc(r.KV, KeyLearningReport, report)
}

func (r *ReportRepository) Exists() bool {
	return hasDoc(r.KV, KeyLearningReport)
}

func (r *ReportRepository) Clear() error {
	return r.KV.Delete(KeyLearningReport)
}
