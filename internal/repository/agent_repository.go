package repository

import (
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/pkg/kvstore"
)

// AgentRepository 管理智能体目录下的五个集合
type AgentRepository struct {
	KV kvstore.Store
}

func NewAgentRepository(kv kvstore.Store) *AgentRepository {
	return &AgentRepository{KV: kv}
}

func (r *AgentRepository) Agents() []model.Agent {
	agents, _ := loadDoc[[]model.Agent](r.KV, KeyAgents)
	return agents
}

func (r *AgentRepository) SaveAgents(agents []model.Agent) error {
	return saveDoc(r.KV, KeyAgents, agents)
}

func (r *AgentRepository) Statistics() map[string]model.AgentStatistics {
	stats, ok := loadDoc[map[string]model.AgentStatistics](r.KV, KeyStatistics)
	if !ok || stats == nil {
		return make(map[string]model.AgentStatistics)
	}
	return stats
}

func (r *AgentRepository) SaveStatistics(stats map[string]model.AgentStatistics) error {
	return saveDoc(r.KV, KeyStatistics, stats)
}

func (r *AgentRepository) Comments() []model.Comment {
	comments, _ := loadDoc[[]model.Comment](r.KV, KeyComments)
	return comments
}

func (r *AgentRepository) SaveComments(comments []model.Comment) error {
	return saveDoc(r.KV, KeyComments, comments)
}

// UserRatings 结构为 userId -> agentId -> 分值
func (r *AgentRepository) UserRatings() map[string]map[string]int {
	ratings, ok := loadDoc[map[string]map[string]int](r.KV, KeyUserRatings)
	if !ok || ratings == nil {
		return make(map[string]map[string]int)
	}
	return ratings
}

func (r *AgentRepository) SaveUserRatings(ratings map[string]map[string]int) error {
	return saveDoc(r.KV, KeyUserRatings, ratings)
}

// UsageRecords 结构为 agentId -> 学生使用行列表
func (r *AgentRepository) UsageRecords() map[string][]model.UsageRecord {
	records, ok := loadDoc[map[string][]model.UsageRecord](r.KV, KeyUsageRecords)
	if !ok || records == nil {
		return make(map[string][]model.UsageRecord)
	}
	return records
}

func (r *AgentRepository) SaveUsageRecords(records map[string][]model.UsageRecord) error {
	return saveDoc(r.KV, KeyUsageRecords, records)
}

func (r *AgentRepository) HasAgents() bool {
	return hasDoc(r.KV, KeyAgents)
}

func (r *AgentRepository) HasStatistics() bool {
	return hasDoc(r.KV, KeyStatistics)
}

func (r *AgentRepository) HasComments() bool {
	return hasDoc(r.KV, KeyComments)
}

func (r *AgentRepository) HasUsageRecords() bool {
	return hasDoc(r.KV, KeyUsageRecords)
}

// ClearAll 清空智能体目录的全部集合
func (r *AgentRepository) ClearAll() error {
	for _, key := range []string{KeyAgents, KeyStatistics, KeyComments, KeyUserRatings, KeyUsageRecords} {
		if err := r.KV.Delete(key); err != nil {
			return err
		}
	}
	return nil
}
