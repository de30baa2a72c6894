package service

import (
	"math"
	"net/url"
	"time"

	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/repository"
	"teaching_platform_backend/internal/util"
	"teaching_platform_backend/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AgentService 管理智能体目录：档案、统计、留言、评分、学生使用记录
type AgentService struct {
	AgentRepo *repository.AgentRepository
	Now       func() time.Time
}

func NewAgentService(agentRepo *repository.AgentRepository) *AgentService {
	return &AgentService{
		AgentRepo: agentRepo,
		Now:       time.Now,
	}
}

func (s *AgentService) Agents() []model.Agent {
	return s.AgentRepo.Agents()
}

func (s *AgentService) AgentByID(agentID string) (model.Agent, error) {
	for _, agent := range s.AgentRepo.Agents() {
		if agent.ID == agentID {
			return agent, nil
		}
	}
	return model.Agent{}, util.ErrAgentNotFound
}

// CreateAgent 创建智能体：分配 id、生成头像、初始化统计。
// 头像由名字确定性派生，同名智能体头像一致。
func (s *AgentService) CreateAgent(agent model.Agent) (model.Agent, error) {
	agent.ID = "agent-" + uuid.New().String()
	agent.CreatedAt = s.Now().UnixMilli()
	agent.IsActive = true
	if agent.Avatar == "" {
		agent.Avatar = "https://api.dicebear.com/7.x/bottts/svg?seed=" + url.QueryEscape(agent.Name)
	}

	agents := append(s.AgentRepo.Agents(), agent)
	if err := s.AgentRepo.SaveAgents(agents); err != nil {
		return model.Agent{}, err
	}
	if err := s.initStatistics(agent.ID); err != nil {
		return model.Agent{}, err
	}
	return agent, nil
}

// AgentUpdate 更新补丁，nil 字段不变（浅合并）
type AgentUpdate struct {
	Name         *string
	Description  *string
	Specialty    []string
	Capabilities []string
	Greeting     *string
	Personality  *string
	Color        *string
	IsActive     *bool
}

func (s *AgentService) UpdateAgent(agentID string, update AgentUpdate) (model.Agent, bool, error) {
	agents := s.AgentRepo.Agents()
	for i := range agents {
		if agents[i].ID != agentID {
			continue
		}
		a := &agents[i]
		if update.Name != nil {
			a.Name = *update.Name
		}
		if update.Description != nil {
			a.Description = *update.Description
		}
		if update.Specialty != nil {
			a.Specialty = update.Specialty
		}
		if update.Capabilities != nil {
			a.Capabilities = update.Capabilities
		}
		if update.Greeting != nil {
			a.Greeting = *update.Greeting
		}
		if update.Personality != nil {
			a.Personality = *update.Personality
		}
		if update.Color != nil {
			a.Color = *update.Color
		}
		if update.IsActive != nil {
			a.IsActive = *update.IsActive
		}
		if err := s.AgentRepo.SaveAgents(agents); err != nil {
			return model.Agent{}, false, err
		}
		return *a, true, nil
	}
	return model.Agent{}, false, nil
}

// DeleteAgent 只删除档案本身。统计、留言、使用记录会留下孤儿数据，
// 这是沿用下来的行为，留日志方便后续清理。
func (s *AgentService) DeleteAgent(agentID string) (bool, error) {
	agents := s.AgentRepo.Agents()
	kept := make([]model.Agent, 0, len(agents))
	found := false
	for _, a := range agents {
		if a.ID == agentID {
			found = true
			continue
		}
		kept = append(kept, a)
	}
	if !found {
		return false, nil
	}
	if err := s.AgentRepo.SaveAgents(kept); err != nil {
		return false, err
	}
	logger.Log.Info("智能体已删除，关联数据未级联清理", zap.String("agentId", agentID))
	return true, nil
}

// Statistics 返回某个智能体的统计，未初始化时 ok 为 false
func (s *AgentService) Statistics(agentID string) (model.AgentStatistics, bool) {
	stats, ok := s.AgentRepo.Statistics()[agentID]
	return stats, ok
}

func (s *AgentService) initStatistics(agentID string) error {
	stats := s.AgentRepo.Statistics()
	if _, ok := stats[agentID]; ok {
		return nil
	}
	stats[agentID] = model.AgentStatistics{
		AgentID:            agentID,
		UsageByDate:        []model.DailyUsage{},
		RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
		PopularTimes:       []model.HourlyUsage{},
	}
	return s.AgentRepo.SaveStatistics(stats)
}

// RecordUsage 记一次使用：总量、按日计数（只留最近 30 天）、时段分布
func (s *AgentService) RecordUsage(agentID string) error {
	if err := s.initStatistics(agentID); err != nil {
		return err
	}
	stats := s.AgentRepo.Statistics()
	agentStats := stats[agentID]
	agentStats.TotalUsage++

	now := s.Now()
	today := now.Format("2006-01-02")
	updatedDay := false
	for i := range agentStats.UsageByDate {
		if agentStats.UsageByDate[i].Date == today {
			agentStats.UsageByDate[i].Count++
			updatedDay = true
			break
		}
	}
	if !updatedDay {
		agentStats.UsageByDate = append(agentStats.UsageByDate, model.DailyUsage{Date: today, Count: 1})
	}
	if len(agentStats.UsageByDate) > 30 {
		agentStats.UsageByDate = agentStats.UsageByDate[len(agentStats.UsageByDate)-30:]
	}

	hour := now.Hour()
	updatedHour := false
	for i := range agentStats.PopularTimes {
		if agentStats.PopularTimes[i].Hour == hour {
			agentStats.PopularTimes[i].Count++
			updatedHour = true
			break
		}
	}
	if !updatedHour {
		agentStats.PopularTimes = append(agentStats.PopularTimes, model.HourlyUsage{Hour: hour, Count: 1})
	}

	stats[agentID] = agentStats
	return s.AgentRepo.SaveStatistics(stats)
}

// RateAgent 用户对智能体评分，(userId, agentId) 只保留一条。
// 重复评分是替换：旧档位 -1、新档位 +1，总评分人数不变。
func (s *AgentService) RateAgent(userID, agentID string, rating int) error {
	if rating < 1 || rating > 5 {
		return util.ErrInvalidRating
	}
	if err := s.initStatistics(agentID); err != nil {
		return err
	}

	ratings := s.AgentRepo.UserRatings()
	if ratings[userID] == nil {
		ratings[userID] = make(map[string]int)
	}
	previous, hadPrevious := ratings[userID][agentID]
	if hadPrevious && previous == rating {
		return nil
	}
	ratings[userID][agentID] = rating
	if err := s.AgentRepo.SaveUserRatings(ratings); err != nil {
		return err
	}

	stats := s.AgentRepo.Statistics()
	agentStats := stats[agentID]
	if agentStats.RatingDistribution == nil {
		agentStats.RatingDistribution = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
	}
	if hadPrevious {
		if agentStats.RatingDistribution[previous] > 0 {
			agentStats.RatingDistribution[previous]--
		}
	} else {
		agentStats.TotalRatings++
	}
	agentStats.RatingDistribution[rating]++
	agentStats.AverageRating = averageRating(agentStats.RatingDistribution)

	stats[agentID] = agentStats
	return s.AgentRepo.SaveStatistics(stats)
}

// UserRating 返回用户对某个智能体的评分，没评过返回 0
func (s *AgentService) UserRating(userID, agentID string) int {
	return s.AgentRepo.UserRatings()[userID][agentID]
}

// averageRating 按评分分布算加权平均，保留一位小数
func averageRating(distribution map[int]int) float64 {
	totalScore, totalCount := 0, 0
	for star := 1; star <= 5; star++ {
		totalScore += star * distribution[star]
		totalCount += distribution[star]
	}
	if totalCount == 0 {
		return 0
	}
	return math.Round(float64(totalScore)/float64(totalCount)*10) / 10
}
