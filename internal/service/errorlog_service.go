package service

import (
	"strings"
	"time"

	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/repository"
	"teaching_platform_backend/pkg/logger"

	"go.uber.org/zap"
)

// ErrorLogService 管理错题本文档。
// 每次题目变更后都会全量重算统计，并把变更通知给订阅方
// （学习报告的同步就挂在这里），这条链路是契约的一部分。
type ErrorLogService struct {
	ErrorRepo *repository.ErrorLogRepository
	Now       func() time.Time

	subscribers []func(model.ErrorLog)
}

func NewErrorLogService(errorRepo *repository.ErrorLogRepository) *ErrorLogService {
	return &ErrorLogService{
		ErrorRepo: errorRepo,
		Now:       time.Now,
	}
}

// Subscribe 注册错题本变更回调
func (s *ErrorLogService) Subscribe(fn func(model.ErrorLog)) {
	s.subscribers = append(s.subscribers, fn)
}

func (s *ErrorLogService) notify(doc model.ErrorLog) {
	for _, fn := range s.subscribers {
		fn(doc)
	}
}

// Get 返回错题本，未初始化时 ok 为 false
func (s *ErrorLogService) Get() (model.ErrorLog, bool) {
	return s.ErrorRepo.Find()
}

// Initialize 首次使用时写入初始数据，已有数据不覆盖
func (s *ErrorLogService) Initialize(doc model.ErrorLog) error {
	if s.ErrorRepo.Exists() {
		return nil
	}
	return s.ErrorRepo.Save(doc)
}

// Filter 按科目/难度/状态/知识点筛选错题，空条件或 "all" 不过滤
func (s *ErrorLogService) Filter(filter model.QuestionFilter) []model.Question {
	doc, ok := s.Get()
	if !ok {
		return nil
	}

	var result []model.Question
	for _, q := range doc.Questions {
		if filter.Subject != "" && filter.Subject != "all" && q.Subject != filter.Subject {
			continue
		}
		if filter.Difficulty != "" && filter.Difficulty != "all" && q.Difficulty != filter.Difficulty {
			continue
		}
		if filter.Status != "" && filter.Status != "all" && q.Status != filter.Status {
			continue
		}
		if filter.KnowledgePoint != "" && q.KnowledgePoint != filter.KnowledgePoint {
			continue
		}
		result = append(result, q)
	}
	return result
}

// QuestionsByKnowledgePoint 返回某个知识点下的全部错题
func (s *ErrorLogService) QuestionsByKnowledgePoint(knowledgePoint string) []model.Question {
	return s.Filter(model.QuestionFilter{KnowledgePoint: knowledgePoint})
}

// UpdateStatus 手动改状态。这是刻意保留的旁路：老师/学生可以不经过
// 重做判定直接标记 mastered 或 reviewing。
func (s *ErrorLogService) UpdateStatus(questionID string, status model.QuestionStatus) (bool, error) {
	doc, ok := s.Get()
	if !ok {
		return false, nil
	}

	for i := range doc.Questions {
		if doc.Questions[i].ID != questionID {
			continue
		}
		doc.Questions[i].Status = status
		doc.Questions[i].LastReviewDate = s.Now().Format(time.RFC3339)

		doc.Statistics = RecalculateErrorStatistics(doc.Questions)
		if err := s.ErrorRepo.Save(doc); err != nil {
			return false, err
		}
		s.notify(doc)
		return true, nil
	}
	logger.Log.Debug("错题不存在，跳过状态更新", zap.String("questionId", questionID))
	return false, nil
}

// RetryResult 重做提交的结果
type RetryResult struct {
	Found     bool
	IsCorrect bool
}

// SubmitRetry 提交一次重做。判定是去掉首尾空白后的精确比较（区分大小写）。
// 历史累计答对 >= 2 次转为 mastered，否则 reviewing；答错不改状态。
func (s *ErrorLogService) SubmitRetry(questionID string, answer string) (RetryResult, error) {
	doc, ok := s.Get()
	if !ok {
		return RetryResult{}, nil
	}

	for i := range doc.Questions {
		q := &doc.Questions[i]
		if q.ID != questionID {
			continue
		}

		isCorrect := strings.TrimSpace(answer) == strings.TrimSpace(q.CorrectAnswer)
		now := s.Now().Format(time.RFC3339)

		q.RetryHistory = append(q.RetryHistory, model.RetryRecord{
			Date:      now,
			Answer:    answer,
			IsCorrect: isCorrect,
		})
		q.RetryCount = len(q.RetryHistory)
		q.LastReviewDate = now

		if isCorrect {
			correctCount := 0
			for _, r := range q.RetryHistory {
				if r.IsCorrect {
					correctCount++
				}
			}
			if correctCount >= 2 {
				q.Status = model.StatusMastered
			} else {
				q.Status = model.StatusReviewing
			}
		}

		doc.Statistics = RecalculateErrorStatistics(doc.Questions)
		if err := s.ErrorRepo.Save(doc); err != nil {
			return RetryResult{}, err
		}
		s.notify(doc)
		return RetryResult{Found: true, IsCorrect: isCorrect}, nil
	}
	return RetryResult{}, nil
}

// TogglePriority 切换重点标记，和复习状态互不影响
func (s *ErrorLogService) TogglePriority(questionID string) (bool, error) {
	doc, ok := s.Get()
	if !ok {
		return false, nil
	}

	for i := range doc.Questions {
		if doc.Questions[i].ID != questionID {
			continue
		}
		doc.Questions[i].IsPriority = !doc.Questions[i].IsPriority
		return true, s.ErrorRepo.Save(doc)
	}
	return false, nil
}

// RecalculateErrorStatistics 由题目列表全量重算统计，纯函数。
// 知识点正确率与掌握度跟随该知识点扫描到的最后一道题。
func RecalculateErrorStatistics(questions []model.Question) model.ErrorStatistics {
	stats := model.ErrorStatistics{
		TotalErrors:      len(questions),
		BySubject:        make(map[string]int),
		ByDifficulty:     make(map[string]int),
		ByKnowledgePoint: make(map[string]model.KnowledgePointStat),
	}

	for _, q := range questions {
		switch q.Status {
		case model.StatusMastered:
			stats.MasteredCount++
		case model.StatusReviewing:
			stats.ReviewingCount++
		default:
			stats.NotReviewedCount++
		}

		stats.BySubject[q.Subject]++
		stats.ByDifficulty[q.Difficulty]++

		kp := stats.ByKnowledgePoint[q.KnowledgePoint]
		kp.Count++

		if len(q.RetryHistory) > 0 {
			correct := 0
			for _, r := range q.RetryHistory {
				if r.IsCorrect {
					correct++
				}
			}
			kp.CorrectRate = int(float64(correct)/float64(len(q.RetryHistory))*100 + 0.5)
		}

		switch q.Status {
		case model.StatusMastered:
			kp.Mastery = 100
		case model.StatusReviewing:
			kp.Mastery = 50 + kp.CorrectRate/2
		default:
			kp.Mastery = 0
		}

		stats.ByKnowledgePoint[q.KnowledgePoint] = kp
	}

	return stats
}
