package service

import (
	"teaching_platform_backend/internal/model"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

func (s *AgentService) AllComments() []model.Comment {
	return s.AgentRepo.Comments()
}

func (s *AgentService) CommentsByAgent(agentID string) []model.Comment {
	return lo.Filter(s.AgentRepo.Comments(), func(c model.Comment, _ int) bool {
		return c.AgentID == agentID
	})
}

// AddComment 新增留言，默认待审核，同时累加智能体的留言计数；
// 带评分的留言还会计入评分分布（直接累加，不走用户评分的替换逻辑）。
func (s *AgentService) AddComment(comment model.Comment) (model.Comment, error) {
	comment.ID = "comment-" + uuid.New().String()
	comment.CreatedAt = s.Now().UnixMilli()
	comment.Likes = 0
	comment.LikedBy = []string{}
	comment.Replies = []model.Reply{}
	if comment.AuditStatus == "" {
		comment.AuditStatus = model.AuditPending
	}

	comments := append(s.AgentRepo.Comments(), comment)
	if err := s.AgentRepo.SaveComments(comments); err != nil {
		return model.Comment{}, err
	}

	if err := s.initStatistics(comment.AgentID); err != nil {
		return model.Comment{}, err
	}
	stats := s.AgentRepo.Statistics()
	agentStats := stats[comment.AgentID]
	agentStats.TotalComments++

	if comment.Rating >= 1 && comment.Rating <= 5 {
		if agentStats.RatingDistribution == nil {
			agentStats.RatingDistribution = map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}
		}
		agentStats.RatingDistribution[comment.Rating]++
		agentStats.TotalRatings++
		agentStats.AverageRating = averageRating(agentStats.RatingDistribution)
	}

	stats[comment.AgentID] = agentStats
	if err := s.AgentRepo.SaveStatistics(stats); err != nil {
		return model.Comment{}, err
	}
	return comment, nil
}

// DeleteComment 删除留言并回减留言计数，计数不会减到负数
func (s *AgentService) DeleteComment(commentID string) (bool, error) {
	comments := s.AgentRepo.Comments()
	var deleted *model.Comment
	kept := make([]model.Comment, 0, len(comments))
	for i := range comments {
		if comments[i].ID == commentID {
			deleted = &comments[i]
			continue
		}
		kept = append(kept, comments[i])
	}
	if deleted == nil {
		return false, nil
	}
	if err := s.AgentRepo.SaveComments(kept); err != nil {
		return false, err
	}

	stats := s.AgentRepo.Statistics()
	if agentStats, ok := stats[deleted.AgentID]; ok {
		if agentStats.TotalComments > 0 {
			agentStats.TotalComments--
		}
		stats[deleted.AgentID] = agentStats
		if err := s.AgentRepo.SaveStatistics(stats); err != nil {
			return false, err
		}
	}
	return true, nil
}

// LikeComment 点赞。同一用户重复点赞是无操作，不翻转也不重复计数。
func (s *AgentService) LikeComment(commentID, userID string) (model.Comment, bool, error) {
	comments := s.AgentRepo.Comments()
	for i := range comments {
		c := &comments[i]
		if c.ID != commentID {
			continue
		}
		for _, id := range c.LikedBy {
			if id == userID {
				return *c, true, nil
			}
		}
		c.LikedBy = append(c.LikedBy, userID)
		c.Likes = len(c.LikedBy)
		if err := s.AgentRepo.SaveComments(comments); err != nil {
			return model.Comment{}, false, err
		}
		return *c, true, nil
	}
	return model.Comment{}, false, nil
}

// AddReply 追加回复，不排序不去重
func (s *AgentService) AddReply(commentID string, reply model.Reply) (model.Reply, bool, error) {
	comments := s.AgentRepo.Comments()
	for i := range comments {
		if comments[i].ID != commentID {
			continue
		}
		reply.ID = "reply-" + uuid.New().String()
		reply.CreatedAt = s.Now().UnixMilli()
		comments[i].Replies = append(comments[i].Replies, reply)
		if err := s.AgentRepo.SaveComments(comments); err != nil {
			return model.Reply{}, false, err
		}
		return reply, true, nil
	}
	return model.Reply{}, false, nil
}

// UpdateCommentContent 修改留言内容
func (s *AgentService) UpdateCommentContent(commentID, content string) (bool, error) {
	comments := s.AgentRepo.Comments()
	for i := range comments {
		if comments[i].ID != commentID {
			continue
		}
		comments[i].Content = content
		return true, s.AgentRepo.SaveComments(comments)
	}
	return false, nil
}

// UpdateCommentsAuditStatus 批量审核：同一状态和备注应用到所有 id，
// 找不到的 id 静默跳过，返回实际更新的留言。
func (s *AgentService) UpdateCommentsAuditStatus(
	commentIDs []string,
	status model.AuditStatus,
	remark string,
	auditor string,
) ([]model.Comment, error) {
	if status == "" || len(commentIDs) == 0 {
		return nil, nil
	}

	idSet := lo.SliceToMap(commentIDs, func(id string) (string, struct{}) {
		return id, struct{}{}
	})

	comments := s.AgentRepo.Comments()
	now := s.Now().UnixMilli()
	var updated []model.Comment
	for i := range comments {
		if _, ok := idSet[comments[i].ID]; !ok {
			continue
		}
		comments[i].AuditStatus = status
		if remark != "" {
			comments[i].AuditRemark = remark
		}
		comments[i].AuditedBy = auditor
		comments[i].AuditedAt = now
		updated = append(updated, comments[i])
	}
	if len(updated) == 0 {
		return nil, nil
	}
	if err := s.AgentRepo.SaveComments(comments); err != nil {
		return nil, err
	}
	return updated, nil
}
