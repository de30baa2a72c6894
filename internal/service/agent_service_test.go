package service

import (
	"testing"
	"time"

	"teaching_platform_backend/internal/fixture"
	"teaching_platform_backend/internal/model"
	"teaching_platform_backend/internal/repository"
	"teaching_platform_backend/internal/util"
	"teaching_platform_backend/pkg/kvstore"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAgentService(t *testing.T) *AgentService {
	t.Helper()
	repo := repository.NewAgentRepository(kvstore.NewMemoryStore())
	require.NoError(t, repo.SaveAgents(fixture.SeedAgents()))
	require.NoError(t, repo.SaveStatistics(fixture.SeedStatistics()))
	require.NoError(t, repo.SaveComments(fixture.SeedComments()))
	require.NoError(t, repo.SaveUsageRecords(fixture.SeedUsageRecords()))

	svc := NewAgentService(repo)
	svc.Now = func() time.Time { return testNow }
	return svc
}

func TestAgentByID(t *testing.T) {
	svc := newAgentService(t)

	agent, err := svc.AgentByID("agent-001")
	require.NoError(t, err)
	assert.Equal(t, "数学小助手", agent.Name)

	_, err = svc.AgentByID("agent-404")
	assert.ErrorIs(t, err, util.ErrAgentNotFound)
}

func TestCreateAgent(t *testing.T) {
	svc := newAgentService(t)
	before := len(svc.Agents())

	agent, err := svc.CreateAgent(model.Agent{
		Name:      "化学实验员",
		Specialty: []string{"化学"},
		Color:     "green",
		CreatedBy: "teacher-001",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, agent.ID)
	assert.True(t, agent.IsActive)
	assert.Equal(t, testNow.UnixMilli(), agent.CreatedAt)
	assert.Contains(t, agent.Avatar, "dicebear.com")
	assert.Len(t, svc.Agents(), before+1)

	// 创建即有空统计
	stats, ok := svc.Statistics(agent.ID)
	require.True(t, ok)
	assert.Equal(t, 0, stats.TotalUsage)
	assert.Equal(t, map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}, stats.RatingDistribution)
}

func TestUpdateAgentPartial(t *testing.T) {
	svc := newAgentService(t)

	name := "新名字"
	inactive := false
	updated, found, err := svc.UpdateAgent("agent-001", AgentUpdate{
		Name:     &name,
		IsActive: &inactive,
	})
	require.NoError(t, err)
	require.True(t, found)

	assert.Equal(t, "新名字", updated.Name)
	assert.False(t, updated.IsActive)
	// 没给的字段保持原样
	assert.NotEmpty(t, updated.Description)

	_, found, err = svc.UpdateAgent("agent-404", AgentUpdate{Name: &name})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeleteAgentLeavesRelatedData(t *testing.T) {
	svc := newAgentService(t)

	found, err := svc.DeleteAgent("agent-001")
	require.NoError(t, err)
	require.True(t, found)

	_, err = svc.AgentByID("agent-001")
	assert.ErrorIs(t, err, util.ErrAgentNotFound)

	// 统计、留言、使用记录都保留
	_, ok := svc.Statistics("agent-001")
	assert.True(t, ok)
	assert.NotEmpty(t, svc.CommentsByAgent("agent-001"))
	assert.NotEmpty(t, svc.UsageRecords("agent-001"))
}

func TestRecordUsage(t *testing.T) {
	svc := newAgentService(t)
	before, _ := svc.Statistics("agent-001")

	require.NoError(t, svc.RecordUsage("agent-001"))
	require.NoError(t, svc.RecordUsage("agent-001"))

	stats, _ := svc.Statistics("agent-001")
	assert.Equal(t, before.TotalUsage+2, stats.TotalUsage)

	today := testNow.Format("2006-01-02")
	var todayCount int
	for _, d := range stats.UsageByDate {
		if d.Date == today {
			todayCount = d.Count
		}
	}
	assert.Equal(t, 2, todayCount)

	var hourCount int
	for _, h := range stats.PopularTimes {
		if h.Hour == testNow.Hour() {
			hourCount = h.Count
		}
	}
	assert.Equal(t, 2, hourCount)
}

func TestRecordUsageUnknownAgentInitializes(t *testing.T) {
	svc := newAgentService(t)

	require.NoError(t, svc.RecordUsage("agent-999"))
	stats, ok := svc.Statistics("agent-999")
	require.True(t, ok)
	assert.Equal(t, 1, stats.TotalUsage)
}

func TestRateAgentUpsert(t *testing.T) {
	svc := newAgentService(t)
	before, _ := svc.Statistics("agent-002")

	require.NoError(t, svc.RateAgent("stu-001", "agent-002", 3))
	stats, _ := svc.Statistics("agent-002")
	assert.Equal(t, before.TotalRatings+1, stats.TotalRatings)
	assert.Equal(t, before.RatingDistribution[3]+1, stats.RatingDistribution[3])
	assert.Equal(t, 3, svc.UserRating("stu-001", "agent-002"))

	// 同一用户改评分：替换而不是累加
	require.NoError(t, svc.RateAgent("stu-001", "agent-002", 5))
	stats, _ = svc.Statistics("agent-002")
	assert.Equal(t, before.TotalRatings+1, stats.TotalRatings)
	assert.Equal(t, before.RatingDistribution[3], stats.RatingDistribution[3])
	assert.Equal(t, before.RatingDistribution[5]+1, stats.RatingDistribution[5])
	assert.Equal(t, 5, svc.UserRating("stu-001", "agent-002"))
}

func TestRateAgentSameRatingIsNoop(t *testing.T) {
	svc := newAgentService(t)

	require.NoError(t, svc.RateAgent("stu-001", "agent-002", 4))
	stats1, _ := svc.Statistics("agent-002")

	require.NoError(t, svc.RateAgent("stu-001", "agent-002", 4))
	stats2, _ := svc.Statistics("agent-002")
	assert.Equal(t, stats1, stats2)
}

func TestRateAgentRejectsOutOfRange(t *testing.T) {
	svc := newAgentService(t)
	assert.ErrorIs(t, svc.RateAgent("stu-001", "agent-001", 0), util.ErrInvalidRating)
	assert.ErrorIs(t, svc.RateAgent("stu-001", "agent-001", 6), util.ErrInvalidRating)
}

func TestAverageRating(t *testing.T) {
	assert.Equal(t, 0.0, averageRating(map[int]int{}))
	assert.Equal(t, 5.0, averageRating(map[int]int{5: 3}))
	// (1*1 + 5*1) / 2 = 3.0
	assert.Equal(t, 3.0, averageRating(map[int]int{1: 1, 5: 1}))
	// (4*2 + 5*1) / 3 = 4.333... -> 4.3
	assert.Equal(t, 4.3, averageRating(map[int]int{4: 2, 5: 1}))
}
