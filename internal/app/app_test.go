package app

import (
	"path/filepath"
	"testing"

	"teaching_platform_backend/internal/config"
	"teaching_platform_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestApp(t *testing.T, seedOnStart bool) *App {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.Backend = "memory"
	cfg.Seed.OnStart = seedOnStart
	cfg.Export.Dir = t.TempDir()

	a, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { a.Close() })
	return a
}

func TestSeedOnStart(t *testing.T) {
	a := newTestApp(t, true)

	assert.True(t, a.ReportRepo.Exists())
	assert.True(t, a.ErrorRepo.Exists())
	assert.Len(t, a.AgentService.Agents(), 6)
	assert.NotEmpty(t, a.AgentService.AllComments())
}

func TestSeedDoesNotOverwriteExisting(t *testing.T) {
	a := newTestApp(t, true)

	_, err := a.ReportService.UpdateAbilityScore("概念理解", 11)
	require.NoError(t, err)

	require.NoError(t, a.Seed())
	for _, ab := range a.ReportService.Get().AbilityRadar.Current {
		if ab.Dimension == "概念理解" {
			assert.Equal(t, 11, ab.Score)
		}
	}
}

func TestSeedDisabled(t *testing.T) {
	a := newTestApp(t, false)

	assert.False(t, a.ReportRepo.Exists())
	_, ok := a.ErrorService.Get()
	assert.False(t, ok)
}

func TestErrorLogChangesSyncIntoReport(t *testing.T) {
	a := newTestApp(t, true)

	// 让 q1（数学/二次函数）进入复习中，触发同步
	result, err := a.ErrorService.SubmitRetry("q1", "答错")
	require.NoError(t, err)
	require.True(t, result.Found)

	report := a.ReportService.Get()
	assert.Contains(t, report.AbilityRadar.WeakestDimensions, "二次函数")

	// 2 道未掌握数学错题压低能力分
	for _, ab := range report.AbilityRadar.Current {
		if ab.Dimension == "概念理解" {
			assert.Equal(t, 85, ab.Score)
		}
		if ab.Dimension == "计算准确" {
			assert.Equal(t, 82, ab.Score)
		}
	}
}

func TestOpenStoreBolt(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = "bolt"
	cfg.Storage.BoltPath = filepath.Join(t.TempDir(), "app.db")
	cfg.Seed.OnStart = true

	a, err := New(cfg)
	require.NoError(t, err)
	defer a.Close()

	assert.True(t, a.ReportRepo.Exists())
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	cfg := &config.Config{}
	cfg.Storage.Backend = "cassandra"

	_, err := New(cfg)
	assert.Error(t, err)
}

func TestEndToEndAgentScenario(t *testing.T) {
	a := newTestApp(t, true)

	agent, err := a.AgentService.CreateAgent(model.Agent{
		Name: "生物讲解员", Specialty: []string{"生物"}, CreatedBy: "teacher-002",
	})
	require.NoError(t, err)

	require.NoError(t, a.AgentService.RecordUsage(agent.ID))
	require.NoError(t, a.AgentService.RateAgent("student-001", agent.ID, 4))

	comment, err := a.AgentService.AddComment(model.Comment{
		AgentID: agent.ID, StudentID: "student-001", Content: "讲细胞分裂特别清楚",
	})
	require.NoError(t, err)

	_, err = a.AgentService.UpdateCommentsAuditStatus(
		[]string{comment.ID}, model.AuditApproved, "", "teacher-002")
	require.NoError(t, err)

	stats, ok := a.AgentService.Statistics(agent.ID)
	require.True(t, ok)
	assert.Equal(t, 1, stats.TotalUsage)
	assert.Equal(t, 1, stats.TotalRatings)
	assert.Equal(t, 4.0, stats.AverageRating)
	assert.Equal(t, 1, stats.TotalComments)

	comments := a.AgentService.CommentsByAgent(agent.ID)
	require.Len(t, comments, 1)
	assert.Equal(t, model.AuditApproved, comments[0].AuditStatus)
}
