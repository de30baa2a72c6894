package model

// ModuleStatus 知识模块学习状态
type ModuleStatus string

const (
	ModuleLocked   ModuleStatus = "locked"
	ModuleLearning ModuleStatus = "learning"
	ModuleMastered ModuleStatus = "mastered"
)

// Priority 建议优先级
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// LearningReport 学习报告单文档，整体读写
type LearningReport struct {
	StudentInfo       StudentInfo       `json:"studentInfo"`
	Overview          Overview          `json:"overview"`
	AbilityRadar      AbilityRadar      `json:"abilityRadar"`
	KnowledgeMap      KnowledgeMap      `json:"knowledgeMap"`
	PerformanceTrends PerformanceTrends `json:"performanceTrends"`
	Recommendations   Recommendations   `json:"recommendations"`
	LastUpdated       string            `json:"lastUpdated,omitempty"`
}

type StudentInfo struct {
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	Grade        string `json:"grade"`
	Subject      string `json:"subject"`
	CurrentTopic string `json:"currentTopic"`
}

type Overview struct {
	OverallProgress  int               `json:"overallProgress"`
	TotalDays        int               `json:"totalDays"`
	StreakDays       int               `json:"streakDays"`
	WeeklyHighlights []WeeklyHighlight `json:"weeklyHighlights"`
	Achievements     []Achievement     `json:"achievements"`
	Ranking          Ranking           `json:"ranking"`
}

type WeeklyHighlight struct {
	ID          int    `json:"id"`
	Type        string `json:"type"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Improvement string `json:"improvement"`
}

type Achievement struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Unlocked bool   `json:"unlocked"`
	Date     string `json:"date,omitempty"`
	Progress int    `json:"progress,omitempty"`
}

type Ranking struct {
	Current    int `json:"current"`
	Total      int `json:"total"`
	Percentile int `json:"percentile"`
	Change     int `json:"change"`
}

type AbilityRadar struct {
	Current           []AbilityScore `json:"current"`
	LastWeek          []AbilityScore `json:"lastWeek"`
	Target            []AbilityScore `json:"target"`
	WeakestDimensions []string       `json:"weakestDimensions"`
}

type AbilityScore struct {
	Dimension string `json:"dimension"`
	Score     int    `json:"score"`
	FullMark  int    `json:"fullMark"`
}

type KnowledgeMap struct {
	Modules         []KnowledgeModule `json:"modules"`
	NextRecommended NextRecommended   `json:"nextRecommended"`
}

type KnowledgeModule struct {
	ID             int          `json:"id"`
	Name           string       `json:"name"`
	Status         ModuleStatus `json:"status"`
	Progress       int          `json:"progress"`
	TotalPoints    int          `json:"totalPoints"`
	MasteredPoints int          `json:"masteredPoints"`
	SubTopics      []SubTopic   `json:"subTopics"`
}

type SubTopic struct {
	Name    string `json:"name"`
	Mastery int    `json:"mastery"`
}

type NextRecommended struct {
	Module string `json:"module"`
	Topic  string `json:"topic"`
	Reason string `json:"reason"`
}

type PerformanceTrends struct {
	Daily            []DailyMetric    `json:"daily"`
	KeyMetrics       KeyMetrics       `json:"keyMetrics"`
	WeeklyComparison []WeeklySnapshot `json:"weeklyComparison"`
}

// DailyMetric 按日学习数据，Date 为 MM-DD
type DailyMetric struct {
	Date               string `json:"date"`
	Accuracy           int    `json:"accuracy"`
	TimeMinutes        int    `json:"timeMinutes"`
	QuestionsCompleted int    `json:"questionsCompleted"`
}

type KeyMetrics struct {
	AvgAccuracy    int    `json:"avgAccuracy"`
	AccuracyTrend  string `json:"accuracyTrend"`
	TotalTime      int    `json:"totalTime"`
	TimeTrend      string `json:"timeTrend"`
	TotalQuestions int    `json:"totalQuestions"`
	QuestionsTrend string `json:"questionsTrend"`
	BestStreak     int    `json:"bestStreak"`
	CurrentStreak  int    `json:"currentStreak"`
}

type WeeklySnapshot struct {
	Week      string `json:"week"`
	Score     int    `json:"score"`
	Questions int    `json:"questions"`
	Time      int    `json:"time"`
}

type Recommendations struct {
	TeacherComment TeacherComment `json:"teacherComment"`
	ActionItems    []ActionItem   `json:"actionItems"`
}

type TeacherComment struct {
	Avatar        string `json:"avatar"`
	Name          string `json:"name"`
	Message       string `json:"message"`
	Sentiment     string `json:"sentiment"`
	Encouragement string `json:"encouragement"`
}

type ActionItem struct {
	ID                  int      `json:"id"`
	Priority            Priority `json:"priority"`
	Type                string   `json:"type"`
	Icon                string   `json:"icon"`
	Title               string   `json:"title"`
	Description         string   `json:"description"`
	Actions             []string `json:"actions"`
	EstimatedTime       string   `json:"estimatedTime"`
	ExpectedImprovement string   `json:"expectedImprovement"`
	Completed           bool     `json:"completed"`
	CompletedDate       string   `json:"completedDate,omitempty"`
}
