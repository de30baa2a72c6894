package model

// QuestionStatus 错题复习状态
type QuestionStatus string

const (
	StatusNotReviewed QuestionStatus = "not_reviewed"
	StatusReviewing   QuestionStatus = "reviewing"
	StatusMastered    QuestionStatus = "mastered"
)

// ErrorLog 错题本单文档
type ErrorLog struct {
	Statistics ErrorStatistics `json:"statistics"`
	Questions  []Question      `json:"questions"`
}

// ErrorStatistics 始终由 Questions 全量重算，不允许单独修改
type ErrorStatistics struct {
	TotalErrors      int                           `json:"totalErrors"`
	MasteredCount    int                           `json:"masteredCount"`
	ReviewingCount   int                           `json:"reviewingCount"`
	NotReviewedCount int                           `json:"notReviewedCount"`
	BySubject        map[string]int                `json:"bySubject"`
	ByDifficulty     map[string]int                `json:"byDifficulty"`
	ByKnowledgePoint map[string]KnowledgePointStat `json:"byKnowledgePoint"`
}

type KnowledgePointStat struct {
	Count       int `json:"count"`
	CorrectRate int `json:"correctRate"`
	Mastery     int `json:"mastery"`
}

type Question struct {
	ID             string         `json:"id"`
	Subject        string         `json:"subject"`
	KnowledgePoint string         `json:"knowledgePoint"`
	Date           string         `json:"date"`
	Title          string         `json:"title"`
	Content        string         `json:"content"`
	MyAnswer       string         `json:"myAnswer"`
	CorrectAnswer  string         `json:"correctAnswer"`
	Analysis       string         `json:"analysis"`
	Tags           []string       `json:"tags"`
	Difficulty     string         `json:"difficulty"`
	ErrorType      string         `json:"errorType"`
	Status         QuestionStatus `json:"status"`
	IsPriority     bool           `json:"isPriority"`
	RetryCount     int            `json:"retryCount"`
	RetryHistory   []RetryRecord  `json:"retryHistory"`
	LastReviewDate string         `json:"lastReviewDate,omitempty"`
	AddedDate      string         `json:"addedDate"`
}

// RetryRecord 重做记录，只追加不修改
type RetryRecord struct {
	Date      string `json:"date"`
	Answer    string `json:"answer"`
	IsCorrect bool   `json:"isCorrect"`
}

// QuestionFilter 错题筛选条件，空值或 "all" 表示不过滤
type QuestionFilter struct {
	Subject        string
	Difficulty     string
	Status         QuestionStatus
	KnowledgePoint string
}
