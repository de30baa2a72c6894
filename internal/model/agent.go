package model

// AuditStatus 留言审核状态
type AuditStatus string

const (
	AuditPending  AuditStatus = "pending"
	AuditApproved AuditStatus = "approved"
	AuditRejected AuditStatus = "rejected"
)

// Agent 教学智能体档案
type Agent struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Avatar       string   `json:"avatar"`
	Description  string   `json:"description"`
	Specialty    []string `json:"specialty"`
	Capabilities []string `json:"capabilities"`
	Greeting     string   `json:"greeting,omitempty"`
	Personality  string   `json:"personality,omitempty"`
	Color        string   `json:"color"`
	IsActive     bool     `json:"isActive"`
	CreatedBy    string   `json:"createdBy"`
	CreatedAt    int64    `json:"createdAt"`
}

// AgentStatistics 按 agentId 维护的聚合统计
type AgentStatistics struct {
	AgentID            string        `json:"agentId"`
	TotalUsage         int           `json:"totalUsage"`
	AverageRating      float64       `json:"averageRating"`
	TotalRatings       int           `json:"totalRatings"`
	TotalComments      int           `json:"totalComments"`
	UsageByDate        []DailyUsage  `json:"usageByDate"`
	RatingDistribution map[int]int   `json:"ratingDistribution"`
	PopularTimes       []HourlyUsage `json:"popularTimes"`
}

type DailyUsage struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type HourlyUsage struct {
	Hour  int `json:"hour"`
	Count int `json:"count"`
}

// Comment 学生留言。Likes 恒等于 len(LikedBy)。
type Comment struct {
	ID            string      `json:"id"`
	AgentID       string      `json:"agentId"`
	StudentID     string      `json:"studentId"`
	StudentName   string      `json:"studentName,omitempty"`
	StudentAvatar string      `json:"studentAvatar,omitempty"`
	Content       string      `json:"content"`
	Rating        int         `json:"rating,omitempty"`
	CreatedAt     int64       `json:"createdAt"`
	Likes         int         `json:"likes"`
	LikedBy       []string    `json:"likedBy"`
	Replies       []Reply     `json:"replies"`
	AuditStatus   AuditStatus `json:"auditStatus"`
	AuditRemark   string      `json:"auditRemark,omitempty"`
	AuditedBy     string      `json:"auditedBy,omitempty"`
	AuditedAt     int64       `json:"auditedAt,omitempty"`
}

type Reply struct {
	ID          string `json:"id"`
	TeacherID   string `json:"teacherId,omitempty"`
	TeacherName string `json:"teacherName,omitempty"`
	Content     string `json:"content"`
	CreatedAt   int64  `json:"createdAt"`
}

// UsageRecord 单个学生在某个智能体下的使用行，按 studentId 合并导入
type UsageRecord struct {
	StudentID      string   `json:"studentId"`
	StudentName    string   `json:"studentName,omitempty"`
	UsageCount     int      `json:"usageCount"`
	CompletionRate float64  `json:"completionRate"`
	Tags           []string `json:"tags,omitempty"`
	IsRisk         bool     `json:"isRisk"`
}
