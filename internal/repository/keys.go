package repository

// 持久化命名空间，一份文档一个 key
const (
	KeyLearningReport = "learning_report_data"
	KeyErrorQuestions = "error_questions_data"
	KeyAgents         = "teaching_platform_agents"
	KeyStatistics     = "teaching_platform_agent_statistics"
	KeyComments       = "teaching_platform_agent_comments"
	KeyUserRatings    = "teaching_platform_user_ratings"
	KeyUsageRecords   = "teaching_platform_usage_records"
)
