// Package fixture 内置初始数据。首次启动时按 key 补种，已存在的数据不覆盖。
package fixture

import "teaching_platform_backend/internal/model"

// DefaultLearningReport 默认学习报告文档
func DefaultLearningReport() model.LearningReport {
	return model.LearningReport{
		StudentInfo: model.StudentInfo{
			Name:         "李明同学",
			Avatar:       "👨‍🎓",
			Grade:        "高二",
			Subject:      "数学",
			CurrentTopic: "微积分基础",
		},
		Overview: model.Overview{
			OverallProgress: 68,
			TotalDays:       45,
			StreakDays:      12,
			WeeklyHighlights: []model.WeeklyHighlight{
				{ID: 1, Type: "breakthrough", Icon: "🎯", Title: "掌握了导数定义", Description: "从65%提升到92%", Improvement: "+27%"},
				{ID: 2, Type: "practice", Icon: "📝", Title: "完成30道习题", Description: "正确率达到88%", Improvement: "↑ 15%"},
				{ID: 3, Type: "time", Icon: "⏱️", Title: "学习时长新高", Description: "本周累计8.5小时", Improvement: "+2.3h"},
			},
			Achievements: []model.Achievement{
				{ID: 1, Name: "连续学习7天", Icon: "🔥", Unlocked: true, Date: "2025-11-20"},
				{ID: 2, Name: "完成100道题", Icon: "💯", Unlocked: true, Date: "2025-11-22"},
				{ID: 3, Name: "单次正确率90%", Icon: "⭐", Unlocked: true, Date: "2025-11-24"},
				{ID: 4, Name: "学霸段位", Icon: "👑", Unlocked: false, Progress: 75},
			},
			Ranking: model.Ranking{Current: 15, Total: 128, Percentile: 88, Change: 5},
		},
		AbilityRadar: model.AbilityRadar{
			Current: []model.AbilityScore{
				{Dimension: "概念理解", Score: 85, FullMark: 100},
				{Dimension: "公式运用", Score: 78, FullMark: 100},
				{Dimension: "逻辑推理", Score: 92, FullMark: 100},
				{Dimension: "计算准确", Score: 72, FullMark: 100},
				{Dimension: "解题速度", Score: 68, FullMark: 100},
				{Dimension: "创新思维", Score: 75, FullMark: 100},
			},
			LastWeek: []model.AbilityScore{
				{Dimension: "概念理解", Score: 80, FullMark: 100},
				{Dimension: "公式运用", Score: 72, FullMark: 100},
				{Dimension: "逻辑推理", Score: 88, FullMark: 100},
				{Dimension: "计算准确", Score: 70, FullMark: 100},
				{Dimension: "解题速度", Score: 65, FullMark: 100},
				{Dimension: "创新思维", Score: 73, FullMark: 100},
			},
			Target: []model.AbilityScore{
				{Dimension: "概念理解", Score: 95, FullMark: 100},
				{Dimension: "公式运用", Score: 90, FullMark: 100},
				{Dimension: "逻辑推理", Score: 95, FullMark: 100},
				{Dimension: "计算准确", Score: 88, FullMark: 100},
				{Dimension: "解题速度", Score: 85, FullMark: 100},
				{Dimension: "创新思维", Score: 90, FullMark: 100},
			},
			WeakestDimensions: []string{"计算准确", "解题速度"},
		},
		KnowledgeMap: model.KnowledgeMap{
			Modules: []model.KnowledgeModule{
				{
					ID: 1, Name: "极限与连续", Status: model.ModuleMastered, Progress: 95,
					TotalPoints: 8, MasteredPoints: 8,
					SubTopics: []model.SubTopic{
						{Name: "极限定义", Mastery: 98},
						{Name: "极限运算", Mastery: 95},
						{Name: "无穷小理论", Mastery: 92},
						{Name: "连续性", Mastery: 96},
					},
				},
				{
					ID: 2, Name: "导数与微分", Status: model.ModuleLearning, Progress: 68,
					TotalPoints: 12, MasteredPoints: 8,
					SubTopics: []model.SubTopic{
						{Name: "导数定义", Mastery: 92},
						{Name: "基本求导", Mastery: 85},
						{Name: "复合函数求导", Mastery: 72},
						{Name: "隐函数求导", Mastery: 45},
						{Name: "高阶导数", Mastery: 58},
					},
				},
				{
					ID: 3, Name: "导数应用", Status: model.ModuleLearning, Progress: 42,
					TotalPoints: 10, MasteredPoints: 4,
					SubTopics: []model.SubTopic{
						{Name: "单调性", Mastery: 78},
						{Name: "极值问题", Mastery: 62},
						{Name: "最值问题", Mastery: 35},
						{Name: "曲线凹凸性", Mastery: 28},
					},
				},
				{ID: 4, Name: "积分学", Status: model.ModuleLocked, Progress: 0, TotalPoints: 15},
				{ID: 5, Name: "微分方程", Status: model.ModuleLocked, Progress: 0, TotalPoints: 10},
			},
			NextRecommended: model.NextRecommended{
				Module: "导数应用",
				Topic:  "最值问题",
				Reason: "这是当前模块的薄弱点，掌握后可以显著提升整体进度",
			},
		},
		PerformanceTrends: model.PerformanceTrends{
			Daily: []model.DailyMetric{
				{Date: "11-15", Accuracy: 86, TimeMinutes: 60, QuestionsCompleted: 18},
				{Date: "11-16", Accuracy: 89, TimeMinutes: 72, QuestionsCompleted: 24},
				{Date: "11-17", Accuracy: 90, TimeMinutes: 68, QuestionsCompleted: 21},
				{Date: "11-19", Accuracy: 88, TimeMinutes: 75, QuestionsCompleted: 25},
				{Date: "11-20", Accuracy: 92, TimeMinutes: 80, QuestionsCompleted: 28},
				{Date: "11-22", Accuracy: 91, TimeMinutes: 78, QuestionsCompleted: 26},
				{Date: "11-23", Accuracy: 93, TimeMinutes: 85, QuestionsCompleted: 30},
				{Date: "11-24", Accuracy: 94, TimeMinutes: 82, QuestionsCompleted: 29},
				{Date: "11-25", Accuracy: 95, TimeMinutes: 90, QuestionsCompleted: 32},
			},
			KeyMetrics: model.KeyMetrics{
				AvgAccuracy:    88,
				AccuracyTrend:  "+12%",
				TotalTime:      1260,
				TimeTrend:      "+28%",
				TotalQuestions: 425,
				QuestionsTrend: "+35%",
				BestStreak:     12,
				CurrentStreak:  12,
			},
			WeeklyComparison: []model.WeeklySnapshot{
				{Week: "第1周", Score: 72, Questions: 45, Time: 180},
				{Week: "第2周", Score: 78, Questions: 68, Time: 240},
				{Week: "第3周", Score: 82, Questions: 92, Time: 310},
				{Week: "第4周", Score: 86, Questions: 115, Time: 380},
				{Week: "本周", Score: 92, Questions: 105, Time: 450},
			},
		},
		Recommendations: model.Recommendations{
			TeacherComment: model.TeacherComment{
				Avatar:        "🤖",
				Name:          "AI导师小智",
				Message:       "李明同学这周表现非常出色！你在导数定义这个核心知识点上取得了重大突破，建议继续保持这个节奏，接下来重点攻克\"最值问题\"和\"计算准确性\"。加油！",
				Sentiment:     "positive",
				Encouragement: "你已经超越了88%的同学，继续保持！",
			},
			ActionItems: []model.ActionItem{
				{
					ID: 1, Priority: model.PriorityHigh, Type: "practice", Icon: "🎯",
					Title:       "重点突破：最值问题",
					Description: "当前掌握度仅35%，是导数应用模块的关键知识点",
					Actions: []string{
						"观看视频教程《最值问题解题方法》（15分钟）",
						"完成基础练习10题",
						"尝试中等难度题目5题",
					},
					EstimatedTime: "45分钟", ExpectedImprovement: "+20%",
				},
				{
					ID: 2, Priority: model.PriorityHigh, Type: "skill", Icon: "🧮",
					Title:       "提升计算准确性",
					Description: "计算准确性72分，低于其他维度，影响做题速度",
					Actions: []string{
						"每天进行10分钟计算专项训练",
						"整理易错计算类型",
						"养成验算习惯",
					},
					EstimatedTime: "每日10分钟", ExpectedImprovement: "+15%",
				},
				{
					ID: 3, Priority: model.PriorityMedium, Type: "consolidate", Icon: "📚",
					Title:       "巩固隐函数求导",
					Description: "掌握度45%，需要加强理解",
					Actions: []string{
						"复习隐函数求导的基本原理",
						"练习典型题目15题",
						"总结常见题型",
					},
					EstimatedTime: "60分钟", ExpectedImprovement: "+25%",
				},
				{
					ID: 4, Priority: model.PriorityLow, Type: "mindset", Icon: "💪",
					Title:       "保持学习节奏",
					Description: "你已经连续学习12天，状态很好",
					Actions: []string{
						"继续保持每日学习习惯",
						"适当休息，避免疲劳",
						"定期回顾已掌握的知识点",
					},
					EstimatedTime: "持续进行", ExpectedImprovement: "维持高效状态",
				},
			},
		},
	}
}

// DefaultErrorLog 默认错题本文档
func DefaultErrorLog() model.ErrorLog {
	return model.ErrorLog{
		Statistics: model.ErrorStatistics{
			TotalErrors:      4,
			NotReviewedCount: 4,
			BySubject:        map[string]int{"数学": 2, "英语": 1, "物理": 1},
			ByDifficulty:     map[string]int{"简单": 2, "中等": 1, "困难": 1},
			ByKnowledgePoint: map[string]model.KnowledgePointStat{
				"二次函数": {Count: 1},
				"语法":   {Count: 1},
				"自由落体": {Count: 1},
				"不等式":  {Count: 1},
			},
		},
		Questions: []model.Question{
			{
				ID: "q1", Subject: "数学", KnowledgePoint: "二次函数", Date: "2023-10-26",
				Title:         "已知函数 f(x) = ax² + bx + c...",
				Content:       "已知函数 f(x) = ax² + bx + c (a≠0) 在区间 [0, 1] 上单调递增，求 a 的取值范围。",
				MyAnswer:      "a > 0",
				CorrectAnswer: "a > 0 且 -b/2a ≤ 0 或 a < 0 且 -b/2a ≥ 1",
				Analysis:      "本题考查二次函数的单调性。需要结合对称轴的位置进行分类讨论。你忽略了对称轴在区间左侧或右侧的情况。",
				Tags:          []string{"二次函数", "单调性", "分类讨论"},
				Difficulty:    "困难", ErrorType: "逻辑漏洞",
				Status: model.StatusNotReviewed, RetryHistory: []model.RetryRecord{},
				AddedDate: "2023-10-26",
			},
			{
				ID: "q2", Subject: "英语", KnowledgePoint: "语法", Date: "2023-10-25",
				Title:         "\"Photosynthesis is the process...\" 的主语是？",
				Content:       "Identify the subject in the sentence: \"Photosynthesis is the process by which green plants use sunlight to synthesize foods.\"",
				MyAnswer:      "process",
				CorrectAnswer: "Photosynthesis",
				Analysis:      "句子结构分析错误。Is 是系动词，前面的是主语，后面的是表语。",
				Tags:          []string{"语法", "句子成分"},
				Difficulty:    "简单", ErrorType: "概念不清",
				Status: model.StatusNotReviewed, RetryHistory: []model.RetryRecord{},
				AddedDate: "2023-10-25",
			},
			{
				ID: "q3", Subject: "物理", KnowledgePoint: "自由落体", Date: "2023-10-22",
				Title:         "计算小球从 10 米高处自由落体的速度...",
				Content:       "一个小球从 10 米高处自由落下，忽略空气阻力，g 取 10m/s²。求落地时的速度。",
				MyAnswer:      "10 m/s",
				CorrectAnswer: "14.14 m/s",
				Analysis:      "公式使用错误或计算错误。根据 v² = 2gh，v = √(2*10*10) = √200 ≈ 14.14 m/s。",
				Tags:          []string{"自由落体", "运动学公式"},
				Difficulty:    "中等", ErrorType: "计算错误",
				Status: model.StatusNotReviewed, RetryHistory: []model.RetryRecord{},
				AddedDate: "2023-10-22",
			},
			{
				ID: "q4", Subject: "数学", KnowledgePoint: "不等式", Date: "2023-10-20",
				Title:         "解不等式 |x-2| < 3",
				Content:       "求不等式 |x-2| < 3 的解集。",
				MyAnswer:      "x < 5",
				CorrectAnswer: "-1 < x < 5",
				Analysis:      "绝对值不等式去绝对值时需要同时考虑大于负值和小于正值。|x-2| < 3 等价于 -3 < x-2 < 3。",
				Tags:          []string{"不等式", "绝对值"},
				Difficulty:    "简单", ErrorType: "概念不清",
				Status: model.StatusNotReviewed, RetryHistory: []model.RetryRecord{},
				AddedDate: "2023-10-20",
			},
		},
	}
}

// SeedAgents 默认智能体列表
func SeedAgents() []model.Agent {
	return []model.Agent{
		{
			ID: "agent-001", Name: "数学小助手",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=math",
			Description: "专注于数学问题解答和知识点讲解，擅长用通俗易懂的方式讲解复杂的数学概念。",
			Specialty:   []string{"数学", "代数", "几何", "微积分"},
			Capabilities: []string{
				"习题讲解", "知识点梳理", "解题思路引导", "错题分析", "考试技巧指导",
			},
			Greeting:    "你好！我是数学小助手，有什么数学问题可以问我哦~",
			Personality: "耐心、细致、善于引导",
			Color:       "blue", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1730419200000,
		},
		{
			ID: "agent-002", Name: "语文导师",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=chinese",
			Description: "精通语文阅读理解、写作技巧和古诗词鉴赏，帮助学生提升语文素养。",
			Specialty:   []string{"语文", "阅读理解", "写作", "古诗词"},
			Capabilities: []string{
				"作文批改", "阅读理解指导", "古诗词赏析", "文言文翻译", "写作技巧培养",
			},
			Greeting:    "你好！我是语文导师，让我们一起探索语言文字的魅力吧！",
			Personality: "博学、文雅、富有诗意",
			Color:       "purple", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1730764800000,
		},
		{
			ID: "agent-003", Name: "英语伙伴",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=english",
			Description: "英语听说读写全能辅导，让学习英语变得轻松有趣。",
			Specialty:   []string{"英语", "口语", "语法", "词汇"},
			Capabilities: []string{
				"语法讲解", "词汇记忆", "口语对话练习", "阅读理解", "写作指导",
			},
			Greeting:    "Hello! I'm your English partner. Let's learn English together!",
			Personality: "活泼、热情、鼓励式",
			Color:       "green", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1731196800000,
		},
		{
			ID: "agent-004", Name: "物理专家",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=physics",
			Description: "物理知识和实验专家，擅长用生活实例解释物理现象。",
			Specialty:   []string{"物理", "力学", "电学", "光学"},
			Capabilities: []string{
				"物理概念讲解", "实验分析", "公式推导", "应用题解答", "物理思维培养",
			},
			Greeting:    "你好！我是物理专家，让我们一起探索物理世界的奥秘！",
			Personality: "严谨、逻辑性强、善于举例",
			Color:       "orange", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1731628800000,
		},
		{
			ID: "agent-005", Name: "化学达人",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=chemistry",
			Description: "化学反应和实验的行家，帮助学生理解化学原理和实验技巧。",
			Specialty:   []string{"化学", "有机化学", "无机化学", "化学实验"},
			Capabilities: []string{
				"化学方程式讲解", "实验操作指导", "元素周期表学习", "化学计算", "实验安全指导",
			},
			Greeting:    "嗨！我是化学达人，化学世界充满奇妙，让我们一起探索吧！",
			Personality: "活泼、实验精神、注重安全",
			Color:       "cyan", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1732060800000,
		},
		{
			ID: "agent-006", Name: "历史学者",
			Avatar:      "https://api.dicebear.com/7.x/bottts/svg?seed=history",
			Description: "历史知识丰富，善于讲述历史故事和分析历史事件。",
			Specialty:   []string{"历史", "中国历史", "世界历史", "历史文化"},
			Capabilities: []string{
				"历史事件分析", "历史人物介绍", "历史时间轴梳理", "历史文化讲解", "考点归纳",
			},
			Greeting:    "你好！我是历史学者，让我们穿越时空，了解历史的精彩！",
			Personality: "博学、善于叙事、富有历史感",
			Color:       "amber", IsActive: true,
			CreatedBy: "teacher-001", CreatedAt: 1732492800000,
		},
	}
}

// SeedStatistics 默认智能体统计
func SeedStatistics() map[string]model.AgentStatistics {
	return map[string]model.AgentStatistics{
		"agent-001": {
			AgentID: "agent-001", TotalUsage: 1243, AverageRating: 4.7,
			TotalRatings: 156, TotalComments: 89,
			UsageByDate: []model.DailyUsage{
				{Date: "2024-12-03", Count: 67},
				{Date: "2024-12-04", Count: 72},
				{Date: "2024-12-05", Count: 68},
				{Date: "2024-12-06", Count: 75},
				{Date: "2024-12-07", Count: 82},
			},
			RatingDistribution: map[int]int{1: 2, 2: 5, 3: 18, 4: 45, 5: 86},
			PopularTimes: []model.HourlyUsage{
				{Hour: 9, Count: 67}, {Hour: 15, Count: 92},
				{Hour: 19, Count: 103}, {Hour: 20, Count: 118},
			},
		},
		"agent-002": {
			AgentID: "agent-002", TotalUsage: 987, AverageRating: 4.5,
			TotalRatings: 112, TotalComments: 64,
			UsageByDate: []model.DailyUsage{
				{Date: "2024-12-05", Count: 44},
				{Date: "2024-12-06", Count: 51},
				{Date: "2024-12-07", Count: 48},
			},
			RatingDistribution: map[int]int{1: 3, 2: 6, 3: 16, 4: 38, 5: 49},
			PopularTimes: []model.HourlyUsage{
				{Hour: 10, Count: 52}, {Hour: 16, Count: 61}, {Hour: 20, Count: 74},
			},
		},
		"agent-003": {
			AgentID: "agent-003", TotalUsage: 1456, AverageRating: 4.8,
			TotalRatings: 178, TotalComments: 96,
			UsageByDate: []model.DailyUsage{
				{Date: "2024-12-05", Count: 78},
				{Date: "2024-12-06", Count: 85},
				{Date: "2024-12-07", Count: 91},
			},
			RatingDistribution: map[int]int{1: 1, 2: 3, 3: 12, 4: 52, 5: 110},
			PopularTimes: []model.HourlyUsage{
				{Hour: 8, Count: 58}, {Hour: 19, Count: 96}, {Hour: 21, Count: 88},
			},
		},
		"agent-004": {
			AgentID: "agent-004", TotalUsage: 876, AverageRating: 4.6,
			TotalRatings: 98, TotalComments: 52,
			UsageByDate: []model.DailyUsage{
				{Date: "2024-12-06", Count: 39},
				{Date: "2024-12-07", Count: 43},
			},
			RatingDistribution: map[int]int{1: 2, 2: 4, 3: 11, 4: 33, 5: 48},
			PopularTimes: []model.HourlyUsage{
				{Hour: 14, Count: 41}, {Hour: 20, Count: 57},
			},
		},
		"agent-005": {AgentID: "agent-005", RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}},
		"agent-006": {AgentID: "agent-006", RatingDistribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0}},
	}
}

// SeedComments 默认留言
func SeedComments() []model.Comment {
	return []model.Comment{
		{
			ID: "comment-001", AgentID: "agent-001", StudentID: "student-001",
			StudentName:   "张小明",
			StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=student1",
			Content:       "数学小助手真的超级棒！解题思路特别清晰，每次遇到难题问它都能得到满意的解答。",
			Rating:        5, CreatedAt: 1733380200000,
			Likes: 1, LikedBy: []string{"student-002"},
			Replies: []model.Reply{
				{
					ID: "reply-001", TeacherID: "teacher-001", TeacherName: "高田由",
					Content: "谢谢你的认可！很高兴能帮助到你的学习。", CreatedAt: 1733386800000,
				},
			},
			AuditStatus: model.AuditApproved, AuditedBy: "teacher-001", AuditedAt: 1733390000000,
		},
		{
			ID: "comment-002", AgentID: "agent-001", StudentID: "student-002",
			StudentName:   "李华",
			StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=student2",
			Content:       "讲解得很详细，还会引导我自己思考，对培养数学思维很有帮助！",
			Rating:        5, CreatedAt: 1733451300000,
			LikedBy: []string{}, Replies: []model.Reply{},
			AuditStatus: model.AuditApproved, AuditedBy: "teacher-001", AuditedAt: 1733460000000,
		},
		{
			ID: "comment-003", AgentID: "agent-001", StudentID: "student-003",
			StudentName:   "王小红",
			StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=student3",
			Content:       "有时候解答得太快了，希望能更详细一些。但总体来说非常不错！",
			Rating:        4, CreatedAt: 1733535000000,
			LikedBy: []string{}, Replies: []model.Reply{},
			AuditStatus: model.AuditPending,
		},
		{
			ID: "comment-004", AgentID: "agent-002", StudentID: "student-004",
			StudentName:   "刘芳",
			StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=student4",
			Content:       "语文导师对古诗词的赏析真是太棒了，让我对古诗词有了新的理解！",
			Rating:        5, CreatedAt: 1733298300000,
			LikedBy: []string{}, Replies: []model.Reply{
				{
					ID: "reply-002", TeacherID: "teacher-001", TeacherName: "高田由",
					Content: "古诗词是中华文化的瑰宝，很高兴你能喜欢！", CreatedAt: 1733308200000,
				},
			},
			AuditStatus: model.AuditApproved, AuditedBy: "teacher-001", AuditedAt: 1733310000000,
		},
		{
			ID: "comment-005", AgentID: "agent-003", StudentID: "student-006",
			StudentName:   "赵磊",
			StudentAvatar: "https://api.dicebear.com/7.x/avataaars/svg?seed=student6",
			Content:       "English partner is awesome! The conversation practice really helps improve my speaking skills.",
			Rating:        5, CreatedAt: 1733212800000,
			LikedBy: []string{}, Replies: []model.Reply{},
			AuditStatus: model.AuditPending,
		},
	}
}

// SeedUsageRecords 默认学生使用记录
func SeedUsageRecords() map[string][]model.UsageRecord {
	return map[string][]model.UsageRecord{
		"agent-001": {
			{StudentID: "student-001", StudentName: "张小明", UsageCount: 45, CompletionRate: 92, Tags: []string{"积极", "基础扎实"}},
			{StudentID: "student-002", StudentName: "李华", UsageCount: 38, CompletionRate: 85, Tags: []string{"进步明显"}},
			{StudentID: "student-003", StudentName: "王小红", UsageCount: 12, CompletionRate: 46, Tags: []string{"需要关注"}, IsRisk: true},
		},
		"agent-003": {
			{StudentID: "student-006", StudentName: "赵磊", UsageCount: 52, CompletionRate: 95, Tags: []string{"口语突出"}},
		},
	}
}
