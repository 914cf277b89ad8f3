package domain

type QuickInsights struct {
	HoursThisWeek          float64 `json:"hoursThisWeek"`
	GoalsCompletedThisWeek int     `json:"goalsCompletedThisWeek"`
	CurrentStreak          int     `json:"currentStreak"`
	TopSkill               string  `json:"topSkill,omitempty"`
	Message                string  `json:"message,omitempty"`
}

type OverviewReport struct {
	TotalCourses       int     `json:"totalCourses"`
	CompletedCourses   int     `json:"completedCourses"`
	TotalHours         float64 `json:"totalHours"`
	TotalGoals         int     `json:"totalGoals"`
	CompletedGoals     int     `json:"completedGoals"`
	GoalCompletionRate float64 `json:"goalCompletionRate"`
	AverageCourseScore float64 `json:"averageCourseScore"`
	TotalPoints        int     `json:"totalPoints"`
}

type SkillStat struct {
	Name        string  `json:"name"`
	Hours       float64 `json:"hours"`
	Courses     int     `json:"courses"`
	Proficiency float64 `json:"proficiency"`
}

type SkillsReport struct {
	Skills []SkillStat `json:"skills"`
}

type DailyHours struct {
	Date  string  `json:"date"`
	Hours float64 `json:"hours"`
}

type TimeManagementReport struct {
	DailyHours        []DailyHours `json:"dailyHours"`
	AverageDailyHours float64      `json:"averageDailyHours"`
	PlannedHours      float64      `json:"plannedHours"`
	ActualHours       float64      `json:"actualHours"`
}

type ConsistencyReport struct {
	CurrentStreak    int     `json:"currentStreak"`
	LongestStreak    int     `json:"longestStreak"`
	ActiveDaysLast30 int     `json:"activeDaysLast30"`
	ConsistencyScore float64 `json:"consistencyScore"`
}

type CompetitiveReport struct {
	Rank             int     `json:"rank"`
	TotalUsers       int     `json:"totalUsers"`
	Percentile       float64 `json:"percentile"`
	PointsToNextRank int     `json:"pointsToNextRank"`
}
