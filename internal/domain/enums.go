package domain

type ResourceType string

const (
	ResourceDocumentation ResourceType = "DOCUMENTATION"
	ResourceCourse        ResourceType = "COURSE"
	ResourceVideo         ResourceType = "VIDEO"
	ResourceArticle       ResourceType = "ARTICLE"
	ResourceOther         ResourceType = "OTHER"
)

// ValidResourceTypes is the canonical set of accepted goal resource types.
var ValidResourceTypes = map[ResourceType]bool{
	ResourceDocumentation: true,
	ResourceCourse:        true,
	ResourceVideo:         true,
	ResourceArticle:       true,
	ResourceOther:         true,
}

type CourseStatus string

const (
	CourseNotStarted CourseStatus = "NOT_STARTED"
	CourseInProgress CourseStatus = "IN_PROGRESS"
	CourseCompleted  CourseStatus = "COMPLETED"
	CoursePaused     CourseStatus = "PAUSED"
	CourseDropped    CourseStatus = "DROPPED"
)

type BadgeLevel string

const (
	LevelNovice     BadgeLevel = "NOVICE"
	LevelApprentice BadgeLevel = "APPRENTICE"
	LevelSkilled    BadgeLevel = "SKILLED"
	LevelAdvanced   BadgeLevel = "ADVANCED"
	LevelExpert     BadgeLevel = "EXPERT"
	LevelMaster     BadgeLevel = "MASTER"
)

type LeaderboardPeriod string

const (
	PeriodWeekly  LeaderboardPeriod = "WEEKLY"
	PeriodMonthly LeaderboardPeriod = "MONTHLY"
	PeriodAllTime LeaderboardPeriod = "ALL_TIME"
)

// ValidLeaderboardPeriods is the canonical set of accepted leaderboard periods.
var ValidLeaderboardPeriods = map[string]bool{
	"WEEKLY": true, "MONTHLY": true, "ALL_TIME": true,
}

// Event types the backend emits for calendar entries. The field is free-form;
// these are the values the client styles specially.
const (
	EventCourseStart = "COURSE_START"
	EventDeadline    = "DEADLINE"
	EventGoal        = "GOAL"
	EventCompleted   = "COMPLETED"
)
