package domain

import "math"

// Completion is a profile or company completeness report.
type Completion struct {
	Percentage int      `json:"percentage"`
	Missing    []string `json:"missing,omitempty"`
}

func completionOf(fields []bool, names []string) Completion {
	filled := 0
	missing := []string{}
	for i, ok := range fields {
		if ok {
			filled++
		} else {
			missing = append(missing, names[i])
		}
	}
	return Completion{
		Percentage: int(math.Round(float64(filled) / float64(len(fields)) * 100)),
		Missing:    missing,
	}
}

var profileFieldNames = []string{
	"name", "email", "phone", "location", "specialization",
	"university", "profile_summary", "avatar", "cv",
}

var companyFieldNames = []string{
	"company_name", "description", "industry", "website",
	"location", "phone", "company_size", "founded_year", "logo",
}

func (u *User) Completion() Completion {
	return completionOf(u.ProfileFields(), profileFieldNames)
}

func (c *Company) Completion() Completion {
	return completionOf(c.ProfileFields(), companyFieldNames)
}

// TrendPoint is one month in a dashboard trend series. Month is
// formatted as "2006-01".
type TrendPoint struct {
	Month string `json:"month"`
	Count int64  `json:"count"`
}

type EmployeeDashboard struct {
	ProfileCompletion  Completion       `json:"profile_completion"`
	Applications       ApplicationStats `json:"applications"`
	RecentApplications []Application    `json:"recent_applications"`
	RecommendedJobs    []JobListing     `json:"recommended_jobs"`
	UnreadCount        int64            `json:"unread_notifications"`
}

type EmployerDashboard struct {
	CompanyCompletion  Completion       `json:"company_completion"`
	ActiveJobs         int64            `json:"active_jobs"`
	PendingJobs        int64            `json:"pending_jobs"`
	TotalJobs          int64            `json:"total_jobs"`
	TotalViews         int64            `json:"total_views"`
	Applications       ApplicationStats `json:"applications"`
	RecentApplications []Application    `json:"recent_applications"`
	ApplicationTrend   []TrendPoint     `json:"application_trend"`
	UnreadCount        int64            `json:"unread_notifications"`
}

type AdminDashboard struct {
	TotalUsers        int64        `json:"total_users"`
	TotalEmployees    int64        `json:"total_employees"`
	TotalEmployers    int64        `json:"total_employers"`
	TotalJobs         int64        `json:"total_jobs"`
	PendingJobs       int64        `json:"pending_jobs"`
	ActiveJobs        int64        `json:"active_jobs"`
	TotalApplications int64        `json:"total_applications"`
	UserTrend         []TrendPoint `json:"user_trend"`
	JobTrend          []TrendPoint `json:"job_trend"`
	ApplicationTrend  []TrendPoint `json:"application_trend"`
	RecentJobs        []JobListing `json:"recent_jobs"`
}
