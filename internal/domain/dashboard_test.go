package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr(s string) *string { return &s }

func TestUserCompletion(t *testing.T) {
	t.Run("Bare account", func(t *testing.T) {
		u := &User{Name: "Sara", Email: "sara@example.com"}
		c := u.Completion()

		assert.Equal(t, 22, c.Percentage)
		assert.Len(t, c.Missing, 7)
		assert.Contains(t, c.Missing, "cv")
		assert.Contains(t, c.Missing, "avatar")
	})

	t.Run("Full profile", func(t *testing.T) {
		u := &User{
			Name:           "Sara",
			Email:          "sara@example.com",
			Phone:          ptr("+966500000000"),
			Location:       ptr("Riyadh"),
			Specialization: ptr("Software Engineering"),
			University:     ptr("KSU"),
			ProfileSummary: ptr("Backend engineer."),
			AvatarPath:     ptr("avatars/a.png"),
			CVPath:         ptr("cvs/cv.pdf"),
		}
		c := u.Completion()

		assert.Equal(t, 100, c.Percentage)
		assert.Empty(t, c.Missing)
	})

	t.Run("Empty string pointers count as missing", func(t *testing.T) {
		u := &User{Name: "Sara", Email: "sara@example.com", Phone: ptr("")}
		c := u.Completion()

		assert.Contains(t, c.Missing, "phone")
	})
}

func TestCompanyCompletion(t *testing.T) {
	t.Run("Partial profile rounds to the nearest percent", func(t *testing.T) {
		year := 2015
		c := &Company{
			CompanyName: "Acme",
			Description: ptr("We make things."),
			Industry:    ptr("Manufacturing"),
			FoundedYear: &year,
		}
		got := c.Completion()

		// 4 of 9 fields filled is 44.4 percent.
		assert.Equal(t, 44, got.Percentage)
		assert.Contains(t, got.Missing, "logo")
		assert.Contains(t, got.Missing, "website")
		assert.Contains(t, got.Missing, "phone")
	})

	t.Run("Rounding goes up past the half mark", func(t *testing.T) {
		year := 2015
		c := &Company{
			CompanyName: "Acme",
			Description: ptr("We make things."),
			Industry:    ptr("Manufacturing"),
			Phone:       ptr("+966110000000"),
			FoundedYear: &year,
		}
		got := c.Completion()

		// 5 of 9 fields filled is 55.6 percent.
		assert.Equal(t, 56, got.Percentage)
	})
}

func TestJobListing_IsAcceptingApplications(t *testing.T) {
	now := time.Now()
	tomorrow := now.Add(24 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)

	t.Run("Active without deadline", func(t *testing.T) {
		j := &JobListing{Status: JobStatusActive}
		assert.True(t, j.IsAcceptingApplications(now))
	})

	t.Run("Active before deadline", func(t *testing.T) {
		j := &JobListing{Status: JobStatusActive, Deadline: &tomorrow}
		assert.True(t, j.IsAcceptingApplications(now))
	})

	t.Run("Active past deadline", func(t *testing.T) {
		j := &JobListing{Status: JobStatusActive, Deadline: &yesterday}
		assert.False(t, j.IsAcceptingApplications(now))
	})

	t.Run("Pending never accepts", func(t *testing.T) {
		j := &JobListing{Status: JobStatusPending, Deadline: &tomorrow}
		assert.False(t, j.IsAcceptingApplications(now))
	})

	t.Run("Closed never accepts", func(t *testing.T) {
		j := &JobListing{Status: JobStatusClosed}
		assert.False(t, j.IsAcceptingApplications(now))
	})
}

func TestApplicationStatus(t *testing.T) {
	t.Run("Terminal statuses", func(t *testing.T) {
		assert.True(t, ApplicationRejected.IsTerminal())
		assert.True(t, ApplicationAccepted.IsTerminal())
		assert.False(t, ApplicationSubmitted.IsTerminal())
		assert.False(t, ApplicationViewed.IsTerminal())
		assert.False(t, ApplicationShortlisted.IsTerminal())
	})

	t.Run("Withdrawal ends once the employer acts", func(t *testing.T) {
		assert.True(t, (&Application{Status: ApplicationSubmitted}).CanWithdraw())
		assert.True(t, (&Application{Status: ApplicationViewed}).CanWithdraw())
		assert.False(t, (&Application{Status: ApplicationShortlisted}).CanWithdraw())
		assert.False(t, (&Application{Status: ApplicationRejected}).CanWithdraw())
		assert.False(t, (&Application{Status: ApplicationAccepted}).CanWithdraw())
	})

	t.Run("Unknown status is invalid", func(t *testing.T) {
		assert.False(t, ApplicationStatus("hired").IsValid())
	})
}

func TestNormalizePagination(t *testing.T) {
	page, perPage := NormalizePagination(0, 0)
	assert.Equal(t, 1, page)
	assert.Equal(t, 10, perPage)

	page, perPage = NormalizePagination(-5, 1000)
	assert.Equal(t, 1, page)
	assert.Equal(t, 100, perPage)

	page, perPage = NormalizePagination(3, 25)
	assert.Equal(t, 3, page)
	assert.Equal(t, 25, perPage)
}
