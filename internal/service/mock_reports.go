package service

import (
	"fmt"
	"time"

	"github.com/yongxin12/Macrohard/internal/domain"
	"github.com/yongxin12/Macrohard/internal/store/sample"
)

// mockReport builds the canned report for a kind. Demo mode serves these
// directly; live mode serves them annotated as fallback when the model call
// fails.
func mockReport(clientID string, rt domain.ReportType, dr domain.DateRange) *domain.Report {
	base := &domain.Report{
		ReportID:    reportID(rt, clientID),
		ClientID:    clientID,
		ReportType:  rt,
		DateRange:   dr,
		GeneratedAt: time.Now().UTC(),
		GeneratedBy: "mock-user-1",
		Source:      domain.SourceMock,
	}

	switch rt {
	case domain.ReportGovernment:
		base.Content = fmt.Sprintf(mockGovernmentContent, dr.Start, dr.End, clientID)
		base.Metrics = map[string]interface{}{
			"hours_worked":      80,
			"wage_earned":       1240.00,
			"goals_completed":   1,
			"goals_in_progress": 1,
		}
	case domain.ReportEmployer:
		base.Content = fmt.Sprintf(mockEmployerContent, dr.Start, dr.End)
		base.Metrics = map[string]interface{}{
			"attendance_rate":   100,
			"productivity_rate": 85,
			"goals_completed":   1,
			"goals_in_progress": 1,
		}
	case domain.ReportClient:
		base.Content = fmt.Sprintf(mockClientContent, dr.Start, dr.End)
		base.Metrics = map[string]interface{}{
			"achievements": []string{
				"Learned to use the cash register",
				"Completed a full shift independently",
			},
			"next_steps": []string{
				"Practice customer service skills",
				"Learn stock rotation procedures",
			},
		}
	default:
		profile := sample.Profile(clientID)
		base.ClientName = profile.Name
		base.Content = map[string]interface{}{
			"employment_status": "Employed",
			"job_title":         profile.JobTitle,
			"employer":          profile.Employer,
			"start_date":        profile.StartDate,
			"work_hours":        profile.WorkHours,
			"wage":              profile.Wage,
			"hours_worked":      80,
			"wage_earned":       1240.00,
			"accommodations":    profile.Accommodations,
			"progress_notes":    profile.ProgressNotes,
			"goals":             profile.Goals,
			"documents":         profile.Documents,
		}
		base.Metrics = map[string]interface{}{
			"hours_worked":      80,
			"wage_earned":       1240.00,
			"goals_completed":   1,
			"goals_in_progress": 1,
			"documents_pending": 1,
		}
	}
	return base
}

const mockGovernmentContent = `
# EMPLOYMENT SUPPORT SERVICES REPORT
## For Government Agency Use

**Reporting Period:** %s to %s
**Client ID:** %s
**Job Coach:** Job Coach Name

### EMPLOYMENT DETAILS
- **Status:** Employed
- **Position:** Retail Associate
- **Employer:** ABC Retail Store
- **Start Date:** 2023-05-15
- **Hours Worked:** 80 hours
- **Wages Earned:** $1,240.00
- **Funding Source:** Vocational Rehabilitation Services

### ACCOMMODATIONS PROVIDED
- Visual task list
- Job coach presence for first month
- Extended training period

### PROGRESS TOWARD EMPLOYMENT GOALS
1. **Goal:** Learn to operate the cash register independently
   - **Status:** Completed
   - **Evidence:** Supervisor verification on 2023-05-25

2. **Goal:** Interact confidently with customers
   - **Status:** In progress
   - **Evidence:** Successfully greeting customers, still developing product knowledge

3. **Goal:** Manage stock rotation
   - **Status:** Not started
   - **Planned Start:** Next reporting period

### SUPPORT SERVICES PROVIDED
- 12 hours of on-site job coaching
- 2 hours of employer consultation
- 1 hour of benefits counseling

### NEXT STEPS
- Gradually reduce job coaching hours
- Implement customer interaction scripts
- Begin training on stock rotation procedures

This report certifies that all services were provided in accordance with the client's Individual Plan for Employment.
`

const mockEmployerContent = `
# EMPLOYEE PROGRESS REPORT

**Reporting Period:** %s to %s
**Employee:** John Doe
**Position:** Retail Associate

## PERFORMANCE HIGHLIGHTS

John has shown significant progress during this reporting period. Key achievements include:

- Successfully learned to operate the cash register independently
- Demonstrated excellent punctuality with 100%% attendance
- Followed multi-step visual instructions accurately
- Began interacting with customers, showing improving confidence

## EFFECTIVE ACCOMMODATIONS

The following accommodations have proven successful:

1. **Visual task list** - John refers to this consistently and it helps him stay on track
2. **Extended training period** - The additional time has allowed for mastery of basic skills
3. **Structured routine** - John performs best when following the established daily workflow

## AREAS FOR DEVELOPMENT

We recommend focusing on the following areas:

1. **Customer interactions** - Continue practicing greeting customers and answering common questions
2. **Product knowledge** - Expand familiarity with product locations and features
3. **Multitasking** - Gradually introduce handling multiple responsibilities

## RECOMMENDATIONS

- Consider incorporating picture-based product guides
- Maintain the visual task list, updating as new responsibilities are added
- Schedule regular check-ins at the beginning of shifts to review daily expectations

John is making excellent progress in his role. His attention to detail and reliability are valuable assets to your team.
`

const mockClientContent = `
# YOUR WORK PROGRESS

**Time Period:** %s to %s

## GREAT JOB!

You have done very well at your job! Here are some things you did:

* ✅ You learned how to use the cash register
* ✅ You came to work on time every day
* ✅ You followed all the steps on your task list
* ✅ You worked a full shift by yourself

## YOUR NEXT GOALS

Here are the next things to learn:

1. Practice talking to customers
   * Say "Hello, how can I help you?"
   * Learn where things are in the store

2. Learn about putting products on shelves
   * Older products go in front
   * Newer products go in back

## YOUR WORK SCHEDULE

* You work 20 hours each week
* You earned $1,240 this month
* You have worked at ABC Store for 1 month

## WHAT'S NEXT

We will meet on Monday to talk about your progress and practice greeting customers.

GREAT WORK! 👍
`
