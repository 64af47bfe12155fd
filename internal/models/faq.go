package models

// FAQ categories
const (
	CategoryCourse    = "course"
	CategoryPayment   = "payment"
	CategoryTechnical = "technical"
	CategoryGeneral   = "general"
	CategoryHackathon = "hackathon"
	CategoryOther     = "other"

	// CategoryAll disables the category filter.
	CategoryAll = "all"
)

// FAQ priorities
const (
	PriorityNormal = "normal"
	PriorityHigh   = "high"
	PriorityUrgent = "urgent"
)

var Categories = []string{
	CategoryCourse,
	CategoryPayment,
	CategoryTechnical,
	CategoryGeneral,
	CategoryHackathon,
	CategoryOther,
}

var Priorities = []string{PriorityNormal, PriorityHigh, PriorityUrgent}

type Helpful struct {
	Yes int `json:"yes" yaml:"yes"`
	No  int `json:"no" yaml:"no"`
}

type FAQ struct {
	ID        int64    `json:"id" yaml:"id"`
	Category  string   `json:"category" yaml:"category"`
	Priority  string   `json:"priority" yaml:"priority"`
	Question  string   `json:"question" yaml:"question"`
	Answer    string   `json:"answer" yaml:"answer"`
	Tags      []string `json:"tags" yaml:"tags"`
	Helpful   Helpful  `json:"helpful" yaml:"helpful"`
	Date      string   `json:"date" yaml:"date"`
	Timestamp int64    `json:"timestamp" yaml:"timestamp"`
}

func (f FAQ) RecordID() int64 { return f.ID }

/*
|--------------------------------------------------------------------------
| REQUEST
|--------------------------------------------------------------------------
*/
type CreateFAQRequest struct {
	Category string `json:"category" form:"category"`
	Priority string `json:"priority" form:"priority"`
	Question string `json:"question" form:"question"`
	Answer   string `json:"answer" form:"answer"`
	// Tags is the raw comma separated input.
	Tags string `json:"tags" form:"tags"`
}

type FeedbackRequest struct {
	Helpful bool `json:"helpful" form:"helpful"`
}

func IsCategory(c string) bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

func IsPriority(p string) bool {
	for _, v := range Priorities {
		if v == p {
			return true
		}
	}
	return false
}
