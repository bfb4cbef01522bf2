package models

type PostingPriority string

const (
	PriorityUrgent PostingPriority = "Urgente"
	PriorityHigh   PostingPriority = "Haute"
	PriorityMedium PostingPriority = "Moyenne"
	PriorityLow    PostingPriority = "Basse"
)

// ранг приоритета, меньше = важнее
var priorityRanks = map[PostingPriority]int{
	PriorityUrgent: 0,
	"Urgent":       0,
	PriorityHigh:   1,
	"High":         1,
	PriorityMedium: 2,
	"Medium":       2,
	PriorityLow:    3,
	"Low":          3,
}

const UnknownPriorityRank = 99

func (p PostingPriority) Rank() int {
	if rank, ok := priorityRanks[p]; ok {
		return rank
	}
	return UnknownPriorityRank
}

func (p PostingPriority) IsValid() bool {
	_, ok := priorityRanks[p]
	return ok
}

type InterviewType string

const (
	InterviewTypeNormal    InterviewType = "normal"
	InterviewTypeTechnical InterviewType = "technical"
)

func (t InterviewType) IsValid() bool {
	return t == InterviewTypeNormal || t == InterviewTypeTechnical
}

func (t InterviewType) ToHuman() string {
	switch t {
	case InterviewTypeNormal:
		return "общее собеседование"
	case InterviewTypeTechnical:
		return "техническое собеседование"
	}
	return string(t)
}

type ItemKind string

const (
	ItemKindPosting   ItemKind = "posting"
	ItemKindCandidate ItemKind = "candidate"
)
