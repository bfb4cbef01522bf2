package dbmodels

import (
	"recruitment-board/models"
)

type RecruitmentPosting struct {
	BaseSpaceModel
	VersionedModel
	PositionTitle  string                 `gorm:"type:varchar(255)"`
	Department     string                 `gorm:"type:varchar(255)"`
	Location       string                 `gorm:"type:varchar(255)"`
	Priority       models.PostingPriority `gorm:"type:varchar(50)"`
	Status         models.PostingStatus   `gorm:"type:varchar(50);index"`
	CandidateCount int
}

type PostingPatch struct {
	Status         *models.PostingStatus
	CandidateCount *int
}

func (p PostingPatch) IsEmpty() bool {
	return p.Status == nil && p.CandidateCount == nil
}

func (p PostingPatch) Apply(rec *RecruitmentPosting) {
	if p.Status != nil {
		rec.Status = *p.Status
	}
	if p.CandidateCount != nil {
		rec.CandidateCount = *p.CandidateCount
	}
}

func (p PostingPatch) UpdMap() map[string]interface{} {
	updMap := map[string]interface{}{}
	if p.Status != nil {
		updMap["status"] = *p.Status
	}
	if p.CandidateCount != nil {
		updMap["candidate_count"] = *p.CandidateCount
	}
	return updMap
}
