package pdfexport

import (
	"bytes"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCandidateReport(t *testing.T) {
	salary := 48000
	rec := dbmodels.CandidateApplication{
		BaseSpaceModel: dbmodels.BaseSpaceModel{BaseModel: dbmodels.BaseModel{ID: "c1"}},
		CandidateName:  "Élodie Martin",
		CurrentStage:   models.CandidateStageOfferSent,
		StageHistory: dbmodels.StageHistory{
			{Stage: models.CandidateStageApplied, Timestamp: time.Now()},
			{Stage: models.CandidateStageOfferSent, Timestamp: time.Now(), Comment: "entretiens validés"},
		},
		NormalInterviewPassed:    true,
		TechnicalInterviewPassed: true,
		ProposedSalary:           &salary,
	}
	posting := dbmodels.RecruitmentPosting{PositionTitle: "Chargé de recrutement", Department: "RH"}

	t.Run(`report check`, func(t *testing.T) {
		data, err := CandidateReport(rec, posting)
		require.NoError(t, err)
		require.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	})
	t.Run(`empty history check`, func(t *testing.T) {
		rec.StageHistory = nil
		data, err := CandidateReport(rec, dbmodels.RecruitmentPosting{})
		require.NoError(t, err)
		require.NotEmpty(t, data)
	})
	t.Run(`file name check`, func(t *testing.T) {
		require.Equal(t, "candidature-c1.pdf", ReportFileName(rec))
		rec.CurrentStage = models.CandidateStageHired
		require.Equal(t, "recrutement-c1.pdf", ReportFileName(rec))
	})
}
