package pdfexport

import (
	"bytes"
	"fmt"
	"recruitment-board/models"
	dbmodels "recruitment-board/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// CandidateReport карточка кандидата с историей этапов.
// Используются встроенные шрифты, подписи на французском (cp1252).
func CandidateReport(rec dbmodels.CandidateApplication, posting dbmodels.RecruitmentPosting) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("CandidateReport panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetTitle(tr("Suivi de candidature"), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, tr("Suivi de candidature"), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 11)
	salary := "-"
	if rec.HasOffer() {
		salary = fmt.Sprintf("%d", *rec.ProposedSalary)
	}
	fields := [][2]string{
		{"Candidat", rec.CandidateName},
		{"E-mail", rec.CandidateEmail},
		{"Poste", posting.PositionTitle},
		{"Département", posting.Department},
		{"Étape actuelle", string(rec.CurrentStage)},
		{"Colonne", string(rec.CurrentStage.BoardColumn())},
		{"Entretien RH validé", ouiNon(rec.NormalInterviewPassed)},
		{"Entretien technique validé", ouiNon(rec.TechnicalInterviewPassed)},
		{"Salaire proposé", salary},
	}
	for _, field := range fields {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(60, 7, tr(field[0]), "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.CellFormat(0, 7, tr(field[1]), "", 1, "L", false, 0, "")
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(0, 9, tr("Historique des étapes"), "", 1, "L", false, 0, "")
	widths := []float64{40, 70, 80}
	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(221, 235, 247)
	for idx, header := range []string{"Date", "Étape", "Commentaire"} {
		pdf.CellFormat(widths[idx], 7, tr(header), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 10)
	for _, entry := range rec.StageHistory {
		pdf.CellFormat(widths[0], 7, entry.Timestamp.Format("02.01.2006 15:04"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[1], 7, tr(string(entry.Stage)), "1", 0, "L", false, 0, "")
		pdf.CellFormat(widths[2], 7, tr(entry.Comment), "1", 1, "L", false, 0, "")
	}
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func ouiNon(value bool) string {
	if value {
		return "oui"
	}
	return "non"
}

// ReportFileName имя файла отчета для выгрузки
func ReportFileName(rec dbmodels.CandidateApplication) string {
	if rec.CurrentStage == models.CandidateStageHired {
		return fmt.Sprintf("recrutement-%s.pdf", rec.ID)
	}
	return fmt.Sprintf("candidature-%s.pdf", rec.ID)
}
