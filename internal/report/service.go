// Package report renders a triage result as a printable PDF summary.
package report

import (
	"bytes"
	"fmt"
	"time"

	"github.com/signintech/gopdf"

	"health-advisor/internal/pathway"
)

type Service struct {
	fontPaths []string
}

func NewService() *Service {
	return &Service{
		// Common DejaVuSans locations across base images.
		fontPaths: []string{
			"/usr/share/fonts/ttf-dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/dejavu/DejaVuSans.ttf",
			"/usr/share/fonts/truetype/dejavu/DejaVuSans.ttf",
		},
	}
}

// Render produces a one-page summary of the deterministic triage result.
func (s *Service) Render(result *pathway.CarePathwayResult) ([]byte, error) {
	pdf := gopdf.GoPdf{}
	pdf.Start(gopdf.Config{PageSize: *gopdf.PageSizeA4})
	pdf.AddPage()

	var fontErr error
	fontLoaded := false
	for _, path := range s.fontPaths {
		if err := pdf.AddTTFFont("DejaVu", path); err == nil {
			fontLoaded = true
			break
		} else {
			fontErr = err
		}
	}
	if !fontLoaded {
		return nil, fmt.Errorf("failed to load font for PDF, install ttf-dejavu: %w", fontErr)
	}

	if err := pdf.SetFont("DejaVu", "", 20); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Symptom Triage Summary")
	pdf.Br(30)

	if err := pdf.SetFont("DejaVu", "", 12); err != nil {
		return nil, err
	}
	pdf.Cell(nil, fmt.Sprintf("Date: %s", time.Now().Format("02.01.2006 15:04")))
	pdf.Br(15)
	pdf.Cell(nil, fmt.Sprintf("Urgency: %s (%s)", result.Verdict.Tier, pathway.TierColour(result.Verdict.Tier)))
	pdf.Br(15)
	lines, _ := pdf.SplitText("Assessment: "+result.Verdict.Rationale, 500)
	for _, l := range lines {
		pdf.Cell(nil, l)
		pdf.Br(12)
	}
	pdf.Br(13)

	if err := pdf.SetFont("DejaVu", "", 14); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "Reported symptoms:")
	pdf.Br(15)
	if err := pdf.SetFont("DejaVu", "", 11); err != nil {
		return nil, err
	}
	for _, id := range result.Input.Symptoms {
		pdf.Cell(nil, fmt.Sprintf("- %s", id))
		pdf.Br(12)
	}
	pdf.Br(10)

	writeItems := func(heading string, items []string) error {
		if len(items) == 0 {
			return nil
		}
		if err := pdf.SetFont("DejaVu", "", 14); err != nil {
			return err
		}
		pdf.Cell(nil, heading)
		pdf.Br(15)
		if err := pdf.SetFont("DejaVu", "", 11); err != nil {
			return err
		}
		for _, item := range items {
			itemLines, _ := pdf.SplitText("- "+item, 500)
			for _, l := range itemLines {
				pdf.Cell(nil, l)
				pdf.Br(12)
			}
		}
		pdf.Br(10)
		return nil
	}

	if result.Verdict.Emergency {
		if err := writeItems("EMERGENCY:", []string{"Call your local emergency number immediately. Do not self-medicate."}); err != nil {
			return nil, err
		}
	} else {
		var medicines, homeCare []string
		for _, m := range result.Match.Medicines {
			medicines = append(medicines, fmt.Sprintf("%s: %s", m.Item.Name, m.Item.Rationale))
		}
		for _, m := range result.Match.HomeCare {
			homeCare = append(homeCare, fmt.Sprintf("%s: %s", m.Item.Name, m.Item.Rationale))
		}
		if err := writeItems("Suggested medicines (read labels, check precautions):", medicines); err != nil {
			return nil, err
		}
		if err := writeItems("Home care:", homeCare); err != nil {
			return nil, err
		}
	}

	pdf.SetY(800)
	if err := pdf.SetFont("DejaVu", "", 9); err != nil {
		return nil, err
	}
	pdf.Cell(nil, "This summary is general health information, not a diagnosis. When in doubt, talk to a clinician.")

	var buf bytes.Buffer
	if _, err := pdf.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write PDF: %w", err)
	}
	return buf.Bytes(), nil
}
