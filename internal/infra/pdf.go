package infra

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-pdf/fpdf"

	"github.com/marcusnog/playground-backend/internal/model"
)

// GenerateComprovantePDF writes a thermal-receipt-style payment voucher for a
// paid play-time entry. Company identity and PIX data come from the global
// parameters. Returns the path of the generated file.
func GenerateComprovantePDF(l *model.Lancamento, params *model.Parametros, storagePath string) (string, error) {
	if err := os.MkdirAll(storagePath, 0755); err != nil {
		return "", fmt.Errorf("pdf: create storage dir: %w", err)
	}

	fileName := fmt.Sprintf("comprovante_%s.pdf", l.ID)
	filePath := filepath.Join(storagePath, fileName)

	// 74mm x 105mm, roughly thermal receipt paper.
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	empresa := "Parque Infantil"
	cnpj := ""
	if params != nil {
		if params.EmpresaNome != "" {
			empresa = params.EmpresaNome
		}
		cnpj = params.EmpresaCnpj
	}

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, empresa, "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	if cnpj != "" {
		pdf.CellFormat(contentW, 4, "CNPJ "+cnpj, "", 1, "C", false, 0, "")
	}
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprovante de Pagamento", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, l.DataHora.Format("02/01/2006  15:04"), "", 1, "L", false, 0, "")
	pdf.Ln(1)

	row := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 7)
		pdf.CellFormat(contentW*0.4, 4, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW*0.6, 4, value, "", 1, "L", false, 0, "")
	}

	row("Criança:", l.NomeCrianca)
	row("Responsável:", l.NomeResponsavel)
	if l.NumeroPulseira != nil {
		row("Pulseira:", *l.NumeroPulseira)
	}
	if l.Brinquedo != nil {
		row("Brinquedo:", l.Brinquedo.Nome)
	}
	if l.TempoSolicitadoMin != nil {
		row("Tempo:", fmt.Sprintf("%d min", *l.TempoSolicitadoMin))
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(contentW*0.5, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(contentW*0.5, 6, "R$ "+l.ValorCalculado.StringFixed(2), "", 1, "R", false, 0, "")

	if l.FormaPagamento != nil {
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "Forma de pagamento: "+l.FormaPagamento.Descricao, "", 1, "L", false, 0, "")
	}

	if params != nil && params.PixChave != "" {
		pdf.Ln(2)
		pdf.SetFont("Helvetica", "", 7)
		pdf.CellFormat(contentW, 4, "PIX: "+params.PixChave, "", 1, "L", false, 0, "")
		if params.PixCidade != "" {
			pdf.CellFormat(contentW, 4, params.PixCidade, "", 1, "L", false, 0, "")
		}
	}

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Obrigado pela visita!", "", 1, "C", false, 0, "")

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", fmt.Errorf("pdf: write file: %w", err)
	}

	return filePath, nil
}
