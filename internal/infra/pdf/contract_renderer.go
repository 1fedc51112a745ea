// Package pdf renders and signs membership contract PDFs.
package pdf

import (
	"bytes"
	"image/png"
	"io"
	"os"

	"fitsaga/config"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"

	"github.com/go-pdf/fpdf"
	"github.com/go-pdf/fpdf/contrib/gofpdi"
)

const (
	dateLayout = "January 2, 2006"
	fontFamily = "Helvetica"
	mediaBox   = "/MediaBox"

	membershipType   = "Premium Fitness Membership"
	paymentAmount    = "$99.99"
	paymentFrequency = "Monthly"

	signatureMaxWidth  = 200.0
	signatureMaxHeight = 80.0
	// signatureBaseline is the bottom of the signature, as a fraction of page height from the bottom.
	signatureBaseline = 0.3
	signatureTextGap  = 20.0

	qrSize = 90.0
)

// templateField is a value printed over the template at a fixed position on the first page.
type templateField struct {
	x, y  float64
	value func(doc *service.ContractDocument) string
}

// templateLayout places the client fields over the blanks of templates/contract-template.pdf.
var templateLayout = []templateField{
	{x: 160, y: 182, value: func(d *service.ContractDocument) string { return d.ClientName }},
	{x: 160, y: 204, value: func(d *service.ContractDocument) string { return d.ClientEmail }},
	{x: 160, y: 226, value: func(d *service.ContractDocument) string { return d.ClientPhone }},
	{x: 160, y: 290, value: func(*service.ContractDocument) string { return membershipType }},
	{x: 160, y: 312, value: func(d *service.ContractDocument) string { return d.StartDate.Format(dateLayout) }},
	{x: 160, y: 334, value: func(d *service.ContractDocument) string { return d.EndDate.Format(dateLayout) }},
	{x: 160, y: 398, value: func(*service.ContractDocument) string { return paymentAmount }},
	{x: 160, y: 420, value: func(*service.ContractDocument) string { return paymentFrequency }},
}

var contractTerms = []string{
	"1. Membership Terms: This contract outlines the terms and conditions of your membership with FitSAGA.",
	"2. Payment: The member agrees to pay all fees associated with the membership plan selected.",
	"3. Rules and Regulations: The member agrees to follow all rules and regulations of FitSAGA facilities.",
	"4. Liability: FitSAGA is not liable for any injuries or damages that occur on the premises.",
	"5. Termination: FitSAGA reserves the right to terminate membership for violation of terms.",
	"6. Cancellation: Members may cancel their membership according to the cancellation policy.",
}

type contractRenderer struct {
	templatePath string
}

// NewContractRenderer is the constructor for contractRenderer.
func NewContractRenderer(cfg *config.Config) service.ContractRenderer {
	return &contractRenderer{templatePath: cfg.Contracts.TemplatePath}
}

func (r *contractRenderer) RenderFromTemplate(doc *service.ContractDocument) ([]byte, error) {
	template, err := os.ReadFile(r.templatePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read contract template %s", r.templatePath)
	}

	return render(func(out *fpdf.Fpdf) error {
		pages, err := importPages(out, template)
		if err != nil {
			return err
		}

		for i, page := range pages {
			page.place()
			if i != 0 {
				continue
			}

			tr := out.UnicodeTranslatorFromDescriptor("")
			out.SetFont(fontFamily, "", 11)
			for _, field := range templateLayout {
				out.Text(field.x, field.y, tr(field.value(doc)))
			}
			drawQR(out, doc.SigningQR, page.width-qrSize-40, 40)
		}

		return nil
	})
}

func (r *contractRenderer) RenderFromScratch(doc *service.ContractDocument) ([]byte, error) {
	return render(func(out *fpdf.Fpdf) error {
		out.AddPageFormat("P", out.GetPageSizeStr("A4"))
		tr := out.UnicodeTranslatorFromDescriptor("")

		issued := doc.IssuedAt.Format(dateLayout)
		memberSince := issued
		if doc.MemberSince != nil {
			memberSince = doc.MemberSince.Format(dateLayout)
		}

		out.SetFont(fontFamily, "B", 18)
		out.Text(50, 42, "FitSAGA MEMBERSHIP CONTRACT")
		out.SetFont(fontFamily, "", 12)
		out.Text(50, 72, "Date: "+issued)

		out.SetFont(fontFamily, "B", 14)
		out.Text(50, 112, "CLIENT INFORMATION")
		out.SetFont(fontFamily, "", 12)
		details := []string{
			"Name: " + doc.ClientName,
			"Email: " + doc.ClientEmail,
			"Phone: " + orNA(doc.ClientPhone),
			"Address: " + orNA(doc.Address),
			"Member Since: " + memberSince,
		}
		for i, detail := range details {
			out.Text(50, 142+float64(i)*20, tr(detail))
		}

		out.SetFont(fontFamily, "B", 14)
		out.Text(50, 262, "CONTRACT TERMS AND CONDITIONS")
		out.SetFont(fontFamily, "", 10)
		out.SetXY(50, 280)
		for _, term := range contractTerms {
			out.MultiCell(495, 14, term, "", "L", false)
			out.Ln(8)
		}

		out.SetFont(fontFamily, "B", 14)
		out.Text(50, 542, "SIGNATURES")
		out.SetFont(fontFamily, "", 12)
		out.Text(50, 572, "Client Signature:")
		out.Line(150, 572, 350, 572)
		out.Text(50, 602, "Date:")
		out.Line(150, 602, 350, 602)
		out.Text(50, 632, "FitSAGA Representative:")
		out.Line(200, 632, 400, 632)

		drawQR(out, doc.SigningQR, 455, 540)

		out.SetFont(fontFamily, "", 10)
		out.Text(200, 792, "FitSAGA Fitness - Your Path to Wellness")

		return nil
	})
}

func (r *contractRenderer) StampSignature(original []byte, stamp *service.SignatureStamp) ([]byte, error) {
	imgCfg, err := png.DecodeConfig(bytes.NewReader(stamp.Image))
	if err != nil {
		return nil, errors.Join(service.ErrInvalidSignatureImage, err)
	}
	width, height := fitSignature(float64(imgCfg.Width), float64(imgCfg.Height))

	return render(func(out *fpdf.Fpdf) error {
		pages, err := importPages(out, original)
		if err != nil {
			return err
		}

		for i, page := range pages {
			page.place()
			if i != len(pages)-1 {
				continue
			}

			x := page.width/2 - width/2
			bottom := page.height - page.height*signatureBaseline
			out.RegisterImageOptionsReader("signature", fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(stamp.Image))
			out.ImageOptions("signature", x, bottom-height, width, height, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

			tr := out.UnicodeTranslatorFromDescriptor("")
			out.SetFont(fontFamily, "B", 10)
			out.Text(x, bottom+signatureTextGap, tr(stamp.SignerName))
			out.Text(x+width-80, bottom+signatureTextGap, "Date: "+stamp.SignedAt.Format(dateLayout))
		}

		return nil
	})
}

// fitSignature scales the image down to the signature box, keeping its aspect ratio.
func fitSignature(width, height float64) (w, h float64) {
	if width > signatureMaxWidth {
		height *= signatureMaxWidth / width
		width = signatureMaxWidth
	}
	if height > signatureMaxHeight {
		width *= signatureMaxHeight / height
		height = signatureMaxHeight
	}

	return width, height
}

// importedPage is a page of an existing PDF ready to be placed on a new page of the output.
type importedPage struct {
	width, height float64
	place         func()
}

// importPages imports every page of src. gofpdi panics on malformed input, so the panic is
// turned into an error.
func importPages(out *fpdf.Fpdf, src []byte) (pages []importedPage, err error) {
	defer func() {
		if r := recover(); r != nil {
			pages = nil
			err = errors.Errorf("failed to import PDF: %v", r)
		}
	}()

	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(src))

	first := importer.ImportPageFromStream(out, &rs, 1, mediaBox)
	sizes := importer.GetPageSizes()
	if len(sizes) == 0 {
		return nil, errors.New("PDF has no pages")
	}

	pages = make([]importedPage, 0, len(sizes))
	for pageNo := 1; pageNo <= len(sizes); pageNo++ {
		tpl := first
		if pageNo > 1 {
			tpl = importer.ImportPageFromStream(out, &rs, pageNo, mediaBox)
		}
		width := sizes[pageNo][mediaBox]["w"]
		height := sizes[pageNo][mediaBox]["h"]

		pages = append(pages, importedPage{
			width:  width,
			height: height,
			place: func() {
				out.AddPageFormat("P", fpdf.SizeType{Wd: width, Ht: height})
				importer.UseImportedTemplate(out, tpl, 0, 0, width, height)
			},
		})
	}

	return pages, nil
}

func drawQR(out *fpdf.Fpdf, qr []byte, x, y float64) {
	if len(qr) == 0 {
		return
	}

	opts := fpdf.ImageOptions{ImageType: "PNG"}
	out.RegisterImageOptionsReader("signing-qr", opts, bytes.NewReader(qr))
	out.ImageOptions("signing-qr", x, y, qrSize, qrSize, false, opts, 0, "")
	out.SetFont(fontFamily, "", 8)
	out.Text(x+8, y+qrSize+10, "Scan to sign online")
}

// render runs draw on a fresh A4 point-based document and returns the PDF bytes.
func render(draw func(out *fpdf.Fpdf) error) ([]byte, error) {
	out := fpdf.New("P", "pt", "A4", "")
	out.SetAutoPageBreak(false, 0)
	out.SetCreator("FitSAGA", true)

	if err := draw(out); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := out.Output(&buf); err != nil {
		return nil, errors.Wrap(err, "failed to write PDF")
	}

	return buf.Bytes(), nil
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}

	return value
}
