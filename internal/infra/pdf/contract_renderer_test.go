package pdf

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocument() *service.ContractDocument {
	issued := time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC)

	return &service.ContractDocument{
		ContractID:  "c0ffee00-0000-4000-8000-000000000001",
		ClientName:  "Jane Doe",
		ClientEmail: "jane@example.com",
		IssuedAt:    issued,
		StartDate:   issued,
		EndDate:     issued.AddDate(1, 0, 0),
		SigningURL:  "http://localhost:3000/contracts/c0ffee00/sign",
	}
}

func testPNG(t *testing.T, width, height int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := range width {
		img.Set(x, height/2, color.Black)
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	return buf.Bytes()
}

func newTestRenderer(templatePath string) service.ContractRenderer {
	return NewContractRenderer(&config.Config{Contracts: &config.ContractsConfig{TemplatePath: templatePath}})
}

func TestContractRenderer_RenderFromScratch(t *testing.T) {
	renderer := newTestRenderer("")
	doc := testDocument()
	doc.SigningQR = testPNG(t, 64, 64)

	out, err := renderer.RenderFromScratch(doc)

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestContractRenderer_RenderFromTemplate_MissingTemplate(t *testing.T) {
	renderer := newTestRenderer(filepath.Join(t.TempDir(), "missing.pdf"))

	_, err := renderer.RenderFromTemplate(testDocument())

	assert.Error(t, err)
}

func TestContractRenderer_RenderFromTemplate_UsesTemplatePages(t *testing.T) {
	scratch, err := newTestRenderer("").RenderFromScratch(testDocument())
	require.NoError(t, err)

	templatePath := filepath.Join(t.TempDir(), "contract-template.pdf")
	require.NoError(t, os.WriteFile(templatePath, scratch, 0o600))

	out, err := newTestRenderer(templatePath).RenderFromTemplate(testDocument())

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestContractRenderer_RenderFromTemplate_CorruptTemplate(t *testing.T) {
	templatePath := filepath.Join(t.TempDir(), "contract-template.pdf")
	require.NoError(t, os.WriteFile(templatePath, []byte("not a pdf"), 0o600))

	_, err := newTestRenderer(templatePath).RenderFromTemplate(testDocument())

	assert.Error(t, err)
}

func TestContractRenderer_StampSignature(t *testing.T) {
	renderer := newTestRenderer("")
	original, err := renderer.RenderFromScratch(testDocument())
	require.NoError(t, err)

	signed, err := renderer.StampSignature(original, &service.SignatureStamp{
		Image:      testPNG(t, 400, 100),
		SignerName: "Jane Doe",
		SignedAt:   time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(signed, []byte("%PDF-")))
	assert.NotEqual(t, original, signed)
}

func TestContractRenderer_StampSignature_InvalidImage(t *testing.T) {
	renderer := newTestRenderer("")

	_, err := renderer.StampSignature([]byte("%PDF-1.3"), &service.SignatureStamp{Image: []byte("not a png")})

	assert.ErrorIs(t, err, service.ErrInvalidSignatureImage)
}

func TestFitSignature(t *testing.T) {
	tests := []struct {
		name          string
		width, height float64
		wantW, wantH  float64
	}{
		{"fits already", 150, 60, 150, 60},
		{"too wide", 400, 100, 200, 50},
		{"too tall", 100, 160, 50, 80},
		{"too wide then too tall", 800, 400, 160, 80},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := fitSignature(tt.width, tt.height)
			assert.InDelta(t, tt.wantW, w, 0.001)
			assert.InDelta(t, tt.wantH, h, 0.001)
		})
	}
}
