package service

import (
	"time"

	"fitsaga/internal/errors"
)

// ErrInvalidSignatureImage is returned when the signature is not a decodable PNG.
var ErrInvalidSignatureImage = errors.New("signature is not a valid PNG image")

// ContractDocument is the data printed on a membership contract.
type ContractDocument struct {
	ContractID  string
	ClientName  string
	ClientEmail string
	ClientPhone string
	Address     string
	MemberSince *time.Time
	IssuedAt    time.Time
	StartDate   time.Time
	EndDate     time.Time
	SigningURL  string
	SigningQR   []byte // PNG, optional.
}

// SignatureStamp is a signature applied to the last page of a contract.
type SignatureStamp struct {
	Image      []byte // PNG
	SignerName string
	SignedAt   time.Time
}

// ContractRenderer produces contract PDFs.
type ContractRenderer interface {
	// RenderFromTemplate fills the template PDF with the document fields.
	RenderFromTemplate(doc *ContractDocument) ([]byte, error)

	// RenderFromScratch builds the contract without a template.
	RenderFromScratch(doc *ContractDocument) ([]byte, error)

	// StampSignature returns a copy of pdf with the signature on its last page.
	StampSignature(pdf []byte, stamp *SignatureStamp) ([]byte, error)
}
