package usecase

import (
	"context"

	"fitsaga/internal/domain/entity"
)

// GenerateContractInput selects the client and whether the contract is emailed.
type GenerateContractInput struct {
	ClientID  string
	SendEmail bool
}

// GenerateContractOutput reports the generated contract and the email outcome.
type GenerateContractOutput struct {
	ContractID  string
	ContractURL string
	EmailSent   bool
	EmailError  string
	Message     string
}

// SignContractInput carries a signature captured from the signing page.
type SignContractInput struct {
	ContractID string
	Signature  string // PNG data URL
	SignerName string
	Token      string
}

// SignContractOutput reports where the signed contract was stored.
type SignContractOutput struct {
	SignedPDFURL string
	Message      string
}

// ContractUsecase defines the contract lifecycle.
type ContractUsecase interface {
	// GenerateContract renders, stores and optionally emails a new contract
	GenerateContract(ctx context.Context, input GenerateContractInput) (*GenerateContractOutput, error)

	// SignContract stamps the signature onto the contract and stores the signed copy
	SignContract(ctx context.Context, input SignContractInput) (*SignContractOutput, error)

	// GetContract returns the contract with its effective status
	GetContract(ctx context.Context, id string) (*entity.Contract, error)

	// GetLatestContract returns the most recent contract of a client
	GetLatestContract(ctx context.Context, clientID string) (*entity.Contract, error)

	// GetContractDocument returns a stored PDF by file name, "{id}.pdf" or "{id}_signed.pdf"
	GetContractDocument(ctx context.Context, fileName string) ([]byte, error)

	// GetSigningQRCode returns a PNG QR code of the signing link
	GetSigningQRCode(ctx context.Context, id string) ([]byte, error)
}
