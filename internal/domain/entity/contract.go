package entity

import "time"

// ContractStatus is the state of a membership contract.
type ContractStatus string

const (
	ContractDraft            ContractStatus = "draft"
	ContractPendingSignature ContractStatus = "pending_signature"
	ContractSigned           ContractStatus = "signed"
	ContractExpired          ContractStatus = "expired"
)

var contractTransitions = map[ContractStatus][]ContractStatus{
	ContractDraft:            {ContractPendingSignature},
	ContractPendingSignature: {ContractSigned, ContractExpired},
}

// CanTransition reports whether a contract may move from s to next. Statuses never revert.
func (s ContractStatus) CanTransition(next ContractStatus) bool {
	for _, allowed := range contractTransitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Contract is a membership agreement generated for a client.
type Contract struct {
	ID                    string
	ClientID              string
	ClientName            string
	ClientEmail           string
	Status                ContractStatus
	CreatedAt             time.Time
	SignedAt              *time.Time
	ExpiresAt             *time.Time
	PDFURL                string
	SignedPDFURL          string
	StorageProvider       string // Storage that holds the unsigned PDF.
	SignedStorageProvider string // Storage that holds the signed PDF.
}

// EffectiveStatus returns the status as observed at now. A pending contract past its
// expiry reads as expired even though the stored status is unchanged.
func (c *Contract) EffectiveStatus(now time.Time) ContractStatus {
	if c.Status == ContractPendingSignature && c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return ContractExpired
	}

	return c.Status
}

// StorageKey returns the object key of the unsigned PDF.
func (c *Contract) StorageKey() string {
	return "contracts/" + c.ID + ".pdf"
}

// SignedStorageKey returns the object key of the signed PDF.
func (c *Contract) SignedStorageKey() string {
	return "contracts/" + c.ID + "_signed.pdf"
}
