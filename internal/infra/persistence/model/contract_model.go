package model

import "time"

// ContractDocument mirrors a document in the 'contracts' collection.
type ContractDocument struct {
	ClientID              string     `firestore:"clientId"`
	ClientName            string     `firestore:"clientName"`
	ClientEmail           string     `firestore:"clientEmail"`
	Status                string     `firestore:"status"`
	CreatedAt             time.Time  `firestore:"createdAt"`
	SignedAt              *time.Time `firestore:"signedAt"`
	ExpiresAt             *time.Time `firestore:"expiresAt,omitempty"`
	PDFURL                string     `firestore:"pdfUrl"`
	SignedPDFURL          string     `firestore:"signedPdfUrl,omitempty"`
	StorageProvider       string     `firestore:"storageProvider,omitempty"`
	SignedStorageProvider string     `firestore:"signedStorageProvider,omitempty"`
}
