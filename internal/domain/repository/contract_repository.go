package repository

import (
	"context"

	"fitsaga/internal/domain/entity"
	"fitsaga/internal/errors"
)

// ErrContractNotFound is returned when a contract does not exist.
var ErrContractNotFound = errors.New("contract not found")

// ContractRepository defines the interface for contract persistence.
type ContractRepository interface {
	// CreateContract persists a new contract under its ID.
	CreateContract(ctx context.Context, contract *entity.Contract) error

	// FindContractByID retrieves a contract by ID.
	FindContractByID(ctx context.Context, id string) (*entity.Contract, error)

	// FindLatestContractByClient returns the most recently created contract of a client.
	FindLatestContractByClient(ctx context.Context, clientID string) (*entity.Contract, error)

	// UpdateContract overwrites a contract.
	UpdateContract(ctx context.Context, contract *entity.Contract) error
}
