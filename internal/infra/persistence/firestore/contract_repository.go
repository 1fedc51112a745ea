package firestore

import (
	"context"

	"fitsaga/internal/domain/constants"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/errors"
	"fitsaga/internal/infra/persistence/model"

	fs "cloud.google.com/go/firestore"
)

// contractRepository implements the repository.ContractRepository interface.
type contractRepository struct {
	client *fs.Client
}

// NewContractRepository is the constructor for contractRepository.
func NewContractRepository(client *fs.Client) repository.ContractRepository {
	return &contractRepository{
		client: client,
	}
}

func (repo *contractRepository) contracts() *fs.CollectionRef {
	return repo.client.Collection(constants.CollectionContracts)
}

func (repo *contractRepository) CreateContract(ctx context.Context, contract *entity.Contract) error {
	if _, err := repo.contracts().Doc(contract.ID).Create(ctx, fromContractDomain(contract)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create contract")
	}

	return nil
}

func (repo *contractRepository) FindContractByID(ctx context.Context, id string) (*entity.Contract, error) {
	snap, err := repo.contracts().Doc(id).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrContractNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find contract")
	}

	return decodeContract(snap)
}

func (repo *contractRepository) FindLatestContractByClient(ctx context.Context, clientID string) (*entity.Contract, error) {
	snaps, err := repo.contracts().
		Where("clientId", "==", clientID).
		OrderBy("createdAt", fs.Desc).
		Limit(1).
		Documents(ctx).GetAll()
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find latest contract")
	}
	if len(snaps) == 0 {
		return nil, repository.ErrContractNotFound
	}

	return decodeContract(snaps[0])
}

func (repo *contractRepository) UpdateContract(ctx context.Context, contract *entity.Contract) error {
	if _, err := repo.contracts().Doc(contract.ID).Set(ctx, fromContractDomain(contract)); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update contract")
	}

	return nil
}

func decodeContract(snap *fs.DocumentSnapshot) (*entity.Contract, error) {
	var doc model.ContractDocument
	if err := snap.DataTo(&doc); err != nil {
		return nil, errors.Wrapf(err, "failed to decode contract %s", snap.Ref.ID)
	}

	return &entity.Contract{
		ID:                    snap.Ref.ID,
		ClientID:              doc.ClientID,
		ClientName:            doc.ClientName,
		ClientEmail:           doc.ClientEmail,
		Status:                entity.ContractStatus(doc.Status),
		CreatedAt:             doc.CreatedAt,
		SignedAt:              doc.SignedAt,
		ExpiresAt:             doc.ExpiresAt,
		PDFURL:                doc.PDFURL,
		SignedPDFURL:          doc.SignedPDFURL,
		StorageProvider:       doc.StorageProvider,
		SignedStorageProvider: doc.SignedStorageProvider,
	}, nil
}

func fromContractDomain(data *entity.Contract) *model.ContractDocument {
	return &model.ContractDocument{
		ClientID:              data.ClientID,
		ClientName:            data.ClientName,
		ClientEmail:           data.ClientEmail,
		Status:                string(data.Status),
		CreatedAt:             data.CreatedAt,
		SignedAt:              data.SignedAt,
		ExpiresAt:             data.ExpiresAt,
		PDFURL:                data.PDFURL,
		SignedPDFURL:          data.SignedPDFURL,
		StorageProvider:       data.StorageProvider,
		SignedStorageProvider: data.SignedStorageProvider,
	}
}
