package impl

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"fitsaga/config"
	deliverycontext "fitsaga/internal/delivery/context"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/errors"
	"fitsaga/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

const (
	pdfContentType   = "application/pdf"
	pngDataURLPrefix = "data:image/png;base64,"
)

// ContractServiceParams holds dependencies for the contract service
type ContractServiceParams struct {
	fx.In

	Config       *config.Config
	Logger       *slog.Logger
	UserRepo     repository.UserRepository
	ContractRepo repository.ContractRepository
	Renderer     service.ContractRenderer
	Storage      service.ObjectStorage
	Mailer       service.Mailer
	QRCode       service.QRCodeService
	Tokens       service.SigningTokenService
	Publisher    service.EventPublisher
}

type contractService struct {
	userRepo      repository.UserRepository
	contractRepo  repository.ContractRepository
	renderer      service.ContractRenderer
	storage       service.ObjectStorage
	mailer        service.Mailer
	qrcode        service.QRCodeService
	tokens        service.SigningTokenService
	events        memberEvents
	publicBaseURL string
	validity      time.Duration
	tokenTTL      time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// NewContractService creates the contract lifecycle use case
func NewContractService(params ContractServiceParams) usecase.ContractUsecase {
	return &contractService{
		userRepo:      params.UserRepo,
		contractRepo:  params.ContractRepo,
		renderer:      params.Renderer,
		storage:       params.Storage,
		mailer:        params.Mailer,
		qrcode:        params.QRCode,
		tokens:        params.Tokens,
		events:        memberEvents{publisher: params.Publisher},
		publicBaseURL: params.Config.Contracts.PublicBaseURL,
		validity:      params.Config.Contracts.Validity,
		tokenTTL:      params.Config.Contracts.SigningTokenTTL,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *contractService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GenerateContract renders a contract for a client, stores it and optionally emails the signing link.
func (srv *contractService) GenerateContract(ctx context.Context, input usecase.GenerateContractInput) (*usecase.GenerateContractOutput, error) {
	client, err := srv.findClient(ctx, input.ClientID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	expiresAt := now.Add(srv.validity)
	contract := &entity.Contract{
		ID:          uuid.New().String(),
		ClientID:    client.ID,
		ClientName:  client.FullName,
		ClientEmail: client.Email,
		Status:      entity.ContractPendingSignature,
		CreatedAt:   now,
		ExpiresAt:   &expiresAt,
	}

	signingURL, err := srv.signingURL(contract, now)
	if err != nil {
		return nil, err
	}

	pdf, err := srv.render(ctx, srv.contractDocument(client, contract, signingURL))
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	if err := srv.contractRepo.CreateContract(ctx, contract); err != nil {
		return nil, errors.Wrap(err, "failed to create contract")
	}

	stored, err := srv.storage.Store(ctx, contract.StorageKey(), pdf, pdfContentType)
	if err != nil {
		srv.log(ctx).Error("Failed to store contract", slog.String("contract_id", contract.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrContractStorageFailed, err.Error())
	}

	contract.PDFURL = stored.URL
	contract.StorageProvider = stored.Provider
	if err := srv.contractRepo.UpdateContract(ctx, contract); err != nil {
		return nil, errors.Wrap(err, "failed to record contract url")
	}

	output := &usecase.GenerateContractOutput{
		ContractID:  contract.ID,
		ContractURL: contract.PDFURL,
		Message:     "Contract generated",
	}
	if !input.SendEmail {
		return output, nil
	}

	if err := srv.sendContract(ctx, client, signingURL, pdf); err != nil {
		srv.log(ctx).Warn("Failed to send contract email", slog.String("contract_id", contract.ID), slog.Any("error", err))
		output.EmailError = "Failed to send email, but contract was generated successfully"
		output.Message = "Contract generated but email failed"

		return output, nil
	}

	output.EmailSent = true
	output.Message = "Contract generated and email sent"

	return output, nil
}

// SignContract applies a signature to a pending contract.
func (srv *contractService) SignContract(ctx context.Context, input usecase.SignContractInput) (*usecase.SignContractOutput, error) {
	contract, err := srv.findContract(ctx, input.ContractID)
	if err != nil {
		return nil, err
	}

	now := srv.now().UTC()
	switch contract.EffectiveStatus(now) {
	case entity.ContractSigned:
		return nil, domainerrors.ErrContractAlreadySigned
	case entity.ContractExpired:
		return nil, domainerrors.ErrContractExpired
	}
	if !contract.Status.CanTransition(entity.ContractSigned) {
		return nil, domainerrors.ErrContractNotSignable
	}

	signature, err := decodeSignature(input.Signature)
	if err != nil {
		return nil, domainerrors.ErrSignatureRequired.WithDetails(err.Error())
	}

	if srv.tokens.Enabled() {
		if err := srv.tokens.VerifyToken(input.Token, contract.ID); err != nil {
			return nil, errors.Wrap(domainerrors.ErrInvalidSigningToken, err.Error())
		}
	}

	original, err := srv.storage.Load(ctx, contract.StorageProvider, contract.StorageKey())
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrContractStorageFailed, err.Error())
	}

	signerName := strings.TrimSpace(input.SignerName)
	if signerName == "" {
		signerName = contract.ClientName
	}

	signed, err := srv.renderer.StampSignature(original, &service.SignatureStamp{
		Image:      signature,
		SignerName: signerName,
		SignedAt:   now,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignatureImage) {
			return nil, domainerrors.ErrSignatureRequired
		}

		return nil, errors.Wrap(err, "failed to stamp signature")
	}

	stored, err := srv.storage.Store(ctx, contract.SignedStorageKey(), signed, pdfContentType)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrContractStorageFailed, err.Error())
	}

	contract.Status = entity.ContractSigned
	contract.SignedAt = &now
	contract.SignedPDFURL = stored.URL
	contract.SignedStorageProvider = stored.Provider
	if err := srv.contractRepo.UpdateContract(ctx, contract); err != nil {
		return nil, errors.Wrap(err, "failed to update contract")
	}

	if msg, err := signedContractEmail(contract.ClientEmail, contract.ClientName, signed); err != nil {
		srv.log(ctx).Warn("Failed to build signed contract email", slog.Any("error", err))
	} else if _, err := srv.mailer.SendEmail(ctx, msg); err != nil {
		srv.log(ctx).Warn("Failed to send signed contract email",
			slog.String("contract_id", contract.ID),
			slog.Any("error", err),
		)
	}

	srv.events.publish(ctx, srv.log(ctx), service.EventContractSigned, contract.ClientID, map[string]string{
		"contract_id":    contract.ID,
		"signed_pdf_url": contract.SignedPDFURL,
	})

	return &usecase.SignContractOutput{
		SignedPDFURL: contract.SignedPDFURL,
		Message:      "Contract signed successfully",
	}, nil
}

// GetContract returns a contract with its status as observed now.
func (srv *contractService) GetContract(ctx context.Context, id string) (*entity.Contract, error) {
	contract, err := srv.findContract(ctx, id)
	if err != nil {
		return nil, err
	}

	contract.Status = contract.EffectiveStatus(srv.now())

	return contract, nil
}

// GetLatestContract returns the newest contract of a client.
func (srv *contractService) GetLatestContract(ctx context.Context, clientID string) (*entity.Contract, error) {
	contract, err := srv.contractRepo.FindLatestContractByClient(ctx, clientID)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest contract")
	}

	contract.Status = contract.EffectiveStatus(srv.now())

	return contract, nil
}

// GetContractDocument reads a contract PDF back from the storage that accepted it.
func (srv *contractService) GetContractDocument(ctx context.Context, fileName string) ([]byte, error) {
	id, ok := strings.CutSuffix(fileName, ".pdf")
	if !ok || id == "" {
		return nil, domainerrors.ErrContractDocumentNotFound
	}
	id, signed := strings.CutSuffix(id, "_signed")

	contract, err := srv.findContract(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrContractNotFound) {
			return nil, domainerrors.ErrContractDocumentNotFound
		}

		return nil, err
	}

	provider, key := contract.StorageProvider, contract.StorageKey()
	if signed {
		provider, key = contract.SignedStorageProvider, contract.SignedStorageKey()
	}
	if provider == "" {
		return nil, domainerrors.ErrContractDocumentNotFound
	}

	data, err := srv.storage.Load(ctx, provider, key)
	if err != nil {
		if errors.Is(err, service.ErrObjectNotFound) {
			return nil, domainerrors.ErrContractDocumentNotFound
		}

		return nil, errors.Wrap(domainerrors.ErrContractStorageFailed, err.Error())
	}

	return data, nil
}

// GetSigningQRCode renders a fresh signing link of the contract as a QR code.
func (srv *contractService) GetSigningQRCode(ctx context.Context, id string) ([]byte, error) {
	contract, err := srv.findContract(ctx, id)
	if err != nil {
		return nil, err
	}

	signingURL, err := srv.signingURL(contract, srv.now().UTC())
	if err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GeneratePNG(signingURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate signing qr code")
	}

	return png, nil
}

func (srv *contractService) findClient(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrClientNotFound
		}

		return nil, errors.Wrap(err, "failed to find client")
	}
	if user.Client == nil {
		return nil, domainerrors.ErrClientNotFound
	}

	return user, nil
}

func (srv *contractService) findContract(ctx context.Context, id string) (*entity.Contract, error) {
	contract, err := srv.contractRepo.FindContractByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrContractNotFound) {
			return nil, domainerrors.ErrContractNotFound
		}

		return nil, errors.Wrap(err, "failed to find contract")
	}

	return contract, nil
}

// signingURL builds the public signing link, with a token when signing links are protected.
// The token never outlives the contract.
func (srv *contractService) signingURL(contract *entity.Contract, now time.Time) (string, error) {
	link := fmt.Sprintf("%s/contracts/%s/sign", srv.publicBaseURL, contract.ID)
	if !srv.tokens.Enabled() {
		return link, nil
	}

	expiresAt := now.Add(srv.tokenTTL)
	if contract.ExpiresAt != nil && contract.ExpiresAt.Before(expiresAt) {
		expiresAt = *contract.ExpiresAt
	}

	token, err := srv.tokens.IssueToken(contract.ID, expiresAt)
	if err != nil {
		return "", errors.Wrap(err, "failed to issue signing token")
	}

	return link + "?token=" + url.QueryEscape(token), nil
}

func (srv *contractService) contractDocument(client *entity.User, contract *entity.Contract, signingURL string) *service.ContractDocument {
	doc := &service.ContractDocument{
		ContractID:  contract.ID,
		ClientName:  client.FullName,
		ClientEmail: client.Email,
		ClientPhone: client.PhoneNumber,
		Address:     client.Client.Address,
		IssuedAt:    contract.CreatedAt,
		StartDate:   contract.CreatedAt,
		EndDate:     contract.CreatedAt.AddDate(1, 0, 0),
		SigningURL:  signingURL,
	}
	if !client.Client.MemberSince.IsZero() {
		memberSince := client.Client.MemberSince
		doc.MemberSince = &memberSince
	}

	return doc
}

// render fills the template and falls back to the built-in layout when the template is unusable.
func (srv *contractService) render(ctx context.Context, doc *service.ContractDocument) ([]byte, error) {
	qr, err := srv.qrcode.GeneratePNG(doc.SigningURL)
	if err != nil {
		srv.log(ctx).Warn("Contract rendered without signing QR code", slog.Any("error", err))
	} else {
		doc.SigningQR = qr
	}

	pdf, err := srv.renderer.RenderFromTemplate(doc)
	if err == nil {
		return pdf, nil
	}

	srv.log(ctx).Warn("Contract template unavailable, rendering from scratch", slog.Any("error", err))

	pdf, err = srv.renderer.RenderFromScratch(doc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render contract")
	}

	return pdf, nil
}

func (srv *contractService) sendContract(ctx context.Context, client *entity.User, signingURL string, pdf []byte) error {
	msg, err := contractEmail(client.Email, contractMailData{ClientName: client.FullName, SigningURL: signingURL}, pdf)
	if err != nil {
		return err
	}

	result, err := srv.mailer.SendEmail(ctx, msg)
	if err != nil {
		return err
	}

	srv.log(ctx).Info("Contract email sent",
		slog.String("provider", result.Provider),
		slog.String("message_id", result.MessageID),
	)

	return nil
}

// decodeSignature extracts the PNG bytes of a data URL. A bare base64 payload is accepted too.
func decodeSignature(dataURL string) ([]byte, error) {
	payload := strings.TrimSpace(dataURL)
	if payload == "" {
		return nil, errors.New("signature is empty")
	}

	if strings.HasPrefix(payload, "data:") {
		if !strings.HasPrefix(payload, pngDataURLPrefix) {
			return nil, errors.New("signature must be a PNG data URL")
		}
		payload = strings.TrimPrefix(payload, pngDataURLPrefix)
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(err, "signature is not valid base64")
	}
	if len(data) == 0 {
		return nil, errors.New("signature is empty")
	}

	return data, nil
}
