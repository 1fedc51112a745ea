package impl

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	mockRepo "fitsaga/internal/mocks/repository"
	mockSvc "fitsaga/internal/mocks/service"
	"fitsaga/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var contractTestNow = time.Date(2026, 4, 2, 15, 0, 0, 0, time.UTC)

type contractServiceFixtures struct {
	service      usecase.ContractUsecase
	userRepo     *mockRepo.MockUserRepository
	contractRepo *mockRepo.MockContractRepository
	renderer     *mockSvc.MockContractRenderer
	storage      *mockSvc.MockObjectStorage
	mailer       *mockSvc.MockMailer
	qrcode       *mockSvc.MockQRCodeService
	tokens       *mockSvc.MockSigningTokenService
	publisher    *mockSvc.MockEventPublisher
}

func createTestContractService(t *testing.T) contractServiceFixtures {
	fx := contractServiceFixtures{
		userRepo:     mockRepo.NewMockUserRepository(t),
		contractRepo: mockRepo.NewMockContractRepository(t),
		renderer:     mockSvc.NewMockContractRenderer(t),
		storage:      mockSvc.NewMockObjectStorage(t),
		mailer:       mockSvc.NewMockMailer(t),
		qrcode:       mockSvc.NewMockQRCodeService(t),
		tokens:       mockSvc.NewMockSigningTokenService(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	cfg := &config.Config{
		Contracts: &config.ContractsConfig{
			PublicBaseURL:   "https://portal.fitsaga.test",
			SigningTokenTTL: 72 * time.Hour,
			Validity:        30 * 24 * time.Hour,
		},
	}

	fx.service = NewContractService(ContractServiceParams{
		Config:       cfg,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		UserRepo:     fx.userRepo,
		ContractRepo: fx.contractRepo,
		Renderer:     fx.renderer,
		Storage:      fx.storage,
		Mailer:       fx.mailer,
		QRCode:       fx.qrcode,
		Tokens:       fx.tokens,
		Publisher:    fx.publisher,
	})
	fx.service.(*contractService).now = func() time.Time { return contractTestNow }

	return fx
}

func contractClient() *entity.User {
	return &entity.User{
		ID:       "c1",
		Email:    "lucia@example.com",
		FullName: "Lucía Pérez",
		Role:     entity.RoleClient,
		Client:   entity.NewClientProfile(contractTestNow.AddDate(-2, 0, 0)),
	}
}

func pendingContract() *entity.Contract {
	expires := contractTestNow.Add(24 * time.Hour)

	return &entity.Contract{
		ID:              "k1",
		ClientID:        "c1",
		ClientName:      "Lucía Pérez",
		ClientEmail:     "lucia@example.com",
		Status:          entity.ContractPendingSignature,
		CreatedAt:       contractTestNow.Add(-time.Hour),
		ExpiresAt:       &expires,
		StorageProvider: "firebase",
	}
}

var signatureDataURL = "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

func TestContractService_GenerateContract_FallbackRenderAndEmail(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(contractClient(), nil)
	fx.tokens.EXPECT().Enabled().Return(true)
	fx.tokens.EXPECT().IssueToken(mock.Anything, contractTestNow.Add(72*time.Hour)).Return("tok+en", nil)
	fx.qrcode.EXPECT().GeneratePNG(mock.Anything).Return([]byte("qr"), nil)
	fx.renderer.EXPECT().RenderFromTemplate(mock.Anything).Return(nil, errors.New("template missing"))
	fx.renderer.EXPECT().
		RenderFromScratch(mock.MatchedBy(func(doc *service.ContractDocument) bool {
			return doc.ClientName == "Lucía Pérez" && string(doc.SigningQR) == "qr" &&
				strings.HasSuffix(doc.SigningURL, "/sign?token=tok%2Ben")
		})).
		Return([]byte("%PDF"), nil)
	fx.contractRepo.EXPECT().
		CreateContract(ctx, mock.MatchedBy(func(c *entity.Contract) bool {
			return c.Status == entity.ContractPendingSignature && c.ExpiresAt.Equal(contractTestNow.Add(30*24*time.Hour))
		})).
		Return(nil)
	fx.storage.EXPECT().Store(ctx, mock.MatchedBy(func(key string) bool {
		return strings.HasPrefix(key, "contracts/") && strings.HasSuffix(key, ".pdf")
	}), []byte("%PDF"), "application/pdf").
		Return(&service.StoredObject{Provider: "firebase", URL: "https://storage.test/k.pdf"}, nil)
	fx.contractRepo.EXPECT().
		UpdateContract(ctx, mock.MatchedBy(func(c *entity.Contract) bool {
			return c.PDFURL == "https://storage.test/k.pdf" && c.StorageProvider == "firebase"
		})).
		Return(nil)
	fx.mailer.EXPECT().
		SendEmail(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
			return msg.To == "lucia@example.com" && msg.Subject == "Your FitSAGA Membership Contract" &&
				len(msg.Attachments) == 1 && msg.Attachments[0].Filename == "FitSAGA_Contract.pdf"
		})).
		Return(&service.DeliveryResult{Provider: "smtp", MessageID: "m1"}, nil)

	output, err := fx.service.GenerateContract(ctx, usecase.GenerateContractInput{ClientID: "c1", SendEmail: true})

	require.NoError(t, err)
	assert.NotEmpty(t, output.ContractID)
	assert.Equal(t, "https://storage.test/k.pdf", output.ContractURL)
	assert.True(t, output.EmailSent)
	assert.Equal(t, "Contract generated and email sent", output.Message)
}

func TestContractService_GenerateContract_EmailFailureStillSucceeds(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(contractClient(), nil)
	fx.tokens.EXPECT().Enabled().Return(false)
	fx.qrcode.EXPECT().GeneratePNG(mock.Anything).Return(nil, errors.New("too long"))
	fx.renderer.EXPECT().RenderFromTemplate(mock.Anything).Return([]byte("%PDF"), nil)
	fx.contractRepo.EXPECT().CreateContract(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().Store(ctx, mock.Anything, mock.Anything, mock.Anything).
		Return(&service.StoredObject{Provider: "local", URL: "https://portal.fitsaga.test/files/k.pdf"}, nil)
	fx.contractRepo.EXPECT().UpdateContract(ctx, mock.Anything).Return(nil)
	fx.mailer.EXPECT().SendEmail(ctx, mock.Anything).Return(nil, service.ErrMailExhausted)

	output, err := fx.service.GenerateContract(ctx, usecase.GenerateContractInput{ClientID: "c1", SendEmail: true})

	require.NoError(t, err)
	assert.False(t, output.EmailSent)
	assert.Equal(t, "Contract generated but email failed", output.Message)
	assert.Equal(t, "Failed to send email, but contract was generated successfully", output.EmailError)
}

func TestContractService_GenerateContract_StorageFailure(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "c1").Return(contractClient(), nil)
	fx.tokens.EXPECT().Enabled().Return(false)
	fx.qrcode.EXPECT().GeneratePNG(mock.Anything).Return([]byte("qr"), nil)
	fx.renderer.EXPECT().RenderFromTemplate(mock.Anything).Return([]byte("%PDF"), nil)
	fx.contractRepo.EXPECT().CreateContract(ctx, mock.Anything).Return(nil)
	fx.storage.EXPECT().Store(ctx, mock.Anything, mock.Anything, mock.Anything).Return(nil, service.ErrStorageExhausted)

	output, err := fx.service.GenerateContract(ctx, usecase.GenerateContractInput{ClientID: "c1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrContractStorageFailed))
}

func TestContractService_GenerateContract_UnknownClient(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindUserByID(ctx, "x").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GenerateContract(ctx, usecase.GenerateContractInput{ClientID: "x"})

	assert.True(t, errors.Is(err, domainerrors.ErrClientNotFound))
}

func TestContractService_SignContract_Success(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)
	fx.tokens.EXPECT().Enabled().Return(true)
	fx.tokens.EXPECT().VerifyToken("tok", "k1").Return(nil)
	fx.storage.EXPECT().Load(ctx, "firebase", "contracts/k1.pdf").Return([]byte("%PDF"), nil)
	fx.renderer.EXPECT().
		StampSignature([]byte("%PDF"), &service.SignatureStamp{
			Image:      []byte("png-bytes"),
			SignerName: "Lucía Pérez",
			SignedAt:   contractTestNow,
		}).
		Return([]byte("%PDF-signed"), nil)
	fx.storage.EXPECT().Store(ctx, "contracts/k1_signed.pdf", []byte("%PDF-signed"), "application/pdf").
		Return(&service.StoredObject{Provider: "gcs", URL: "https://storage.test/k1_signed.pdf"}, nil)
	fx.contractRepo.EXPECT().
		UpdateContract(ctx, mock.MatchedBy(func(c *entity.Contract) bool {
			return c.Status == entity.ContractSigned && c.SignedAt.Equal(contractTestNow) &&
				c.SignedStorageProvider == "gcs" && c.StorageProvider == "firebase"
		})).
		Return(nil)
	fx.mailer.EXPECT().
		SendEmail(ctx, mock.MatchedBy(func(msg *service.EmailMessage) bool {
			return msg.Subject == "Your Signed FitSAGA Membership Contract"
		})).
		Return(nil, errors.New("smtp down"))
	fx.publisher.EXPECT().
		PublishMemberEvent(ctx, mock.MatchedBy(func(e *service.MemberEvent) bool {
			return e.Type == service.EventContractSigned && e.UserID == "c1" && e.Data["contract_id"] == "k1"
		})).
		Return(nil)

	output, err := fx.service.SignContract(ctx, usecase.SignContractInput{
		ContractID: "k1",
		Signature:  signatureDataURL,
		Token:      "tok",
	})

	require.NoError(t, err)
	assert.Equal(t, "https://storage.test/k1_signed.pdf", output.SignedPDFURL)
	assert.Equal(t, "Contract signed successfully", output.Message)
}

func TestContractService_SignContract_AlreadySigned(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	contract := pendingContract()
	contract.Status = entity.ContractSigned
	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)

	_, err := fx.service.SignContract(ctx, usecase.SignContractInput{ContractID: "k1", Signature: signatureDataURL})

	assert.True(t, errors.Is(err, domainerrors.ErrContractAlreadySigned))
}

func TestContractService_SignContract_Expired(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	contract := pendingContract()
	past := contractTestNow.Add(-time.Minute)
	contract.ExpiresAt = &past
	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)

	_, err := fx.service.SignContract(ctx, usecase.SignContractInput{ContractID: "k1", Signature: signatureDataURL})

	assert.True(t, errors.Is(err, domainerrors.ErrContractExpired))
}

func TestContractService_SignContract_DraftNotSignable(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	contract := pendingContract()
	contract.Status = entity.ContractDraft
	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)

	_, err := fx.service.SignContract(ctx, usecase.SignContractInput{ContractID: "k1", Signature: signatureDataURL})

	assert.True(t, errors.Is(err, domainerrors.ErrContractNotSignable))
}

func TestContractService_SignContract_BadSignature(t *testing.T) {
	tests := []struct {
		name      string
		signature string
	}{
		{name: "empty", signature: ""},
		{name: "jpeg data url", signature: "data:image/jpeg;base64,AAAA"},
		{name: "not base64", signature: "data:image/png;base64,???"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestContractService(t)
			ctx := context.Background()

			fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)

			_, err := fx.service.SignContract(ctx, usecase.SignContractInput{ContractID: "k1", Signature: tt.signature})

			assert.True(t, errors.Is(err, domainerrors.ErrSignatureRequired))
		})
	}
}

func TestContractService_SignContract_InvalidToken(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)
	fx.tokens.EXPECT().Enabled().Return(true)
	fx.tokens.EXPECT().VerifyToken("forged", "k1").Return(service.ErrInvalidSigningToken)

	_, err := fx.service.SignContract(ctx, usecase.SignContractInput{ContractID: "k1", Signature: signatureDataURL, Token: "forged"})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidSigningToken))
}

func TestContractService_SignContract_UndecodablePNG(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)
	fx.tokens.EXPECT().Enabled().Return(false)
	fx.storage.EXPECT().Load(ctx, "firebase", "contracts/k1.pdf").Return([]byte("%PDF"), nil)
	fx.renderer.EXPECT().StampSignature(mock.Anything, mock.Anything).Return(nil, service.ErrInvalidSignatureImage)

	_, err := fx.service.SignContract(ctx, usecase.SignContractInput{
		ContractID: "k1",
		Signature:  signatureDataURL,
		SignerName: "Someone Else",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrSignatureRequired))
}

func TestContractService_GetContract_ReportsExpiry(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	contract := pendingContract()
	past := contractTestNow.Add(-time.Hour)
	contract.ExpiresAt = &past
	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)

	got, err := fx.service.GetContract(ctx, "k1")

	require.NoError(t, err)
	assert.Equal(t, entity.ContractExpired, got.Status)
}

func TestContractService_GetLatestContract_None(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	fx.contractRepo.EXPECT().FindLatestContractByClient(ctx, "c1").Return(nil, repository.ErrContractNotFound)

	_, err := fx.service.GetLatestContract(ctx, "c1")

	assert.True(t, errors.Is(err, domainerrors.ErrContractNotFound))
}

func TestContractService_GetSigningQRCode_TokenCappedByExpiry(t *testing.T) {
	fx := createTestContractService(t)
	ctx := context.Background()

	contract := pendingContract()
	fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)
	fx.tokens.EXPECT().Enabled().Return(true)
	fx.tokens.EXPECT().IssueToken("k1", *contract.ExpiresAt).Return("tok", nil)
	fx.qrcode.EXPECT().GeneratePNG("https://portal.fitsaga.test/contracts/k1/sign?token=tok").Return([]byte("qr"), nil)

	png, err := fx.service.GetSigningQRCode(ctx, "k1")

	require.NoError(t, err)
	assert.Equal(t, []byte("qr"), png)
}

func TestContractService_GetContractDocument(t *testing.T) {
	t.Run("signed copy from its own provider", func(t *testing.T) {
		fx := createTestContractService(t)
		ctx := context.Background()
		contract := pendingContract()
		contract.Status = entity.ContractSigned
		contract.SignedStorageProvider = "local"

		fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(contract, nil)
		fx.storage.EXPECT().Load(ctx, "local", "contracts/k1_signed.pdf").Return([]byte("%PDF signed"), nil)

		pdf, err := fx.service.GetContractDocument(ctx, "k1_signed.pdf")

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF signed"), pdf)
	})

	t.Run("unsigned copy", func(t *testing.T) {
		fx := createTestContractService(t)
		ctx := context.Background()

		fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)
		fx.storage.EXPECT().Load(ctx, "firebase", "contracts/k1.pdf").Return([]byte("%PDF"), nil)

		pdf, err := fx.service.GetContractDocument(ctx, "k1.pdf")

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF"), pdf)
	})

	t.Run("not a pdf name", func(t *testing.T) {
		fx := createTestContractService(t)

		_, err := fx.service.GetContractDocument(context.Background(), "k1.txt")

		assert.ErrorIs(t, err, domainerrors.ErrContractDocumentNotFound)
	})

	t.Run("signed copy missing", func(t *testing.T) {
		fx := createTestContractService(t)
		ctx := context.Background()

		fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)

		_, err := fx.service.GetContractDocument(ctx, "k1_signed.pdf")

		assert.ErrorIs(t, err, domainerrors.ErrContractDocumentNotFound)
	})

	t.Run("object gone from storage", func(t *testing.T) {
		fx := createTestContractService(t)
		ctx := context.Background()

		fx.contractRepo.EXPECT().FindContractByID(ctx, "k1").Return(pendingContract(), nil)
		fx.storage.EXPECT().Load(ctx, "firebase", "contracts/k1.pdf").
			Return(nil, errors.Wrap(service.ErrObjectNotFound, "firebase"))

		_, err := fx.service.GetContractDocument(ctx, "k1.pdf")

		assert.ErrorIs(t, err, domainerrors.ErrContractDocumentNotFound)
	})

	t.Run("unknown contract", func(t *testing.T) {
		fx := createTestContractService(t)
		ctx := context.Background()

		fx.contractRepo.EXPECT().FindContractByID(ctx, "nope").Return(nil, repository.ErrContractNotFound)

		_, err := fx.service.GetContractDocument(ctx, "nope.pdf")

		assert.ErrorIs(t, err, domainerrors.ErrContractDocumentNotFound)
	})
}
