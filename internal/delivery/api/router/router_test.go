package router_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"fitsaga/config"
	"fitsaga/internal/delivery/api"
	"fitsaga/internal/delivery/api/middleware"
	"fitsaga/internal/delivery/api/router"
	"fitsaga/internal/delivery/api/router/handler"
	"fitsaga/internal/domain/entity"
	domainerrors "fitsaga/internal/domain/errors"
	"fitsaga/internal/domain/repository"
	"fitsaga/internal/domain/service"
	"fitsaga/internal/infra/storage"
	mockRepo "fitsaga/internal/mocks/repository"
	mockSvc "fitsaga/internal/mocks/service"
	mockUC "fitsaga/internal/mocks/usecase"
	"fitsaga/internal/usecase"
	"fitsaga/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/fileblob"
)

const (
	adminToken      = "admin-token"
	instructorToken = "instructor-token"
	cronSecret      = "s3cret"
)

type routerFixtures struct {
	e          *echo.Echo
	identity   *mockSvc.MockIdentityProvider
	userUC     *mockUC.MockUserUsecase
	clientUC   *mockUC.MockClientUsecase
	sessionUC  *mockUC.MockSessionUsecase
	tutorialUC *mockUC.MockTutorialUsecase
	mediaUC    *mockUC.MockMediaUsecase
	contractUC *mockUC.MockContractUsecase
	creditUC   *mockUC.MockCreditUsecase
}

func createTestRouter(t *testing.T, secret string, overrides ...func(*router.RouterParams)) *routerFixtures {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{}
	cfg.Cron.Secret = secret
	cfg.HTTP.MaxRequestBodySize = "1M"

	f := &routerFixtures{
		identity:   mockSvc.NewMockIdentityProvider(t),
		userUC:     mockUC.NewMockUserUsecase(t),
		clientUC:   mockUC.NewMockClientUsecase(t),
		sessionUC:  mockUC.NewMockSessionUsecase(t),
		tutorialUC: mockUC.NewMockTutorialUsecase(t),
		mediaUC:    mockUC.NewMockMediaUsecase(t),
		contractUC: mockUC.NewMockContractUsecase(t),
		creditUC:   mockUC.NewMockCreditUsecase(t),
	}

	f.identity.EXPECT().VerifyIDToken(mock.Anything, adminToken).
		Return(&service.Identity{UID: "admin-1", Role: entity.RoleAdmin}, nil).Maybe()
	f.identity.EXPECT().VerifyIDToken(mock.Anything, instructorToken).
		Return(&service.Identity{UID: "inst-1", Role: entity.RoleInstructor}, nil).Maybe()
	f.identity.EXPECT().VerifyIDToken(mock.Anything, "bogus").
		Return(nil, service.ErrInvalidIDToken).Maybe()

	params := router.RouterParams{
		UserHandler:       handler.NewUserHandler(handler.UserHandlerParams{UserUC: f.userUC, Logger: logger}),
		ClientHandler:     handler.NewClientHandler(handler.ClientHandlerParams{ClientUC: f.clientUC, Logger: logger}),
		InstructorHandler: handler.NewInstructorHandler(handler.InstructorHandlerParams{InstructorUC: mockUC.NewMockInstructorUsecase(t), Logger: logger}),
		PlanHandler:       handler.NewPlanHandler(handler.PlanHandlerParams{PlanUC: mockUC.NewMockPlanUsecase(t), Logger: logger}),
		SessionHandler:    handler.NewSessionHandler(handler.SessionHandlerParams{SessionUC: f.sessionUC, Logger: logger}),
		TutorialHandler:   handler.NewTutorialHandler(handler.TutorialHandlerParams{TutorialUC: f.tutorialUC, Logger: logger}),
		ContractHandler:   handler.NewContractHandler(handler.ContractHandlerParams{ContractUC: f.contractUC, Logger: logger}),
		MediaHandler:      handler.NewMediaHandler(handler.MediaHandlerParams{MediaUC: f.mediaUC, Logger: logger}),
		CronHandler:       handler.NewCronHandler(handler.CronHandlerParams{CreditUC: f.creditUC, Logger: logger}),
		AuthMiddleware: middleware.NewAuthMiddleware(middleware.AuthMiddlewareParams{
			Identity: f.identity,
			Config:   cfg,
			Logger:   logger,
		}),
	}

	for _, override := range overrides {
		override(&params)
	}

	f.e = api.NewEcho(cfg, logger)
	router.NewRouter(params).RegisterRoutes(f.e)

	return f
}

func (f *routerFixtures) do(method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body struct {
		Error map[string]any `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error
}

func TestRouter_Health(t *testing.T) {
	f := createTestRouter(t, cronSecret)

	rec := f.do(http.MethodGet, "/health", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestRouter_AdminRoutes(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		wantCode int
		wantErr  string
	}{
		{name: "missing token", token: "", wantCode: http.StatusUnauthorized, wantErr: "MISSING_TOKEN"},
		{name: "invalid token", token: "bogus", wantCode: http.StatusUnauthorized, wantErr: "INVALID_TOKEN"},
		{name: "wrong role", token: instructorToken, wantCode: http.StatusForbidden, wantErr: "FORBIDDEN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestRouter(t, cronSecret)

			rec := f.do(http.MethodGet, "/api/users", tt.token, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantErr, decodeError(t, rec)["code"])
		})
	}

	t.Run("admin", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)
		f.userUC.EXPECT().ListUsers(mock.Anything, usecase.ListUsersInput{Role: entity.RoleClient, Page: 2, Limit: 5}).
			Return(&usecase.ListUsersOutput{
				Users:      []*entity.User{{ID: "u1", Email: "a@fitsaga.com", Role: entity.RoleClient}},
				Pagination: usecase.Pagination{Total: 6, Page: 2, Limit: 5, Pages: 2},
			}, nil)

		rec := f.do(http.MethodGet, "/api/users?role=client&page=2&limit=5", adminToken, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"pagination":{"total":6,"page":2,"limit":5,"pages":2}`)
		assert.Contains(t, rec.Body.String(), `"id":"u1"`)
	})
}

func TestRouter_CronSecret(t *testing.T) {
	t.Run("wrong secret", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)

		rec := f.do(http.MethodPost, "/api/cron/reset-credits", "nope", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("empty configured secret rejects everything", func(t *testing.T) {
		f := createTestRouter(t, "")

		rec := f.do(http.MethodPost, "/api/cron/reset-credits", "anything", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid secret", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)
		f.creditUC.EXPECT().ResetCredits(mock.Anything).Return(&usecase.CreditResetOutput{
			Success:   true,
			Message:   "Credits reset for 4 clients",
			Processed: 4,
			Skipped:   1,
		}, nil)

		rec := f.do(http.MethodPost, "/api/cron/reset-credits", cronSecret, "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"processed":4`)
		assert.Contains(t, rec.Body.String(), `"skipped":1`)
	})
}

func TestRouter_UnknownAPIPathIsNotFound(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		token  string
	}{
		{name: "anonymous", method: http.MethodGet, target: "/api/nope", token: ""},
		{name: "admin", method: http.MethodGet, target: "/api/nope", token: adminToken},
		{name: "under a public prefix", method: http.MethodGet, target: "/api/videos/unknown", token: ""},
		{name: "unknown method path", method: http.MethodPost, target: "/api/health-check", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestRouter(t, cronSecret)

			rec := f.do(tt.method, tt.target, tt.token, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
		})
	}

	t.Run("admin prefix still authenticates", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)

		rec := f.do(http.MethodGet, "/api/users", "", "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRouter_LocallyStoredContractIsFetchable(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	ctx := context.Background()

	bucket, err := fileblob.OpenBucket(t.TempDir(), &fileblob.Options{Metadata: fileblob.MetadataDontWrite})
	require.NoError(t, err)
	t.Cleanup(func() { _ = bucket.Close() })

	local := storage.NewBucketProvider(storage.ProviderLocal, bucket, func(key string) string {
		return "https://portal.fitsaga.test/" + key
	})
	objects := storage.NewRankedStorage(logger, local)

	contract := &entity.Contract{ID: "k1", ClientID: "c1", Status: entity.ContractPendingSignature}
	pdf := []byte("%PDF-1.4 membership")
	stored, err := objects.Store(ctx, contract.StorageKey(), pdf, "application/pdf")
	require.NoError(t, err)
	contract.StorageProvider = stored.Provider
	contract.PDFURL = stored.URL

	contractRepo := mockRepo.NewMockContractRepository(t)
	contractRepo.EXPECT().FindContractByID(mock.Anything, "k1").Return(contract, nil)
	contractRepo.EXPECT().FindContractByID(mock.Anything, "missing").Return(nil, repository.ErrContractNotFound)

	contractUC := impl.NewContractService(impl.ContractServiceParams{
		Config: &config.Config{Contracts: &config.ContractsConfig{
			PublicBaseURL: "https://portal.fitsaga.test",
			Validity:      24 * time.Hour,
		}},
		Logger:       logger,
		UserRepo:     mockRepo.NewMockUserRepository(t),
		ContractRepo: contractRepo,
		Renderer:     mockSvc.NewMockContractRenderer(t),
		Storage:      objects,
		Mailer:       mockSvc.NewMockMailer(t),
		QRCode:       mockSvc.NewMockQRCodeService(t),
		Tokens:       mockSvc.NewMockSigningTokenService(t),
		Publisher:    mockSvc.NewMockEventPublisher(t),
	})

	f := createTestRouter(t, cronSecret, func(params *router.RouterParams) {
		params.ContractHandler = handler.NewContractHandler(handler.ContractHandlerParams{ContractUC: contractUC, Logger: logger})
	})

	link, err := url.Parse(stored.URL)
	require.NoError(t, err)
	require.Equal(t, "/contracts/k1.pdf", link.Path)

	rec := f.do(http.MethodGet, link.Path, "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pdf, rec.Body.Bytes())

	t.Run("signed copy not stored yet", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/contracts/k1_signed.pdf", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown contract", func(t *testing.T) {
		rec := f.do(http.MethodGet, "/contracts/missing.pdf", "", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestRouter_VideoProxy(t *testing.T) {
	t.Run("serves the video with ranges", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)
		f.mediaUC.EXPECT().ProxyVideo(mock.Anything, "10011090_2023_cw003.mp4").Return(&usecase.Video{
			Data:        []byte("0123456789"),
			ContentType: "video/mp4",
			Container:   "sagafitvideos",
			Path:        "10011090/día 1/2023_cw003.mp4",
		}, nil).Twice()

		rec := f.do(http.MethodGet, "/api/videos/proxy?videoId=10011090_2023_cw003.mp4", "", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "video/mp4", rec.Header().Get(echo.HeaderContentType))
		assert.Equal(t, "0123456789", rec.Body.String())

		req := httptest.NewRequest(http.MethodGet, "/api/videos/proxy?videoId=10011090_2023_cw003.mp4", nil)
		req.Header.Set("Range", "bytes=2-4")
		rec = httptest.NewRecorder()
		f.e.ServeHTTP(rec, req)

		require.Equal(t, http.StatusPartialContent, rec.Code)
		assert.Equal(t, "234", rec.Body.String())
	})

	t.Run("missing video id", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)

		rec := f.do(http.MethodGet, "/api/videos/proxy", "", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found lists the search", func(t *testing.T) {
		f := createTestRouter(t, cronSecret)
		f.mediaUC.EXPECT().ProxyVideo(mock.Anything, "x.mp4").Return(nil, domainerrors.WithPayload(domainerrors.ErrVideoNotFound, map[string]any{
			"videoId":         "x.mp4",
			"triedContainers": []string{"videos"},
			"triedPaths":      []string{"x.mp4", "videos/x.mp4"},
		}))

		rec := f.do(http.MethodGet, "/api/videos/proxy?videoId=x.mp4", "", "")

		require.Equal(t, http.StatusNotFound, rec.Code)
		errBody := decodeError(t, rec)
		assert.Equal(t, "VIDEO_NOT_FOUND", errBody["code"])
		assert.Equal(t, map[string]any{
			"videoId":         "x.mp4",
			"triedContainers": []any{"videos"},
			"triedPaths":      []any{"x.mp4", "videos/x.mp4"},
		}, errBody["details"])
	})
}

func TestRouter_ThumbnailPlaceholderIsNotCached(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	f.mediaUC.EXPECT().ResolveThumbnail(mock.Anything, "123/día 1/x.jpg").
		Return(&usecase.Thumbnail{Data: []byte("png"), ContentType: "image/png"})

	rec := f.do(http.MethodGet, "/api/videos/thumbnail/123/d%C3%ADa%201/x.jpg", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
}

func TestRouter_ThumbnailIsPublic(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	f.mediaUC.EXPECT().ResolveThumbnail(mock.Anything, "123/x.jpg").
		Return(&usecase.Thumbnail{Data: []byte("jpeg"), ContentType: "image/jpeg", Found: true})

	rec := f.do(http.MethodGet, "/api/videos/thumbnail/123/x.jpg", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/jpeg", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, "public, max-age=86400", rec.Header().Get("Cache-Control"))
	assert.Equal(t, "jpeg", rec.Body.String())
}

func TestRouter_TutorialsUseCaller(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	actor := usecase.Actor{ID: "inst-1", Role: entity.RoleInstructor}
	f.tutorialUC.EXPECT().ListTutorials(mock.Anything, actor, "").Return([]*entity.Tutorial{{
		ID:       "t1",
		Title:    "Legs",
		AuthorID: "inst-1",
		Days: []entity.TutorialDay{{DayNumber: 1, Exercises: []entity.Exercise{
			{Name: "Squat", Sets: 3, Repetitions: 10, RestTimeBetweenSets: 30, RestTimeAfterExercise: 60},
		}}},
	}}, nil)

	rec := f.do(http.MethodGet, "/api/tutorials", instructorToken, "")

	require.Equal(t, http.StatusOK, rec.Code)
	// 3 * (10*3 + 30) + 60
	assert.Contains(t, rec.Body.String(), `"totalDuration":240`)
}

func TestRouter_SessionDeletionRequiresAdmin(t *testing.T) {
	f := createTestRouter(t, cronSecret)

	rec := f.do(http.MethodDelete, "/api/sessions", instructorToken, `{"sessionIds":["s1"]}`)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRouter_ConflictCarriesBlockingIDs(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	f.clientUC.EXPECT().BatchDeleteClients(mock.Anything, []string{"c1", "c2"}).
		Return(domainerrors.NewConflictWithIDs(domainerrors.ErrClientsHaveBookings, "clientsWithBookings", []string{"c2"}))

	rec := f.do(http.MethodDelete, "/api/clients", adminToken, `{"clientIds":["c1","c2"]}`)

	require.Equal(t, http.StatusConflict, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "CLIENTS_HAVE_BOOKINGS", errBody["code"])
	assert.Equal(t, map[string]any{"clientsWithBookings": []any{"c2"}}, errBody["details"])
}

func TestRouter_AccessChangeRecordsCaller(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	f.clientUC.EXPECT().ChangeAccess(mock.Anything, "c1", usecase.ChangeAccessInput{
		Status:    entity.AccessSuspended,
		Reason:    "unpaid",
		ChangedBy: "admin-1",
	}).Return(&usecase.AccessChangeOutput{PreviousStatus: entity.AccessActive, NewStatus: entity.AccessSuspended}, nil)

	rec := f.do(http.MethodPatch, "/api/clients/c1/access", adminToken, `{"status":"suspended","reason":"unpaid"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"previousStatus":"active","newStatus":"suspended"`)
}

func TestRouter_UnhandledErrorIsGeneric(t *testing.T) {
	f := createTestRouter(t, cronSecret)
	f.sessionUC.EXPECT().ListSessions(mock.Anything, mock.Anything).Return(nil, assert.AnError)

	rec := f.do(http.MethodGet, "/api/sessions", adminToken, "")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	errBody := decodeError(t, rec)
	assert.Equal(t, "INTERNAL_ERROR", errBody["code"])
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}
