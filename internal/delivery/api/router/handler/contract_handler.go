package handler

import (
	"log/slog"
	"net/http"

	"fitsaga/internal/delivery/api/response"
	"fitsaga/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContractHandlerParams holds dependencies for ContractHandler, injected by Fx.
type ContractHandlerParams struct {
	fx.In

	ContractUC usecase.ContractUsecase
	Logger     *slog.Logger
}

// ContractHandler serves contract generation and signing
type ContractHandler struct {
	contractUC usecase.ContractUsecase
	logger     *slog.Logger
}

// NewContractHandler is the constructor for ContractHandler
func NewContractHandler(params ContractHandlerParams) *ContractHandler {
	return &ContractHandler{
		contractUC: params.ContractUC,
		logger:     params.Logger,
	}
}

// GenerateContractRequest is the optional body of a contract generation
type GenerateContractRequest struct {
	SendEmail *bool `json:"sendEmail"`
}

// SignContractRequest carries the signature drawn on the signing page
type SignContractRequest struct {
	Signature  string `json:"signature" validate:"required"`
	SignerName string `json:"signerName"`
	Token      string `json:"token" query:"token"`
}

// GenerateContractResponse reports the generated contract
type GenerateContractResponse struct {
	Success     bool   `json:"success"`
	ContractID  string `json:"contractId"`
	ContractURL string `json:"contractUrl"`
	EmailSent   bool   `json:"emailSent"`
	EmailError  string `json:"emailError,omitempty"`
	Message     string `json:"message"`
}

// SignContractResponse reports the signed contract
type SignContractResponse struct {
	Success      bool   `json:"success"`
	SignedPDFURL string `json:"signedPdfUrl"`
	Message      string `json:"message"`
}

// GenerateContract handles POST /api/clients/:id/contract
func (h *ContractHandler) GenerateContract(c echo.Context) error {
	var req GenerateContractRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid contract input")
	}

	sendEmail := true
	if req.SendEmail != nil {
		sendEmail = *req.SendEmail
	}

	out, err := h.contractUC.GenerateContract(c.Request().Context(), usecase.GenerateContractInput{
		ClientID:  c.Param("id"),
		SendEmail: sendEmail,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, GenerateContractResponse{
		Success:     true,
		ContractID:  out.ContractID,
		ContractURL: out.ContractURL,
		EmailSent:   out.EmailSent,
		EmailError:  out.EmailError,
		Message:     out.Message,
	})
}

// SignContract handles POST /api/contracts/:id/sign
func (h *ContractHandler) SignContract(c echo.Context) error {
	var req SignContractRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signature input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "SIGNATURE_REQUIRED", err.Error())
	}

	out, err := h.contractUC.SignContract(c.Request().Context(), usecase.SignContractInput{
		ContractID: c.Param("id"),
		Signature:  req.Signature,
		SignerName: req.SignerName,
		Token:      req.Token,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, SignContractResponse{
		Success:      true,
		SignedPDFURL: out.SignedPDFURL,
		Message:      out.Message,
	})
}

// GetContract handles GET /api/contracts/:id
func (h *ContractHandler) GetContract(c echo.Context) error {
	contract, err := h.contractUC.GetContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContractResponse(contract))
}

// GetLatestContract handles GET /api/clients/:id/contracts/latest
func (h *ContractHandler) GetLatestContract(c echo.Context) error {
	contract, err := h.contractUC.GetLatestContract(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toContractResponse(contract))
}

// GetSigningQRCode handles GET /api/contracts/:id/qr
func (h *ContractHandler) GetSigningQRCode(c echo.Context) error {
	png, err := h.contractUC.GetSigningQRCode(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetContractDocument handles GET /contracts/:file, the public URL of contracts kept on local storage
func (h *ContractHandler) GetContractDocument(c echo.Context) error {
	pdf, err := h.contractUC.GetContractDocument(c.Request().Context(), c.Param("file"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set("Content-Disposition", `inline; filename="`+c.Param("file")+`"`)

	return c.Blob(http.StatusOK, "application/pdf", pdf)
}
