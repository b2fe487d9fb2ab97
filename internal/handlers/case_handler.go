package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	apierrors "github.com/omize10/probatepath-sub002/internal/errors"
	"github.com/omize10/probatepath-sub002/internal/forms"
	"github.com/omize10/probatepath-sub002/internal/middleware"
	"github.com/omize10/probatepath-sub002/internal/models"
	"github.com/omize10/probatepath-sub002/internal/services"
)

// CaseHandler handles estate case HTTP requests.
type CaseHandler struct {
	service services.CaseService
}

// NewCaseHandler creates a new CaseHandler instance.
func NewCaseHandler(service services.CaseService) *CaseHandler {
	return &CaseHandler{
		service: service,
	}
}

// CreateCaseRequest is the intake payload for a new case. Relationship and
// asset-kind strings are free text; they are classified into tiers and asset
// categories here, once, so everything downstream works on the closed enums.
type CreateCaseRequest struct {
	Registry              string                   `json:"registry" binding:"required"`
	PathType              string                   `json:"pathType" binding:"required,oneof=probate administration"`
	Deceased              DeceasedRequest          `json:"deceased" binding:"required"`
	Applicants            []ApplicantRequest       `json:"applicants" binding:"omitempty,dive"`
	DraftApplicantName    string                   `json:"draftApplicantName"`
	Family                models.FamilyDeclaration `json:"family"`
	Assets                []AssetRequest           `json:"assets" binding:"omitempty,dive"`
	HasWill               bool                     `json:"hasWill"`
	WillHasAlterations    bool                     `json:"willHasAlterations"`
	CodicilCount          int                      `json:"codicilCount" binding:"min=0"`
	HasMinorBeneficiaries bool                     `json:"hasMinorBeneficiaries"`
}

// DeceasedRequest identifies the person whose estate is administered.
type DeceasedRequest struct {
	FullName            string         `json:"fullName" binding:"required"`
	Address             models.Address `json:"address"`
	DateOfBirth         time.Time      `json:"dateOfBirth"`
	DateOfDeath         time.Time      `json:"dateOfDeath" binding:"required"`
	DomiciledInProvince bool           `json:"domiciledInProvince"`
	DomicileCountry     string         `json:"domicileCountry"`
}

// ApplicantRequest is one applicant on the intake payload.
type ApplicantRequest struct {
	FullName     string         `json:"fullName" binding:"required"`
	Relationship string         `json:"relationship" binding:"required"`
	Address      models.Address `json:"address"`
	IsPrimary    bool           `json:"isPrimary"`
	IsRenouncing bool           `json:"isRenouncing"`
	IsMinor      bool           `json:"isMinor"`
}

// AssetRequest is one declared asset. Kind is the declarant's free-text
// description of what sort of property it is.
type AssetRequest struct {
	Description      string          `json:"description" binding:"required"`
	Kind             string          `json:"kind"`
	Location         string          `json:"location"`
	LegalDescription string          `json:"legalDescription"`
	Institution      string          `json:"institution"`
	Value            decimal.Decimal `json:"value"`
}

// CaseResponse wraps a case with its derived form requirements so a client
// can show filing status from a single fetch.
type CaseResponse struct {
	Case              *models.EstateCase `json:"case"`
	RequiredFormCodes []models.FormCode  `json:"requiredFormCodes"`
}

// DistributionResponse carries the heir list plus its share total.
type DistributionResponse struct {
	Heirs        []models.HeirEntry `json:"heirs"`
	TotalPercent string             `json:"totalPercent"`
	Confirmed    bool               `json:"confirmed"`
}

// FormsResponse lists the forms the case legally requires.
type FormsResponse struct {
	Forms []models.FormRequirement `json:"forms"`
}

// DocumentsResponse is the generated-document manifest.
type DocumentsResponse struct {
	Documents []models.GeneratedDocument `json:"documents"`
	Count     int                        `json:"count"`
}

// Create handles POST /api/v1/cases.
func (h *CaseHandler) Create(c *gin.Context) {
	var req CreateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			apierrors.ValidationError(c, validationErrors)
			return
		}
		apierrors.BadRequest(c, "Invalid request body", nil)
		return
	}

	estateCase := req.toModel()
	if err := h.service.CreateCase(c.Request.Context(), estateCase); err != nil {
		if errors.Is(err, services.ErrNoApplicant) || errors.Is(err, services.ErrPrimaryApplicant) {
			apierrors.BadRequest(c, err.Error(), nil)
			return
		}
		apierrors.InternalServerError(c, "Failed to create case", err)
		return
	}

	if log := middleware.GetLogger(c); log != nil {
		log.Info("Case intake accepted", map[string]interface{}{
			"case_id":   estateCase.ID.String(),
			"path_type": string(estateCase.PathType),
		})
	}

	c.JSON(http.StatusCreated, CaseResponse{
		Case:              estateCase,
		RequiredFormCodes: formCodes(forms.SelectForms(estateCase)),
	})
}

// Get handles GET /api/v1/cases/:id.
func (h *CaseHandler) Get(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	estateCase, err := h.service.GetCase(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, CaseResponse{
		Case:              estateCase,
		RequiredFormCodes: formCodes(forms.SelectForms(estateCase)),
	})
}

// ResolvePriority handles POST /api/v1/cases/:id/priority/resolve.
// A blocked or needs-input outcome is a successful resolution, not an error;
// the response carries the status and the actions required to clear it.
func (h *CaseHandler) ResolvePriority(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	res, err := h.service.ResolvePriority(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, res)
}

// GetDistribution handles GET /api/v1/cases/:id/distribution.
// The returned heir list is advisory until confirmed.
func (h *CaseHandler) GetDistribution(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	heirs, err := h.service.ComputeDistribution(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DistributionResponse{
		Heirs:        heirs,
		TotalPercent: models.ShareSum(heirs).StringFixed(2),
	})
}

// ConfirmDistribution handles POST /api/v1/cases/:id/distribution/confirm.
func (h *CaseHandler) ConfirmDistribution(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	heirs, err := h.service.ConfirmDistribution(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DistributionResponse{
		Heirs:        heirs,
		TotalPercent: models.ShareSum(heirs).StringFixed(2),
		Confirmed:    true,
	})
}

// RequiredForms handles GET /api/v1/cases/:id/forms.
func (h *CaseHandler) RequiredForms(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	reqs, err := h.service.RequiredForms(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, FormsResponse{Forms: reqs})
}

// GenerateDocuments handles POST /api/v1/cases/:id/documents.
// Generation is all-or-nothing across the required form set.
func (h *CaseHandler) GenerateDocuments(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	docs, err := h.service.GenerateDocuments(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, DocumentsResponse{
		Documents: docs,
		Count:     len(docs),
	})
}

// ListDocuments handles GET /api/v1/cases/:id/documents.
func (h *CaseHandler) ListDocuments(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	docs, err := h.service.ListDocuments(c.Request.Context(), id)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, DocumentsResponse{
		Documents: docs,
		Count:     len(docs),
	})
}

// GetDocument handles GET /api/v1/cases/:id/documents/:code.
// It streams the latest rendered PDF for the form.
func (h *CaseHandler) GetDocument(c *gin.Context) {
	id, ok := h.caseID(c)
	if !ok {
		return
	}

	code := models.FormCode(c.Param("code"))
	doc, err := h.service.GetDocument(c.Request.Context(), id, code)
	if err != nil {
		h.respondServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", code))
	c.Data(http.StatusOK, "application/pdf", doc.Content)
}

// caseID parses the :id path parameter, responding with 400 on a bad UUID.
func (h *CaseHandler) caseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		apierrors.BadRequest(c, "Invalid case ID", map[string]interface{}{
			"id": c.Param("id"),
		})
		return uuid.Nil, false
	}
	return id, true
}

// respondServiceError maps service-level errors onto the API's error
// responses. State conflicts (blocked priority, double confirmation) are 409;
// missing declared data is 422; everything unexpected is 500.
func (h *CaseHandler) respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCaseNotFound):
		apierrors.NotFound(c, "Case not found")
	case errors.Is(err, services.ErrDocumentNotFound):
		apierrors.NotFound(c, "Document not found")
	case errors.Is(err, services.ErrPriorityBlocked),
		errors.Is(err, services.ErrAlreadyConfirmed),
		errors.Is(err, services.ErrNotConfirmed):
		apierrors.Conflict(c, err.Error())
	case errors.Is(err, services.ErrPriorityUnresolved),
		errors.Is(err, services.ErrNeedsInput),
		errors.Is(err, forms.ErrMissingRequiredField):
		apierrors.UnprocessableEntity(c, err.Error())
	default:
		apierrors.InternalServerError(c, "Request failed", err)
	}
}

// toModel converts the intake payload to the case aggregate, classifying
// free-text relationships and asset kinds into their enums.
func (r *CreateCaseRequest) toModel() *models.EstateCase {
	applicants := make([]models.Person, 0, len(r.Applicants))
	for _, a := range r.Applicants {
		applicants = append(applicants, models.Person{
			FullName:     a.FullName,
			Address:      a.Address,
			Relationship: a.Relationship,
			Tier:         models.ParseRelationship(a.Relationship),
			IsApplicant:  true,
			IsPrimary:    a.IsPrimary,
			IsRenouncing: a.IsRenouncing,
			IsMinor:      a.IsMinor,
		})
	}

	assets := make([]models.AssetItem, 0, len(r.Assets))
	for _, a := range r.Assets {
		assets = append(assets, models.AssetItem{
			Description:      a.Description,
			Location:         a.Location,
			LegalDescription: a.LegalDescription,
			Institution:      a.Institution,
			Value:            a.Value,
			Category:         models.ParseAssetCategory(a.Kind),
		})
	}

	family := r.Family
	for i := range family.OtherRelatives {
		if family.OtherRelatives[i].Tier == models.TierUnknown {
			family.OtherRelatives[i].Tier = models.ParseRelationship(family.OtherRelatives[i].Relationship)
		}
	}

	return &models.EstateCase{
		Registry:              r.Registry,
		PathType:              models.PathType(r.PathType),
		Deceased: models.Deceased{
			FullName:            r.Deceased.FullName,
			Address:             r.Deceased.Address,
			DateOfBirth:         r.Deceased.DateOfBirth,
			DateOfDeath:         r.Deceased.DateOfDeath,
			DomiciledInProvince: r.Deceased.DomiciledInProvince,
			DomicileCountry:     r.Deceased.DomicileCountry,
		},
		Applicants:            applicants,
		Family:                family,
		Assets:                assets,
		DraftApplicantName:    r.DraftApplicantName,
		HasWill:               r.HasWill,
		WillHasAlterations:    r.WillHasAlterations,
		CodicilCount:          r.CodicilCount,
		HasMinorBeneficiaries: r.HasMinorBeneficiaries,
	}
}

// formCodes projects a requirement list down to its codes.
func formCodes(reqs []models.FormRequirement) []models.FormCode {
	codes := make([]models.FormCode, 0, len(reqs))
	for _, req := range reqs {
		codes = append(codes, req.Code)
	}
	return codes
}
