package models

import (
	"time"

	"github.com/google/uuid"
)

// FormCode identifies a court form in the filing package.
type FormCode string

const (
	// FormP2 is the Submission for Estate Grant.
	FormP2 FormCode = "P2"
	// FormP3 is the Affidavit of Applicant for Grant of Probate (short form).
	FormP3 FormCode = "P3"
	// FormP4 is the long-form applicant affidavit used when the will carries
	// alterations or interlineations.
	FormP4 FormCode = "P4"
	// FormP5 is the Affidavit of Applicant for Grant of Administration
	// (no will).
	FormP5 FormCode = "P5"
	// FormP9 is the Affidavit of Delivery.
	FormP9 FormCode = "P9"
	// FormP10 is the Affidavit of Assets and Liabilities for a deceased
	// domiciled in the province.
	FormP10 FormCode = "P10"
	// FormP11 is the non-domiciled variant of the asset affidavit, used for
	// resealing when the deceased was domiciled elsewhere.
	FormP11 FormCode = "P11"
)

// FormRequirement binds a form code to whether this case legally requires it.
type FormRequirement struct {
	Code     FormCode `json:"code"`
	Required bool     `json:"required"`
}

// GeneratedDocument is one rendered court form. Documents are immutable;
// regenerating a form produces a new document that supersedes the prior one.
type GeneratedDocument struct {
	ID          uuid.UUID `json:"id"`
	CaseID      uuid.UUID `json:"caseId"`
	FormCode    FormCode  `json:"formCode"`
	Content     []byte    `json:"-"`
	GeneratedAt time.Time `json:"generatedAt"`
}
