package models

import (
	"time"
)

// Pigment represents a catalog pigment (for internal use)
type Pigment struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Spectrum  []float64 `json:"spectrum"`
	CreatedAt time.Time `json:"created_at"`
}

// Portion is an amount of one pigment in a mix
type Portion struct {
	PigmentID  string  `json:"id" minLength:"1" required:"true" example:"titanium-white" doc:"Pigment ID"`
	Proportion float64 `json:"proportion" minimum:"0" required:"true" doc:"Relative amount of the pigment"`
}

// Mix represents a recorded pigment mix (for internal use)
type Mix struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Portions  []Portion  `json:"pigments"`
	Spectrum  []float64  `json:"spectrum"`
	RGB       [3]float64 `json:"rgb"`
	Hex       string     `json:"hex"`
	CreatedAt time.Time  `json:"created_at"`
}

// PigmentSummary is the short listing form of a pigment
type PigmentSummary struct {
	ID   string     `json:"id" doc:"Pigment ID"`
	Name string     `json:"name" doc:"Display name"`
	Hex  string     `json:"hex" doc:"Rendered color as six hex digits"`
	RGB  [3]float64 `json:"rgb" doc:"Compressed RGB channels in [0,1]"`
}

// ListPigmentsResponse returns the catalog
type ListPigmentsResponse struct {
	Body struct {
		Pigments []PigmentSummary `json:"pigments" doc:"Catalog pigments ordered by name"`
	}
}

// GetPigmentRequest names one pigment
type GetPigmentRequest struct {
	ID string `path:"id" doc:"Pigment ID"`
}

// PigmentDetailBody is a pigment with its reflectance curve
type PigmentDetailBody struct {
	PigmentSummary
	Wavelengths []float64 `json:"wavelengths" doc:"Grid wavelengths in nm"`
	Spectrum    []float64 `json:"spectrum" doc:"Reflectance at each grid wavelength"`
}

// GetPigmentResponse returns one pigment
type GetPigmentResponse struct {
	Body PigmentDetailBody
}

// CreateMixRequest asks for a pigment mix
type CreateMixRequest struct {
	Body struct {
		Pigments []Portion `json:"pigments" minItems:"1" maxItems:"20" required:"true" doc:"Pigments and their proportions"`
	}
}

// GetMixRecordRequest names a recorded mix
type GetMixRecordRequest struct {
	ID string `path:"id" doc:"Mix ID"`
}

// MixResponse returns a recorded mix
type MixResponse struct {
	Body *Mix `json:"-"`
}
