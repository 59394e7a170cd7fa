package model

import "strings"

// Business access modes (type_of_business).
const (
	AccessPhysical = "physical"
	AccessOnline   = "online"
	AccessBoth     = "both"
)

// AccessModes lists the valid type_of_business values.
var AccessModes = []string{AccessPhysical, AccessOnline, AccessBoth}

// Categories is the fixed list the directory groups businesses under. The
// form presents exactly these options.
var Categories = []string{
	"Restaurant & Food",
	"Retail & Shopping",
	"Beauty & Barber",
	"Health & Wellness",
	"Professional Services",
	"Home & Repair Services",
	"Automotive",
	"Arts & Entertainment",
	"Technology",
	"Education & Training",
	"Nonprofit & Community",
	"Other",
}

// Columns is the exact, ordered header of the submissions sheet. Row mapping
// and the header bootstrap both depend on this order; do not reorder.
var Columns = []string{
	"business_name",
	"Category",
	"description",
	"products",
	"website",
	"phone",
	"email",
	"contact_first",
	"contact_last",
	"street",
	"street2",
	"city",
	"state",
	"zip_code",
	"tags",
	"African_American",
	"Women-American",
	"type_of_business",
	"is_usa_based",
	"Not_USA",
	"consent_marketing",
	"facebook",
	"instagram",
	"linkedin",
	"keywords",
	"has_multiple_locations",
	"additional_locations",
}

// BusinessIntakeRecord is one business-intake submission. A record lives only
// for the duration of its request; the appended sheet row is the sole durable
// copy. JSON names follow the sheet column contract.
type BusinessIntakeRecord struct {
	BusinessName string `json:"business_name" validate:"required"`
	Category     string `json:"Category" validate:"required,category"`
	Description  string `json:"description" validate:"required,max=500"`
	Products     string `json:"products" validate:"required,max=300"`
	Website      string `json:"website" validate:"required,url"`

	Phone        string `json:"phone" validate:"required,usphone"`
	Email        string `json:"email" validate:"required,email"`
	ContactFirst string `json:"contact_first" validate:"required"`
	ContactLast  string `json:"contact_last" validate:"required"`

	Street  string `json:"street" validate:"required"`
	Street2 string `json:"street2"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required,uszip"`

	// Tags is the raw comma-separated string as typed into the form. The
	// wire request carries the split list instead; it is re-joined onto this
	// field before validation.
	Tags string `json:"tags"`

	// Ownership flags; at least one must be set.
	AfricanAmerican bool `json:"African_American"`
	WomenOwned      bool `json:"Women-American"`

	TypeOfBusiness   string `json:"type_of_business" validate:"required,accessmode"`
	IsUSABased       bool   `json:"is_usa_based"`
	ConsentMarketing bool   `json:"consent_marketing" validate:"eq=true"`

	Facebook  string `json:"facebook" validate:"omitempty,url"`
	Instagram string `json:"instagram" validate:"omitempty,url"`
	LinkedIn  string `json:"linkedin" validate:"omitempty,url"`

	Keywords []string `json:"keywords" validate:"min=1,max=5,dive,required"`

	HasMultipleLocations bool                 `json:"has_multiple_locations"`
	AdditionalLocations  []AdditionalLocation `json:"additional_locations" validate:"max=5,dive"`
}

// AdditionalLocation is one extra storefront for multi-location businesses.
type AdditionalLocation struct {
	Street  string `json:"street" validate:"required"`
	Street2 string `json:"street2"`
	City    string `json:"city" validate:"required"`
	State   string `json:"state" validate:"required"`
	ZipCode string `json:"zip_code" validate:"required,uszip"`
	Phone   string `json:"phone" validate:"omitempty,usphone"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// Normalize trims keyword entries in place. Entries left empty by trimming
// are kept so validation can point at them.
func (r *BusinessIntakeRecord) Normalize() {
	for i, keyword := range r.Keywords {
		r.Keywords[i] = strings.TrimSpace(keyword)
	}
}

// ValidCategory reports whether category is one of the fixed options.
func ValidCategory(category string) bool {
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

// ValidAccessMode reports whether mode is a valid type_of_business value.
func ValidAccessMode(mode string) bool {
	for _, m := range AccessModes {
		if m == mode {
			return true
		}
	}
	return false
}
