// internal/domain/catalog/facets.go
package catalog

import (
	"regexp"
	"strings"
)

// Facets are the boolean classifications filters and review pools key on.
// They are derived once from the product text when the record is built.
type Facets struct {
	Cat bool `json:"cat"`
	Dog bool `json:"dog"`

	Food        bool `json:"food"`
	Treats      bool `json:"treats"`
	Accessories bool `json:"accessories"`
	Supplies    bool `json:"supplies"`
	Toys        bool `json:"toys"`
	Supplements bool `json:"supplements"`

	Dry bool `json:"dry"`
	Wet bool `json:"wet"`

	// DentalName and TrainingName match the title or alt text
	DentalName   bool `json:"dentalName"`
	TrainingName bool `json:"trainingName"`
	// DentalType matches the category text
	DentalType bool `json:"dentalType"`
}

var (
	catPattern        = regexp.MustCompile(`(?i)(\bcat\b|kitten|feline)`)
	dogPattern        = regexp.MustCompile(`(?i)(\bdog\b|puppy|canine)`)
	foodPattern       = regexp.MustCompile(`(?i)\bfood\b`)
	treatPattern      = regexp.MustCompile(`(?i)treat`)
	accessoryPattern  = regexp.MustCompile(`(?i)accessor`)
	supplyPattern     = regexp.MustCompile(`(?i)suppl(y|ies)`)
	toyPattern        = regexp.MustCompile(`(?i)toy`)
	supplementPattern = regexp.MustCompile(`(?i)supplement`)
	dryPattern        = regexp.MustCompile(`(?i)\bdry\b`)
	wetPattern        = regexp.MustCompile(`(?i)\bwet\b`)
	dentalPattern     = regexp.MustCompile(`(?i)(dental|denta)`)
	trainPattern      = regexp.MustCompile(`(?i)train`)
)

// Classify derives facets from the category text and the title, alt,
// description and image reference of p.
func Classify(p Product) Facets {
	typeText := strings.ToLower(p.Category)
	name := strings.ToLower(p.Title + " " + p.Alt)
	hay := strings.ToLower(strings.Join([]string{p.Title, p.Alt, p.Category, p.Description, p.Image}, " "))

	return Facets{
		Cat:          catPattern.MatchString(hay),
		Dog:          dogPattern.MatchString(hay),
		Food:         foodPattern.MatchString(typeText),
		Treats:       treatPattern.MatchString(typeText),
		Accessories:  accessoryPattern.MatchString(typeText),
		Supplies:     supplyPattern.MatchString(typeText),
		Toys:         toyPattern.MatchString(typeText),
		Supplements:  supplementPattern.MatchString(typeText),
		Dry:          dryPattern.MatchString(hay),
		Wet:          wetPattern.MatchString(hay),
		DentalName:   dentalPattern.MatchString(name),
		TrainingName: trainPattern.MatchString(name),
		DentalType:   dentalPattern.MatchString(typeText),
	}
}
