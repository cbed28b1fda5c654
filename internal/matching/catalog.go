// Package matching is the protein-function matching game: pair each protein
// with the description of what it does.
package matching

// Protein is one catalog entry.
type Protein struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Role        string `json:"role"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

var catalog = []Protein{
	{ID: "1", Name: "Rubisco", Role: "Catalysis", Category: "Enzyme", Description: "Catalyzes the fixation of CO2 from the atmosphere during photosynthesis."},
	{ID: "2", Name: "Insulin", Role: "Hormone", Category: "Signaling", Description: "A hormone produced by the pancreas that regulates blood glucose levels."},
	{ID: "3", Name: "Immunoglobulin", Role: "Immunity", Category: "Antibody", Description: "Antibodies that identify and neutralize foreign objects like bacteria and viruses."},
	{ID: "4", Name: "Rhodopsin", Role: "Receptor", Category: "Sensory", Description: "A pigment in the photoreceptor cells of the retina responsible for vision in low light."},
	{ID: "5", Name: "Collagen", Role: "Structure", Category: "Fibrous", Description: "Provides tensile strength to skin, tendons, and ligaments. Forms a triple helix."},
	{ID: "6", Name: "Spider Silk", Role: "Structure", Category: "Fibrous", Description: "A fibrous protein spun by spiders, possessing high tensile strength and extensibility."},
	{ID: "7", Name: "Hemoglobin", Role: "Transport", Category: "Globular", Description: "Carries oxygen in red blood cells. Consists of 4 polypeptides and heme groups."},
	{ID: "8", Name: "Actin/Myosin", Role: "Movement", Category: "Contractile", Description: "Proteins responsible for muscle contraction."},
}

// Catalog returns the proteins in their canonical order.
func Catalog() []Protein {
	out := make([]Protein, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the protein with the given ID.
func Lookup(id string) (Protein, bool) {
	for _, p := range catalog {
		if p.ID == id {
			return p, true
		}
	}
	return Protein{}, false
}
