package conversation

// Section names one of the collapsible detail panels on a record.
type Section string

const (
	SectionJudge    Section = "judge"
	SectionMetrics  Section = "metrics"
	SectionAnalysis Section = "analysis"
)

// Sections lists the panels in display order.
var Sections = []Section{SectionJudge, SectionMetrics, SectionAnalysis}

type disclosureKey struct {
	recordID int64
	section  Section
}

// Disclosure tracks per-record, per-section visibility. Every key defaults
// to closed; the map stays sparse, absence means collapsed. Entries live
// for the whole session even when the record they belong to is old news.
type Disclosure struct {
	open map[disclosureKey]bool
}

// NewDisclosure returns an all-collapsed disclosure state.
func NewDisclosure() *Disclosure {
	return &Disclosure{open: make(map[disclosureKey]bool)}
}

// Toggle flips the visibility of one section on one record. A first toggle
// always reveals, since the default is collapsed. Sibling sections and
// other records are untouched.
func (d *Disclosure) Toggle(recordID int64, section Section) {
	k := disclosureKey{recordID, section}
	d.open[k] = !d.open[k]
}

// IsOpen reports whether a section is revealed. Unknown keys are closed.
func (d *Disclosure) IsOpen(recordID int64, section Section) bool {
	return d.open[disclosureKey{recordID, section}]
}
