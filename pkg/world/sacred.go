package world

// SacredPlace tracks the blessing status of one location.
// A nil RequiredItem means the place cannot be blessed at all.
type SacredPlace struct {
	Blessed      bool  `json:"blessed"`
	RequiredItem *Item `json:"required_item,omitempty"`
}

// NewSacredPlace returns an unblessed place that accepts the given item.
func NewSacredPlace(required Item) *SacredPlace {
	return &SacredPlace{RequiredItem: &required}
}

// Bless attempts the single Unblessed -> Blessed transition.
// It succeeds only when the candidate matches the required item and the
// place is not yet blessed; any failure leaves the state unchanged.
// Once blessed, a place never reverts.
func (sp *SacredPlace) Bless(candidate Item) bool {
	if sp.Blessed || sp.RequiredItem == nil || *sp.RequiredItem != candidate {
		return false
	}
	sp.Blessed = true
	return true
}
