package api_models

const (
	LevelAccessible          = "accessible"
	LevelPartiallyAccessible = "partially accessible"
	LevelNotAccessible       = "not accessible"
)

type Feature struct {
	ID          FlexID `json:"id"`
	FeatureName string `json:"featureName"`
}

type Place struct {
	Name       string     `json:"name"`
	Latitude   *FlexFloat `json:"latitude"`
	Longitude  *FlexFloat `json:"longitude"`
	CategoryID FlexID     `json:"categoryId"`
	Details    string     `json:"details"`
	Features   []Feature  `json:"features"`
}

// Branch is a physical location as the upstream delivers it, plus the fields
// the location store derives during enrichment (accessibility tier, opening
// hours, photos and the per-record advisory errors).
type Branch struct {
	ID        FlexID `json:"id"`
	Address   string `json:"address"`
	Place     *Place `json:"place"`
	CreatedAt string `json:"createdAt"`

	AccessibilityLevel string        `json:"accessibilityLevel,omitempty"`
	OpeningHours       []OpeningHour `json:"openingHours,omitempty"`
	HoursError         string        `json:"hoursError,omitempty"`
	Photos             []Photo       `json:"photos,omitempty"`
	PhotosError        string        `json:"photosError,omitempty"`
}

// ClassifyFeatures maps a feature count to an accessibility tier. The rule is
// fixed: zero features means not accessible, one or two partially, three or
// more fully accessible.
func ClassifyFeatures(count int) string {
	switch {
	case count == 0:
		return LevelNotAccessible
	case count <= 2:
		return LevelPartiallyAccessible
	default:
		return LevelAccessible
	}
}

func (b *Branch) FeatureCount() int {
	if b.Place == nil {
		return 0
	}
	return len(b.Place.Features)
}

// Classify recomputes the branch's accessibility tier from its feature count.
func (b *Branch) Classify() {
	b.AccessibilityLevel = ClassifyFeatures(b.FeatureCount())
}

func (b *Branch) Name() string {
	if b.Place != nil && b.Place.Name != "" {
		return b.Place.Name
	}
	return b.Address
}

// HasCoordinates reports whether both coordinates were present in the payload.
// Range validity is the marker manager's concern, not the model's.
func (b *Branch) HasCoordinates() bool {
	return b.Place != nil && b.Place.Latitude != nil && b.Place.Longitude != nil
}
