package api_models

type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UnknownCategoryID matches branches that carry no category at all.
const UnknownCategoryID = "-1"

// Categories is the fixed set the map view offers. Ids are not contiguous;
// retired categories keep their gaps.
var Categories = []Category{
	{ID: "1", Name: "Restaurant"},
	{ID: "2", Name: "Retail Stores"},
	{ID: "3", Name: "Fitness"},
	{ID: "4", Name: "Mosque"},
	{ID: "6", Name: "Healthcare Facilities"},
	{ID: "7", Name: "Clubs"},
}

func CategoryName(id string) string {
	for _, c := range Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return "Category " + id
}
