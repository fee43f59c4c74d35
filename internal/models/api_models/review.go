package api_models

type ReviewUser struct {
	ID   FlexID `json:"id"`
	Name string `json:"name"`
}

type Review struct {
	ID        FlexID      `json:"id"`
	BranchID  FlexID      `json:"branchId"`
	Rating    int         `json:"rating"`
	Comment   string      `json:"comment"`
	CreatedAt string      `json:"createdAt"`
	User      *ReviewUser `json:"user,omitempty"`
}
