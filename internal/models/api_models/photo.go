package api_models

type Photo struct {
	ID       FlexID `json:"id"`
	BranchID FlexID `json:"branchId"`
	PhotoURL string `json:"photoUrl"`
}
