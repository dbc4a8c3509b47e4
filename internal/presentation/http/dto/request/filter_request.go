package request

// FilterRequest holds the sidebar filters. Dates are YYYY-MM-DD; a date
// that does not parse leaves the range open. The selection lists repeat the
// parameter.
type FilterRequest struct {
	From       string   `form:"from"`
	To         string   `form:"to"`
	Categories []string `form:"category"`
	Products   []string `form:"product"`
	Clients    []string `form:"client"`
	Format     string   `form:"format" binding:"omitempty,oneof=json html"`
}

// OverviewRequest adds paging to the filters
type OverviewRequest struct {
	FilterRequest
	Page    int `form:"page"`
	PerPage int `form:"per_page"`
}

// PeriodRequest selects the bucket size of the period analysis
type PeriodRequest struct {
	FilterRequest
	Granularity string `form:"granularity,default=month"`
}

// TopProductsRequest selects how many products to rank
type TopProductsRequest struct {
	FilterRequest
	N int `form:"n,default=5" binding:"min=1,max=50"`
}

// DistributionRequest selects the grouping column
type DistributionRequest struct {
	FilterRequest
	By string `form:"by,default=categorie"`
}
