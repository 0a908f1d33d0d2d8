package domain

// ResolutionCounts tallies how many rows each cascade step settled.
type ResolutionCounts map[Resolution]int

// Summary provides high-level statistics of one reconciliation run.
type Summary struct {
	RunID                string           `json:"run_id"`
	TotalWarrantyRows    int              `json:"total_warranty_rows"`
	TotalPurchaseRows    int              `json:"total_purchase_rows"`
	ResolvedRows         int              `json:"resolved_rows"`
	UnresolvedRows       int              `json:"unresolved_rows"`
	ExhaustedAllocations int              `json:"exhausted_allocations"`
	IncompleteRows       int              `json:"incomplete_rows"`
	ResolutionSteps      ResolutionCounts `json:"resolution_steps"`
	RowsByCategory       map[string]int   `json:"rows_by_category"`
	RowsByBrand          map[string]int   `json:"rows_by_brand"`
	StoresFromMaster     int              `json:"stores_from_master"`
}

// ReconciliationReport is the top-level result of a reconciliation run.
type ReconciliationReport struct {
	Summary Summary       `json:"summary"`
	Headers []string      `json:"-"`
	Rows    []EnrichedRow `json:"rows"`
}
