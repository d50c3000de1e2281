package domain

// ProductionSummary aggregates production records over a trailing window.
type ProductionSummary struct {
	WindowDays          int     `json:"window_days"`
	RecordCount         int     `json:"record_count"`
	TotalGenerationKwh  float64 `json:"total_generation_kwh"`
	TotalConsumptionKwh float64 `json:"total_consumption_kwh"`
	TotalSavingsBRL     float64 `json:"total_savings_brl"`
	AvgDailyGeneration  float64 `json:"avg_daily_generation_kwh"`
	// EstimatedMonthlyBRL is a projection from the daily average and the
	// configured per-kWh price, not measured savings.
	EstimatedMonthlyBRL float64 `json:"estimated_monthly_brl"`
	// EfficiencyPercent floors consumption to 1 kWh when it is zero, so the
	// value is degenerate but finite with no consumption data.
	EfficiencyPercent float64 `json:"efficiency_percent"`
	// Records is the filtered window, most recent date first.
	Records []ProductionRecord `json:"records"`
}

// DashboardStats are the company-dashboard totals derived from the project
// and client sets. Consumers must refresh them after a pipeline transition.
type DashboardStats struct {
	TotalProjects  int                    `json:"total_projects"`
	ActiveProjects int                    `json:"active_projects"`
	ActiveClients  int                    `json:"active_clients"`
	TotalValueBRL  float64                `json:"total_value_brl"`
	StageCounts    map[PipelineStatus]int `json:"stage_counts"`
}
