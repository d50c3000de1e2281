package domain

import (
	"time"
)

type PipelineStatus string

const (
	StatusLead         PipelineStatus = "lead"
	StatusProposal     PipelineStatus = "proposal"
	StatusNegotiation  PipelineStatus = "negotiation"
	StatusApproved     PipelineStatus = "approved"
	StatusInstallation PipelineStatus = "installation"
	StatusCompleted    PipelineStatus = "completed"
	StatusCancelled    PipelineStatus = "cancelled"
)

// PipelineOrder is the expected progression of a project. It drives board
// column ordering only; transitions are not restricted to forward moves.
var PipelineOrder = []PipelineStatus{
	StatusLead,
	StatusProposal,
	StatusNegotiation,
	StatusApproved,
	StatusInstallation,
	StatusCompleted,
}

func (s PipelineStatus) Valid() bool {
	switch s {
	case StatusLead, StatusProposal, StatusNegotiation, StatusApproved,
		StatusInstallation, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether the status ends the pipeline by convention.
// The engine does not forbid leaving a terminal status.
func (s PipelineStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// InverterModels is the fixed vendor set offered on the project form.
var InverterModels = []string{"Growatt", "Fronius", "GoodWe", "Solis", "Huawei"}

func ValidInverterModel(model string) bool {
	for _, m := range InverterModels {
		if m == model {
			return true
		}
	}
	return false
}

type Project struct {
	ID       string `json:"id" gorm:"primaryKey"`
	ClientID string `json:"client_id" gorm:"index"`
	// ClientName is a snapshot of the client's name taken at create/edit
	// time. It may drift from the Client record; there is no sync.
	ClientName     string         `json:"client_name"`
	Title          string         `json:"title"`
	Status         PipelineStatus `json:"status" gorm:"index"`
	PowerKwp       float64        `json:"power_kwp"`
	ProjectValue   float64        `json:"project_value"` // BRL
	PanelCount     int            `json:"panel_count"`
	InverterModel  string         `json:"inverter_model"`
	Address        string         `json:"address"`
	StartDate      *time.Time     `json:"start_date,omitempty"`
	CompletionDate *time.Time     `json:"completion_date,omitempty"`
	Notes          string         `json:"notes,omitempty"`
	CompanyID      string         `json:"company_id" gorm:"index"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
}

// BoardColumn is one pipeline stage with its projects in storage order.
type BoardColumn struct {
	Status   PipelineStatus `json:"status"`
	Projects []Project      `json:"projects"`
}
