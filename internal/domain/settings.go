package domain

// Setting keys are stored in the settings table so every server instance
// reads the same value; none of them live in process memory.
const (
	SettingMaintenanceMode = "maintenance_mode"
)

type Setting struct {
	Key       string `json:"key"`
	Value     string `json:"value"`
	UpdatedBy *int32 `json:"updated_by,omitempty"`
}
