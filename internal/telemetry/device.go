package telemetry

// DeviceStatus is the static description of the simulated scale.
type DeviceStatus struct {
	Online       bool    `json:"online"`
	Camera       string  `json:"camera"`
	LoadCell     string  `json:"load_cell"`
	ModelVersion string  `json:"model_version"`
	MinWeight    float64 `json:"min_weight"`   // kg
	MaxCapacity  float64 `json:"max_capacity"` // kg
	Accuracy     float64 `json:"accuracy"`     // ± kg
}

// DefaultDevice returns the device panel contents.
func DefaultDevice() DeviceStatus {
	return DeviceStatus{
		Online:       true,
		Camera:       "Active",
		LoadCell:     "Calibrated",
		ModelVersion: "v2.1.3",
		MinWeight:    0.05,
		MaxCapacity:  50.0,
		Accuracy:     0.01,
	}
}
