package models

// Features lists the switchable capabilities of a deployment.
type Features struct {
	Auth               bool `json:"auth"`
	Realtime           bool `json:"realtime"`
	EmailNotifications bool `json:"email_notifications"`
	ExportImport       bool `json:"export_import"`
}
