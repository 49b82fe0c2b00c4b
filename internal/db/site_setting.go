package db

import "gorm.io/gorm"

// SiteSetting stores one admin-configurable key with a JSON-encoded value.
type SiteSetting struct {
	gorm.Model
	Key   string `gorm:"size:100;uniqueIndex;not null"`
	Value string `gorm:"type:text"`
}

// TableName keeps the table name explicit.
func (SiteSetting) TableName() string {
	return "site_settings"
}

const (
	// SettingKeyMaintenanceMode toggles the maintenance gate ("true"/"false").
	SettingKeyMaintenanceMode = "maintenance_mode"
	// SettingKeySiteName is the public site name.
	SettingKeySiteName = "site_name"
	// SettingKeyChatSystemPrompt overrides the assembled chat system prompt.
	SettingKeyChatSystemPrompt = "chat_system_prompt"
	// SettingKeyOpenAIAPIKey is the key used by the chat widget backend.
	SettingKeyOpenAIAPIKey = "openai_api_key"
)
