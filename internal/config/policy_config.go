package config

import (
	"errors"
	"github.com/spf13/viper"
)

// PolicyConfig holds product limits that are not correctness requirements.
type PolicyConfig struct {
	MaxProfileSkills          int `mapstructure:"max_profile_skills"`
	MaxJobSkills              int `mapstructure:"max_job_skills"`
	NotificationsListLimit    int `mapstructure:"notifications_list_limit"`
	RecommendedSkills         int `mapstructure:"recommended_skills"`
	NotificationRetentionDays int `mapstructure:"notification_retention_days"`
}

func (config *PolicyConfig) setDefaults(v *viper.Viper) {
	v.SetDefault("policy.max_profile_skills", 30)
	v.SetDefault("policy.max_job_skills", 0)
	v.SetDefault("policy.notifications_list_limit", 50)
	v.SetDefault("policy.recommended_skills", 5)
	v.SetDefault("policy.notification_retention_days", 90)
}

func (config *PolicyConfig) validate() error {
	var errs []error

	if config.MaxProfileSkills < 0 || config.MaxJobSkills < 0 {
		errs = append(errs, errors.New("skill caps must not be negative"))
	}
	if config.NotificationsListLimit <= 0 {
		errs = append(errs, errors.New("notifications_list_limit must be greater than zero"))
	}
	if config.RecommendedSkills <= 0 {
		errs = append(errs, errors.New("recommended_skills must be greater than zero"))
	}
	if config.NotificationRetentionDays < 0 {
		errs = append(errs, errors.New("notification_retention_days must not be negative"))
	}

	return errors.Join(errs...)
}

func (config *PolicyConfig) bindEnvironmentVariables(v *viper.Viper) error {
	return bindAll(v, map[string]string{
		"policy.max_profile_skills":          "MAX_PROFILE_SKILLS",
		"policy.notifications_list_limit":    "NOTIFICATIONS_LIST_LIMIT",
		"policy.notification_retention_days": "NOTIFICATION_RETENTION_DAYS",
	})
}
