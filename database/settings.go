package database

import (
	"errors"

	"lurker/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetUserSettings returns the stored settings for a user, or the defaults
// when no row exists yet. The row itself is only created on first save.
func GetUserSettings(userID uint) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := DB.
		Where(&models.UserSettings{UserID: userID}).
		First(&settings).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultSettings(userID), nil
		}
		return nil, err
	}
	return &settings, nil
}

func defaultSettings(userID uint) *models.UserSettings {
	titleLinks := true
	return &models.UserSettings{
		UserID:          userID,
		DefaultVolume:   models.DefaultVolume,
		DefaultSpeed:    models.DefaultSpeed,
		SidebarPosition: models.DefaultSidebarPosition,
		TitleLinks:      &titleLinks,
	}
}

// SaveUserSettings upserts a user's settings row. Unknown sidebar
// positions collapse to the default.
func SaveUserSettings(userID uint, settings *models.UserSettings) error {
	switch settings.SidebarPosition {
	case models.SidebarLeft, models.SidebarRight, models.SidebarOff:
	default:
		settings.SidebarPosition = models.DefaultSidebarPosition
	}

	settings.UserID = userID
	return DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			UpdateAll: true,
		}).
		Create(settings).
		Error
}

// GetUserBannedSubs returns the user's banned subreddit list without
// loading the rest of the settings row.
func GetUserBannedSubs(userID uint) ([]string, error) {
	settings, err := GetUserSettings(userID)
	if err != nil {
		return nil, err
	}
	return settings.Banned(), nil
}
