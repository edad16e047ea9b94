package services

import (
	"strings"
	"wandermap/internal/db"
	"wandermap/internal/models"

	"gorm.io/gorm"
)

// UpdateProfile applies the editable profile fields. Blank values keep
// the stored ones; a username change is still subject to the unique
// index.
func UpdateProfile(user *models.User, username, displayName, area, caption string) error {
	updates := make(map[string]interface{})

	username = strings.TrimSpace(username)
	if username != "" && username != user.Username {
		updates["username"] = username
	}
	if displayName = strings.TrimSpace(displayName); displayName != "" && displayName != user.DisplayName {
		updates["display_name"] = displayName
	}
	if area != user.Area {
		updates["area"] = area
	}
	if caption != user.Caption {
		updates["caption"] = caption
	}

	if len(updates) == 0 {
		return nil
	}
	return db.DB.Model(user).Updates(updates).Error
}

// DeleteAccount removes the user and everything hanging off it in one
// transaction: favorites on the user's posts, the user's own
// favorites, the posts, then the user row. The FK cascades would cover
// this on a fresh schema, the explicit cleanup keeps older databases
// consistent too.
func DeleteAccount(userID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		var postIDs []uint
		if err := tx.Model(&models.Post{}).Where("user_id = ?", userID).Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Favorite{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return err
	}
	logger.Info().Uint("user_id", userID).Msg("account deleted")
	return nil
}
