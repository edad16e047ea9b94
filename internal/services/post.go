package services

import (
	"wandermap/internal/db"
	"wandermap/internal/models"

	"gorm.io/gorm"
)

// DeletePost removes a post and its favorites in one transaction.
func DeletePost(postID uint) error {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", postID).Delete(&models.Favorite{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Post{}, postID).Error
	})
	if err != nil {
		return err
	}
	logger.Info().Uint("post_id", postID).Msg("post deleted")
	return nil
}
