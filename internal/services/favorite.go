package services

import (
	"wandermap/internal/db"
	"wandermap/internal/models"
)

// ToggleFavorite flips membership of the (post, user) pair and reports
// whether the pair exists after the call.
func ToggleFavorite(postID, userID uint) (bool, error) {
	var existing models.Favorite
	err := db.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&existing).Error
	if err == nil {
		if err := db.DB.Delete(&existing).Error; err != nil {
			return true, err
		}
		logger.Info().Uint("post_id", postID).Uint("user_id", userID).Msg("favorite removed")
		return false, nil
	}

	favorite := models.Favorite{
		PostID: postID,
		UserID: userID,
	}
	if err := db.DB.Create(&favorite).Error; err != nil {
		return false, err
	}
	logger.Info().Uint("post_id", postID).Uint("user_id", userID).Msg("favorite added")
	return true, nil
}

// FavoriteUserIDs returns the ids of every user who favorited a post,
// used by the detail page to render per-viewer favorite state.
func FavoriteUserIDs(postID uint) []uint {
	var userIDs []uint
	db.DB.Model(&models.Favorite{}).Where("post_id = ?", postID).Pluck("user_id", &userIDs)
	return userIDs
}

// FavoriteCount returns how many users favorited a post.
func FavoriteCount(postID uint) int64 {
	var count int64
	db.DB.Model(&models.Favorite{}).Where("post_id = ?", postID).Count(&count)
	return count
}

// IsFavorited checks whether a user has favorited a post.
func IsFavorited(postID, userID uint) bool {
	var favorite models.Favorite
	err := db.DB.Where("post_id = ? AND user_id = ?", postID, userID).First(&favorite).Error
	return err == nil
}
