package services

import (
	"os"
	"testing"
	"wandermap/internal/db"
	"wandermap/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// testDB points the package at a disposable postgres database. Tests
// that need storage skip when TEST_DATABASE_URL is not set.
func testDB(t *testing.T) {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database-backed test")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}
	if err := gdb.AutoMigrate(&models.User{}, &models.Post{}, &models.Favorite{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	clean := func() {
		gdb.Exec("DELETE FROM favorites")
		gdb.Exec("DELETE FROM posts")
		gdb.Exec("DELETE FROM users")
	}
	clean()
	t.Cleanup(clean)

	db.DB = gdb
}

func mustSignup(t *testing.T, displayName, username, password, caption string) *models.User {
	t.Helper()
	user, err := Signup(displayName, username, password, caption, "")
	if err != nil {
		t.Fatalf("Signup(%s) failed: %v", username, err)
	}
	return user
}

func mustCreatePost(t *testing.T, owner *models.User, title string, lat, lng float64) *models.Post {
	t.Helper()
	post := models.Post{UserID: owner.ID, Title: title, Lat: lat, Lng: lng}
	if err := db.DB.Create(&post).Error; err != nil {
		t.Fatalf("Failed to create post %s: %v", title, err)
	}
	return &post
}

func TestSignupAndAuthenticate(t *testing.T) {
	testDB(t)

	alice := mustSignup(t, "Alice", "alice", "pw123", "hi")
	if alice.Password == "pw123" {
		t.Error("Stored password must never equal the plaintext")
	}

	user, ok := Authenticate("alice", "pw123")
	if !ok {
		t.Fatal("Expected authenticate to succeed with the correct password")
	}
	if user.ID != alice.ID {
		t.Errorf("Expected Alice's id %d, got %d", alice.ID, user.ID)
	}

	if _, ok := Authenticate("alice", "wrong"); ok {
		t.Error("Expected authenticate to fail with a wrong password")
	}
	if _, ok := Authenticate("nobody", "pw123"); ok {
		t.Error("Expected authenticate to fail for an unknown username")
	}
}

func TestSignupValidation(t *testing.T) {
	testDB(t)

	if _, err := Signup("", "alice", "pw123", "", ""); err != ErrMissingFields {
		t.Errorf("Expected ErrMissingFields for a blank display name, got %v", err)
	}
	if _, err := Signup("Alice", "alice", "", "", ""); err != ErrMissingFields {
		t.Errorf("Expected ErrMissingFields for a blank password, got %v", err)
	}

	mustSignup(t, "Alice", "alice", "pw123", "")
	if _, err := Signup("Other Alice", "alice", "pw456", "", ""); err == nil {
		t.Error("Expected a duplicate username to be rejected by the store")
	}
}

func TestFavoriteToggle(t *testing.T) {
	testDB(t)

	alice := mustSignup(t, "Alice", "alice", "pw123", "")
	bob := mustSignup(t, "Bob", "bob", "pw456", "")
	post := mustCreatePost(t, alice, "T", 1.0, 2.0)

	if ids := FavoriteUserIDs(post.ID); len(ids) != 0 {
		t.Fatalf("Expected no favoriting users on a fresh post, got %v", ids)
	}

	added, err := ToggleFavorite(post.ID, bob.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if !added {
		t.Error("Expected the first toggle to add the favorite")
	}
	if !IsFavorited(post.ID, bob.ID) {
		t.Error("Expected Bob to be favorited after one toggle")
	}
	ids := FavoriteUserIDs(post.ID)
	if len(ids) != 1 || ids[0] != bob.ID {
		t.Errorf("Expected favoriting users [%d], got %v", bob.ID, ids)
	}

	// Second toggle with the same pair restores the original state
	added, err = ToggleFavorite(post.ID, bob.ID)
	if err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if added {
		t.Error("Expected the second toggle to remove the favorite")
	}
	if IsFavorited(post.ID, bob.ID) {
		t.Error("Expected membership restored after two toggles")
	}
	if count := FavoriteCount(post.ID); count != 0 {
		t.Errorf("Expected favorite count 0, got %d", count)
	}
}

func TestDeletePostRemovesFavorites(t *testing.T) {
	testDB(t)

	alice := mustSignup(t, "Alice", "alice", "pw123", "")
	bob := mustSignup(t, "Bob", "bob", "pw456", "")
	post := mustCreatePost(t, alice, "T", 1.0, 2.0)

	if _, err := ToggleFavorite(post.ID, bob.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}

	if err := DeletePost(post.ID); err != nil {
		t.Fatalf("DeletePost failed: %v", err)
	}

	var postCount, favCount int64
	db.DB.Model(&models.Post{}).Where("id = ?", post.ID).Count(&postCount)
	db.DB.Model(&models.Favorite{}).Where("post_id = ?", post.ID).Count(&favCount)
	if postCount != 0 {
		t.Error("Expected the post to be gone")
	}
	if favCount != 0 {
		t.Error("Expected favorites of the deleted post to be gone")
	}
}

func TestDeleteAccountCascade(t *testing.T) {
	testDB(t)

	alice := mustSignup(t, "Alice", "alice", "pw123", "")
	bob := mustSignup(t, "Bob", "bob", "pw456", "")
	alicePost := mustCreatePost(t, alice, "Alice's spot", 1.0, 2.0)
	bobPost := mustCreatePost(t, bob, "Bob's spot", 3.0, 4.0)

	// Bob favorites Alice's post, Alice favorites Bob's
	if _, err := ToggleFavorite(alicePost.ID, bob.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}
	if _, err := ToggleFavorite(bobPost.ID, alice.ID); err != nil {
		t.Fatalf("ToggleFavorite failed: %v", err)
	}

	if err := DeleteAccount(alice.ID); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}

	var count int64
	db.DB.Model(&models.User{}).Where("id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Error("Expected Alice's account to be gone")
	}
	db.DB.Model(&models.Post{}).Where("user_id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Error("Expected Alice's posts to be gone")
	}
	db.DB.Model(&models.Favorite{}).Where("user_id = ?", alice.ID).Count(&count)
	if count != 0 {
		t.Error("Expected Alice's own favorites to be gone")
	}
	db.DB.Model(&models.Favorite{}).Where("post_id = ?", alicePost.ID).Count(&count)
	if count != 0 {
		t.Error("Expected favorites referencing Alice's posts to be gone")
	}

	// Bob and his post are untouched
	db.DB.Model(&models.Post{}).Where("id = ?", bobPost.ID).Count(&count)
	if count != 1 {
		t.Error("Expected Bob's post to survive")
	}
}

func TestUpdateProfile(t *testing.T) {
	testDB(t)

	alice := mustSignup(t, "Alice", "alice", "pw123", "hi")
	if err := UpdateProfile(alice, "alice2", "Alice B", "Oakland", "hello"); err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}

	var stored models.User
	if err := db.DB.First(&stored, alice.ID).Error; err != nil {
		t.Fatalf("Failed to reload user: %v", err)
	}
	if stored.Username != "alice2" || stored.DisplayName != "Alice B" || stored.Area != "Oakland" || stored.Caption != "hello" {
		t.Errorf("Profile fields not updated: %+v", stored)
	}
}
