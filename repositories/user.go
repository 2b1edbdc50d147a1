package repositories

import (
	"github.com/ideahub-simple/database"
	"github.com/ideahub-simple/models"
	"gorm.io/gorm"
)

// UserRepository handles database operations for users
type UserRepository struct{}

// NewUserRepository creates a new user repository instance
func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

// FindByID retrieves a user by its ID
func (r *UserRepository) FindByID(id string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "id = ?", id)
	return user, result.Error
}

// FindByEmail retrieves a user by email
func (r *UserRepository) FindByEmail(email string) (models.User, error) {
	var user models.User
	result := database.DB.First(&user, "email = ?", email)
	return user, result.Error
}

// Create inserts a new user into the database
func (r *UserRepository) Create(user models.User) (models.User, error) {
	result := database.DB.Create(&user)
	return user, result.Error
}

// ExistsByEmail checks whether a user with the given email exists
func (r *UserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := database.DB.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// CountExistingUsers counts on the given handle how many of the given user
// IDs exist.
func CountExistingUsers(db *gorm.DB, ids []string) (int64, error) {
	var count int64
	err := db.Model(&models.User{}).Where("id IN ?", ids).Count(&count).Error
	return count, err
}

// FindWithPagination retrieves users ordered by registration date
func (r *UserRepository) FindWithPagination(page, limit int) ([]models.User, int64, error) {
	var users []models.User
	var totalCount int64

	db := database.DB.Model(&models.User{})
	if err := db.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (page - 1) * limit
	if err := db.Order("created_at desc").Limit(limit).Offset(offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}

	return users, totalCount, nil
}

// DB returns the database instance
func (r *UserRepository) DB() *gorm.DB {
	return database.DB
}
