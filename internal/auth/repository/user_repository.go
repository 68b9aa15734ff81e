package repository

import (
	"errors"
	"time"

	authdomain "github.com/EasyEatsBodega/do-your-daily-journal/internal/auth/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// userRepository implements UserRepository interface
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new instance of userRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{
		db: db,
	}
}

func (r *userRepository) Create(user *authdomain.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	if user.CalendarID == "" {
		user.CalendarID = "primary"
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = time.Now()
	return r.db.Create(user).Error
}

func (r *userRepository) FindByID(id string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByGoogleID(googleUserID string) (*authdomain.User, error) {
	var user authdomain.User
	err := r.db.Where("google_user_id = ?", googleUserID).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindAllWithRefreshToken() ([]*authdomain.User, error) {
	var users []*authdomain.User
	err := r.db.Where("refresh_token <> ''").Find(&users).Error
	return users, err
}

func (r *userRepository) Update(user *authdomain.User) error {
	user.UpdatedAt = time.Now()
	return r.db.Save(user).Error
}

func (r *userRepository) UpdateTokens(userID, accessToken, refreshToken string, expiryMs int64) error {
	updates := map[string]interface{}{
		"access_token":    accessToken,
		"token_expiry_ms": expiryMs,
		"updated_at":      time.Now(),
	}
	// A refresh response without a refresh token must not wipe the
	// stored one.
	if refreshToken != "" {
		updates["refresh_token"] = refreshToken
	}
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).Updates(updates).Error
}

func (r *userRepository) SetLastReminderSent(userID, ymd string) error {
	return r.db.Model(&authdomain.User{}).Where("id = ?", userID).
		Updates(map[string]interface{}{
			"last_reminder_sent_ymd": ymd,
			"updated_at":             time.Now(),
		}).Error
}
