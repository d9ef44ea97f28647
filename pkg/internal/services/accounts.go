package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/eko/gocache/lib/v4/cache"
	"github.com/eko/gocache/lib/v4/marshaler"
	"github.com/eko/gocache/lib/v4/store"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	localCache "github.com/vinculo-social/vinculo/pkg/internal/cache"
	"github.com/vinculo-social/vinculo/pkg/internal/database"
	"github.com/vinculo-social/vinculo/pkg/internal/fault"
	"github.com/vinculo-social/vinculo/pkg/internal/models"
)

const bcryptCost = 10

func NewAccount(item models.Account, password string) (models.Account, error) {
	var count int64
	if err := database.C.Model(&models.Account{}).
		Where("email = ?", item.Email).
		Count(&count).Error; err != nil {
		return item, err
	} else if count > 0 {
		return item, fault.Conflict("El correo ya está registrado")
	}

	if err := database.C.Model(&models.Account{}).
		Where("username = ?", item.Username).
		Count(&count).Error; err != nil {
		return item, err
	} else if count > 0 {
		return item, fault.Conflict("El nombre de usuario ya está registrado")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return item, err
	}
	item.Password = string(hashed)

	if len(item.Role) == 0 {
		item.Role = models.RoleStandard
	}
	item.Active = true

	if err := database.C.Create(&item).Error; err != nil {
		return item, err
	}

	return item, nil
}

func GetAccount(id uuid.UUID) (models.Account, error) {
	var account models.Account
	if err := database.C.Where("id = ?", id).First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fault.NotFound("Usuario no encontrado")
		}
		return account, err
	}
	return account, nil
}

func GetAccountByLogin(usernameOrEmail string) (models.Account, error) {
	var account models.Account
	if err := database.C.
		Where("email = ? OR username = ?", usernameOrEmail, usernameOrEmail).
		First(&account).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account, fault.NotFound("Usuario no encontrado")
		}
		return account, err
	}
	return account, nil
}

func profileCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("account-profile#%s", id)
}

// GetMinimalProfile is the identity lookup used by every read path that
// annotates content with its author. Lookups are cached for a few minutes;
// profile updates invalidate by tag.
func GetMinimalProfile(id uuid.UUID) (models.MinimalProfile, error) {
	ctx := context.Background()
	marshal := marshaler.New(cache.New[any](localCache.S))

	if hit, err := marshal.Get(ctx, profileCacheKey(id), new(models.MinimalProfile)); err == nil {
		return *hit.(*models.MinimalProfile), nil
	}

	account, err := GetAccount(id)
	if err != nil {
		return models.MinimalProfile{}, err
	}

	profile := account.MinimalProfile()
	_ = marshal.Set(
		ctx,
		profileCacheKey(id),
		profile,
		store.WithExpiration(5*time.Minute),
		store.WithTags([]string{"account-profile", fmt.Sprintf("account#%s", id)}),
	)

	return profile, nil
}

func InvalidateProfileCache(id uuid.UUID) {
	ctx := context.Background()
	marshal := marshaler.New(cache.New[any](localCache.S))
	_ = marshal.Invalidate(ctx, store.WithInvalidateTags([]string{fmt.Sprintf("account#%s", id)}))
}

func IsActiveAdmin(id uuid.UUID) bool {
	account, err := GetAccount(id)
	if err != nil {
		return false
	}
	return account.Active && account.IsAdmin()
}

func SetAccountActive(id uuid.UUID, active bool) (models.Account, error) {
	account, err := GetAccount(id)
	if err != nil {
		return account, err
	}

	account.Active = active
	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	InvalidateProfileCache(account.ID)
	return account, nil
}

type ProfileChanges struct {
	FirstName   *string
	LastName    *string
	Email       *string
	Username    *string
	Description *string
	AvatarURL   *string
}

func UpdateProfile(id uuid.UUID, changes ProfileChanges) (models.Account, error) {
	account, err := GetAccount(id)
	if err != nil {
		return account, err
	}

	if changes.Email != nil && *changes.Email != account.Email {
		var count int64
		if err := database.C.Model(&models.Account{}).
			Where("email = ?", *changes.Email).
			Count(&count).Error; err != nil {
			return account, err
		} else if count > 0 {
			return account, fault.Conflict("El correo ya está registrado")
		}
		account.Email = *changes.Email
	}

	if changes.Username != nil && *changes.Username != account.Username {
		var count int64
		if err := database.C.Model(&models.Account{}).
			Where("username = ?", *changes.Username).
			Count(&count).Error; err != nil {
			return account, err
		} else if count > 0 {
			return account, fault.Conflict("El nombre de usuario ya está registrado")
		}
		account.Username = *changes.Username
	}

	if changes.FirstName != nil {
		account.FirstName = *changes.FirstName
	}
	if changes.LastName != nil {
		account.LastName = *changes.LastName
	}
	if changes.Description != nil {
		account.Description = *changes.Description
	}
	if changes.AvatarURL != nil {
		account.AvatarURL = changes.AvatarURL
	}

	if err := database.C.Save(&account).Error; err != nil {
		return account, err
	}

	InvalidateProfileCache(account.ID)
	return account, nil
}

type AccountFilter struct {
	Probe string
	Role  string
}

func ListAccounts(filter AccountFilter, take int, offset int) ([]models.Account, int64, error) {
	tx := database.C.Model(&models.Account{})

	if len(filter.Role) > 0 {
		tx = tx.Where("role = ?", filter.Role)
	}
	if len(filter.Probe) > 0 {
		probe := "%" + filter.Probe + "%"
		tx = tx.Where(
			"first_name ILIKE ? OR last_name ILIKE ? OR email ILIKE ? OR username ILIKE ?",
			probe, probe, probe, probe,
		)
	}

	var count int64
	if err := tx.Count(&count).Error; err != nil {
		return nil, count, err
	}

	var items []models.Account
	if err := tx.Limit(take).Offset(offset).Order("created_at DESC").Find(&items).Error; err != nil {
		return items, count, err
	}

	return items, count, nil
}
