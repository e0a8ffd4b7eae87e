package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/agenda-scheduler/internal/domain/identity"
	"github.com/BruksfildServices01/agenda-scheduler/internal/httperr"
	"github.com/BruksfildServices01/agenda-scheduler/internal/models"
	"github.com/BruksfildServices01/agenda-scheduler/internal/pagination"
)

type UserGormRepository struct {
	db *gorm.DB
}

func NewUserGormRepository(db *gorm.DB) *UserGormRepository {
	return &UserGormRepository{db: db}
}

func (r *UserGormRepository) GetUser(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).First(&u, id).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) CreateUser(
	ctx context.Context,
	u *models.User,
) error {

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	err := r.db.WithContext(ctx).Create(u).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrValidation("email_already_registered")
	}
	return err
}

func (r *UserGormRepository) FindByEmail(
	ctx context.Context,
	email string,
) (*models.User, error) {

	var u models.User
	if err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&u).Error; err != nil {
		return nil, notFound(err, "user_not_found")
	}
	return &u, nil
}

func (r *UserGormRepository) UpdateUser(
	ctx context.Context,
	u *models.User,
) error {

	u.Email = strings.ToLower(strings.TrimSpace(u.Email))

	res := r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", u.ID).
		Updates(map[string]any{
			"name":          u.Name,
			"email":         u.Email,
			"phone":         u.Phone,
			"role":          u.Role,
			"password_hash": u.PasswordHash,
		})
	if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
		return httperr.ErrValidation("email_already_registered")
	}
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("user_not_found")
	}
	return nil
}

// DeleteUser é lógico (deleted_at); o índice único segura o e-mail.
func (r *UserGormRepository) DeleteUser(
	ctx context.Context,
	id uint,
) error {

	res := r.db.WithContext(ctx).Delete(&models.User{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound("user_not_found")
	}
	return nil
}

func (r *UserGormRepository) ListUsers(
	ctx context.Context,
	role *identity.Role,
	page pagination.Page,
) ([]models.User, int64, error) {

	q := r.db.WithContext(ctx).Model(&models.User{})
	if role != nil {
		q = q.Where("role = ?", string(*role))
	}

	users := []models.User{}
	total, err := paginate(q, page, "name ASC, id ASC", &users)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

var _ identity.Users = (*UserGormRepository)(nil)
