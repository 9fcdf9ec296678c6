package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/beauroweb/backend/internal/models"
	"github.com/beauroweb/backend/internal/registry/workflow"
)

var (
	ErrUserNotFound  = errors.New("user not found")
	ErrUsernameTaken = errors.New("username already taken")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type UserListRequest struct {
	Page    int    `form:"page"`
	Size    int    `form:"size"`
	Search  string `form:"search"`
	Role    string `form:"role"`
	Status  string `form:"status"`
	SortBy  string `form:"sortBy"`
	SortDir string `form:"sortDir"`
}

// Sortable columns exposed through the API.
var userSortColumns = map[string]string{
	"name":      "name",
	"username":  "username",
	"email":     "email",
	"role":      "role",
	"status":    "status",
	"createdAt": "created_at",
	"updatedAt": "updated_at",
	"lastLogin": "last_login",
}

func userOrderClause(sortBy, sortDir string) string {
	column, ok := userSortColumns[sortBy]
	if !ok {
		return "created_at DESC"
	}
	if strings.EqualFold(sortDir, "asc") {
		return column + " ASC"
	}
	return column + " DESC"
}

func (s *UserService) List(req *UserListRequest) (Page[models.User], error) {
	page, size := normalizePaging(req.Page, req.Size)

	var users []models.User
	var total int64

	query := s.db.Model(&models.User{})

	if req.Search != "" {
		like := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where(
			"LOWER(name) LIKE ? OR LOWER(username) LIKE ? OR LOWER(email) LIKE ?",
			like, like, like,
		)
	}
	if req.Role != "" {
		query = query.Where("role = ?", req.Role)
	}
	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}

	if err := query.Count(&total).Error; err != nil {
		return Page[models.User]{}, err
	}

	err := query.Order(userOrderClause(req.SortBy, req.SortDir)).
		Offset(page * size).Limit(size).Find(&users).Error
	if err != nil {
		return Page[models.User]{}, err
	}

	return NewPage(users, total, page, size), nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

type CreateUserRequest struct {
	FirstName       string `json:"firstName" binding:"required"`
	LastName        string `json:"lastName" binding:"required"`
	Username        string `json:"username" binding:"required"`
	Email           string `json:"email" binding:"required,email"`
	Password        string `json:"password" binding:"required,min=8"`
	Role            string `json:"role"`
	Phone           string `json:"phone"`
	Department      string `json:"department"`
	ProfileImageURL string `json:"profileImageUrl"`
}

func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	var count int64
	s.db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
	if count > 0 {
		return nil, ErrUsernameTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = "USER"
	}

	user := models.User{
		Name:            strings.TrimSpace(req.FirstName + " " + req.LastName),
		Username:        req.Username,
		Email:           req.Email,
		Password:        string(hash),
		Role:            role,
		Status:          "active",
		Phone:           req.Phone,
		Department:      req.Department,
		ProfileImageURL: req.ProfileImageURL,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

type UpdateUserRequest struct {
	Name            *string `json:"name"`
	Email           *string `json:"email"`
	Password        *string `json:"password"`
	Role            *string `json:"role"`
	Status          *string `json:"status"`
	Phone           *string `json:"phone"`
	Department      *string `json:"department"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

func (s *UserService) Update(id uint, req *UpdateUserRequest) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = *req.Name
	}
	if req.Email != nil {
		user.Email = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hash)
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = *req.Status
	}
	if req.Phone != nil {
		user.Phone = *req.Phone
	}
	if req.Department != nil {
		user.Department = *req.Department
	}
	if req.ProfileImageURL != nil {
		user.ProfileImageURL = *req.ProfileImageURL
	}

	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(id uint) error {
	result := s.db.Delete(&models.User{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (s *UserService) ToggleStatus(id uint) (*models.User, error) {
	user, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if user.Status == "active" {
		user.Status = "inactive"
	} else {
		user.Status = "active"
	}
	if err := s.db.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Lookup resolves a user into a workflow assignee reference.
func (s *UserService) Lookup(id uint) (workflow.AssignedUser, bool) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return workflow.AssignedUser{}, false
	}
	return workflow.AssignedUser{
		ID:       user.ID,
		Name:     user.Name,
		Username: user.Username,
		Email:    user.Email,
	}, true
}
