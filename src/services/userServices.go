package services

import (
	"errors"
	"time"

	"github.com/CellBank/CellBank-Backend/src/dtos"
	"github.com/CellBank/CellBank-Backend/src/middleware"
	"github.com/CellBank/CellBank-Backend/src/models"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

// NewUserService creates a new instance of UserService
func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

// GetUsers retrieves one page of users matching the search term
func (s *UserService) GetUsers(search string, page, pageSize int) (*dtos.UserListDTO, error) {
	query := s.db.Model(&models.UserModel{})
	if search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var users []models.UserModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&users).Error
	if err != nil {
		return nil, err
	}

	return &dtos.UserListDTO{Users: users, Total: int(total), Page: page, PageSize: pageSize}, nil
}

// GetUserByID retrieves a single user record by its ID
func (s *UserService) GetUserByID(id int) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}
	return &user, nil
}

// CreateUser creates a new user with a bcrypt-hashed password
func (s *UserService) CreateUser(dto *dtos.CreateUserDTO) (*models.UserModel, error) {
	if dto.Email == "" || dto.Name == "" || dto.Password == "" {
		return nil, errors.New("邮箱、姓名和密码为必填项")
	}

	var existing models.UserModel
	if err := s.db.Where("email = ?", dto.Email).First(&existing).Error; err == nil {
		return nil, errors.New("该邮箱已被注册")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := dto.Role
	if role == "" {
		role = "viewer"
	}

	user := models.UserModel{
		Email:    dto.Email,
		Name:     dto.Name,
		Password: string(hashedPassword),
		Role:     role,
	}
	if err := s.db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateUser updates a user; the email uniqueness is re-checked and a new
// password, when given, is re-hashed.
func (s *UserService) UpdateUser(id int, dto *dtos.UpdateUserDTO) (*models.UserModel, error) {
	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("用户不存在")
		}
		return nil, err
	}

	if dto.Email != "" && dto.Email != user.Email {
		var other models.UserModel
		if err := s.db.Where("email = ?", dto.Email).First(&other).Error; err == nil {
			return nil, errors.New("该邮箱已被其他用户使用")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = dto.Email
	}
	if dto.Name != "" {
		user.Name = dto.Name
	}
	if dto.Role != "" {
		user.Role = dto.Role
	}
	if dto.Password != "" {
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashedPassword)
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser deletes a user record by ID; users cannot delete themselves
func (s *UserService) DeleteUser(id, currentUserId int) error {
	if id == currentUserId {
		return errors.New("不能删除当前登录用户")
	}

	var user models.UserModel
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("用户不存在")
		}
		return err
	}

	return s.db.Delete(&user).Error
}

// AuthenticateUser checks user credentials and returns a JWT token if valid
func (s *UserService) AuthenticateUser(email, password string) (string, *models.UserModel, error) {
	var user models.UserModel
	result := s.db.Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil, errors.New("邮箱或密码错误")
		}
		return "", nil, result.Error
	}

	// Compare the provided password with the hashed password in the database
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("邮箱或密码错误")
	}

	claims := jwt.MapClaims{
		"id":   user.Id,
		"role": user.Role,
		"exp":  time.Now().Add(time.Hour * 12).Unix(), // Token expires in 12 hours
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(middleware.GetSecretKey()))
	if err != nil {
		return "", nil, err
	}

	return tokenString, &user, nil
}

// ChangePassword verifies the old password before storing a new hash
func (s *UserService) ChangePassword(userId int, oldPassword, newPassword string) error {
	if oldPassword == "" || newPassword == "" {
		return errors.New("请填写完整信息")
	}
	if len(newPassword) < 6 {
		return errors.New("新密码长度至少6位")
	}

	var user models.UserModel
	if err := s.db.First(&user, userId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("用户不存在")
		}
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return errors.New("旧密码错误")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.db.Model(&user).Update("password", string(hashedPassword)).Error
}
