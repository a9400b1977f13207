package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"mudanzasBack/internal/models"
	"mudanzasBack/internal/repositories"
	"mudanzasBack/utils"
)

const (
	accessTokenTTL  = 20 * time.Hour
	refreshTokenTTL = 24 * 30 * 2 * time.Hour
)

type UserService struct {
	UserRepo     *repositories.UserRepository
	TokenManager *utils.Manager
	SigningKey   string
}

func (s *UserService) SignUp(ctx context.Context, user models.User) (models.User, error) {
	existingUser1, err := s.UserRepo.GetUserByEmail(ctx, user.Email)
	if err != nil {
		return models.User{}, err
	}
	if existingUser1.Email != "" {
		return models.User{}, models.ErrDuplicateEmail
	}

	existingUser2, err := s.UserRepo.GetUserByPhone(ctx, user.Phone)
	if err != nil {
		return models.User{}, err
	}
	if existingUser2.Phone != "" {
		return models.User{}, models.ErrDuplicatePhone
	}

	switch user.Role {
	case models.RoleCustomer, models.RoleCompany:
	default:
		user.Role = models.RoleCustomer
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.User{}, err
	}
	user.Password = string(hashedPassword)

	created, err := s.UserRepo.CreateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	created.Password = ""
	return created, nil
}

func (s *UserService) SignIn(ctx context.Context, req models.SignInRequest) (models.Tokens, error) {
	var (
		user models.User
		err  error
	)
	if req.Phone != "" {
		user, err = s.UserRepo.GetUserByPhone(ctx, req.Phone)
	} else {
		user, err = s.UserRepo.GetUserByEmail(ctx, req.Email)
	}
	if err != nil {
		return models.Tokens{}, err
	}
	if user.ID == 0 {
		return models.Tokens{}, models.ErrUserNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Printf("Invalid password for user %d", user.ID)
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		UserID: uint(user.ID),
		Role:   user.Role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(accessTokenTTL).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	})

	accessToken, err := token.SignedString([]byte(s.SigningKey))
	if err != nil {
		return models.Tokens{}, err
	}

	return s.CreateSession(ctx, user, accessToken)
}

func (s *UserService) CreateSession(ctx context.Context, user models.User, accessToken string) (models.Tokens, error) {
	var (
		res models.Tokens
		err error
	)

	res.AccessToken = accessToken

	res.RefreshToken = uuid.New().String()
	if s.TokenManager != nil {
		res.RefreshToken, err = s.TokenManager.NewRefreshToken()
		if err != nil {
			return res, err
		}
	}

	session := models.Session{
		RefreshToken: res.RefreshToken,
		ExpiresAt:    time.Now().Add(refreshTokenTTL),
	}
	if err = s.UserRepo.SetSession(ctx, user.ID, session); err != nil {
		return res, err
	}
	return res, nil
}

func (s *UserService) GetUserByID(ctx context.Context, id int) (models.User, error) {
	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	user.Password = ""
	return user, nil
}

func (s *UserService) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	updated.Password = ""
	return updated, nil
}

// SetAvatar records the new avatar and returns the refreshed user.
func (s *UserService) SetAvatar(ctx context.Context, userID int, path string) (models.User, error) {
	if err := s.UserRepo.UpdateAvatarPath(ctx, userID, path); err != nil {
		return models.User{}, err
	}
	return s.GetUserByID(ctx, userID)
}

func (s *UserService) UpdatePassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.UserRepo.GetUserByID(ctx, userID)
	if err != nil {
		return err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)); err != nil {
		return models.ErrInvalidPassword
	}
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.UserRepo.UpdatePasswordHash(ctx, userID, string(hashedPassword))
}

func (s *UserService) DeleteUser(ctx context.Context, id int) error {
	return s.UserRepo.DeleteUser(ctx, id)
}

func (s *UserService) UserLogOut(ctx context.Context, userID int) error {
	if userID == 0 {
		return errors.New("missing user id")
	}
	return s.UserRepo.UserLogOut(ctx, userID)
}
