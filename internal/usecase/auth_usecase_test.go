package usecase

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/config"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/delivery/dto"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/domain/entity"
	"github.com/ccubenetvix-tech/Home-Bonzenga-Backend/internal/repository"
	pkgJwt "github.com/ccubenetvix-tech/Home-Bonzenga-Backend/pkg/jwt"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type authFixture struct {
	db         *gorm.DB
	redis      *redis.Client
	jwtService *pkgJwt.JWTService
	auth       AuthUsecase
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	for _, stmt := range testSchema {
		require.NoError(t, db.Exec(stmt).Error)
	}

	mr := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	jwtService := pkgJwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: time.Hour,
	})

	log := logrus.New()
	log.SetOutput(io.Discard)

	auth := NewAuthUsecase(db, log, repository.NewUserRepository(), repository.NewVendorRepository(), jwtService, redisClient)

	return &authFixture{
		db:         db,
		redis:      redisClient,
		jwtService: jwtService,
		auth:       auth,
	}
}

func (f *authFixture) createUser(t *testing.T, email, password string, roleID int, active bool) *entity.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		RoleID:    roleID,
		Email:     email,
		Password:  string(hashed),
		FirstName: "Test",
		LastName:  "User",
		IsActive:  active,
	}
	require.NoError(t, f.db.Create(user).Error)
	return user
}

func TestLogin(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "customer@example.com", "password123", entity.RoleIDCustomer, true)

	resp, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "customer@example.com", Password: "password123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.AccessToken)
	assert.NotEmpty(t, resp.RefreshToken)

	claims, err := f.jwtService.ValidateToken(resp.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, entity.RoleIDCustomer, claims.RoleID)
	assert.Equal(t, pkgJwt.AccessToken, claims.TokenType)

	// Both tokens are registered in redis for revocation checks
	keys, err := f.redis.Keys(ctx, fmt.Sprintf("access_token:%s:*", user.ID)).Result()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.createUser(t, "customer@example.com", "password123", entity.RoleIDCustomer, true)
	f.createUser(t, "disabled@example.com", "password123", entity.RoleIDCustomer, false)

	_, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "customer@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "nobody@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Deactivated accounts are indistinguishable from missing ones
	_, err = f.auth.Login(ctx, &dto.LoginRequest{Email: "disabled@example.com", Password: "password123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRefreshTokenRotation(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	f.createUser(t, "customer@example.com", "password123", entity.RoleIDCustomer, true)

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "customer@example.com", Password: "password123"})
	require.NoError(t, err)

	refreshed, err := f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)

	// The old refresh token was revoked by the rotation
	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, ErrTokenRevoked)

	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: "not-a-token"})
	assert.ErrorIs(t, err, ErrInvalidToken)

	// An access token cannot be used as a refresh token
	_, err = f.auth.RefreshToken(ctx, &dto.RefreshTokenRequest{RefreshToken: login.AccessToken})
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestLogoutRevokesTokens(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()
	user := f.createUser(t, "customer@example.com", "password123", entity.RoleIDCustomer, true)

	login, err := f.auth.Login(ctx, &dto.LoginRequest{Email: "customer@example.com", Password: "password123"})
	require.NoError(t, err)

	accessClaims, err := f.jwtService.ValidateToken(login.AccessToken)
	require.NoError(t, err)
	refreshClaims, err := f.jwtService.ValidateToken(login.RefreshToken)
	require.NoError(t, err)

	require.NoError(t, f.auth.Logout(ctx, accessClaims.TokenID, refreshClaims.TokenID))

	keys, err := f.redis.Keys(ctx, fmt.Sprintf("*:%s:*", user.ID)).Result()
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestRegisterVendor(t *testing.T) {
	f := newAuthFixture(t)

	resp, err := f.auth.RegisterVendor(context.Background(), &dto.RegisterVendorRequest{
		Email:     "owner@salon.cd",
		Password:  "password123",
		FirstName: "Grace",
		ShopName:  "Grace Beauty",
		City:      "Kinshasa",
	})
	require.NoError(t, err)
	assert.Equal(t, "owner@salon.cd", resp.User.Email)
	assert.Equal(t, string(entity.VendorStatusPendingApproval), resp.Vendor.Status)

	var user entity.User
	require.NoError(t, f.db.First(&user, "email = ?", "owner@salon.cd").Error)
	assert.Equal(t, entity.RoleIDVendor, user.RoleID)
	assert.True(t, user.IsActive)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("password123")))

	var vendor entity.Vendor
	require.NoError(t, f.db.First(&vendor, "user_id = ?", user.ID).Error)
	assert.Equal(t, "Grace Beauty", vendor.ShopName)
	assert.Equal(t, entity.VendorStatusPendingApproval, vendor.Status)
}

func TestSeedStaffUsersIdempotent(t *testing.T) {
	f := newAuthFixture(t)
	ctx := context.Background()

	seed := config.SeedConfig{Users: []config.SeedUser{
		{Email: "admin@example.com", Password: "admin-secret", FullName: "Admin", Role: "admin"},
		{Email: "manager@example.com", Password: "manager-secret", FullName: "Manager", Role: "manager"},
		{Email: "ghost@example.com", Password: "x", FullName: "Ghost", Role: "intern"},
	}}

	require.NoError(t, f.auth.SeedStaffUsers(ctx, seed))
	require.NoError(t, f.auth.SeedStaffUsers(ctx, seed))

	var count int64
	require.NoError(t, f.db.Model(&entity.User{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)

	var admin entity.User
	require.NoError(t, f.db.First(&admin, "email = ?", "admin@example.com").Error)
	assert.Equal(t, entity.RoleIDAdmin, admin.RoleID)
}
