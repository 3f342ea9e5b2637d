package services

import (
	"cafeqr_server/lib"
	"cafeqr_server/structs"
	"crypto/subtle"
	"time"

	"github.com/MonkyMars/gecho"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthService guards the admin surface. There is a single admin credential
// from config; successful logins are issued expiring HS256 access tokens, so
// no session state survives in the process.
type AuthService struct {
	logger    *gecho.Logger
	cfg       *structs.Config
	adminHash string
}

func NewAuthService(cfg *structs.Config, logger *gecho.Logger) *AuthService {
	// AUTH_ADMIN_PASSWORD may already be an encoded argon2id hash; a plain
	// value is hashed once at startup so verification is uniform.
	adminHash := cfg.Auth.AdminPassword
	if !lib.IsEncodedHash(adminHash) {
		hashed, err := lib.HashPassword(adminHash, lib.DefaultArgon2Params)
		if err != nil {
			logger.Fatal("Failed to hash admin password", gecho.Field("error", err))
		}
		adminHash = hashed
	}

	return &AuthService{
		logger:    logger,
		cfg:       cfg,
		adminHash: adminHash,
	}
}

// Login verifies the admin credential. It always returns the same error for
// a wrong username or a wrong password.
func (as *AuthService) Login(req *structs.LoginRequest) error {
	usernameOk := subtle.ConstantTimeCompare([]byte(req.Username), []byte(as.cfg.Auth.AdminUsername)) == 1

	passwordOk, err := lib.VerifyPassword(req.Password, as.adminHash)
	if err != nil {
		as.logger.Error("Failed to verify password hash", gecho.Field("error", err))
		return err
	}

	if !usernameOk || !passwordOk {
		as.logger.Debug("Invalid login attempt", gecho.Field("username", req.Username))
		return lib.ErrInvalidCredentials
	}

	as.logger.Info("Admin logged in")
	return nil
}

// GenerateAccessToken issues a signed admin token with the configured expiry.
func (as *AuthService) GenerateAccessToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  as.cfg.Auth.AdminUsername,
		"role": "admin",
		"iat":  now.Unix(),
		"exp":  now.Add(as.cfg.Auth.AccessTokenExpiry).Unix(),
		"jti":  uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.cfg.Auth.AccessTokenSecret))
}

// ParseToken validates a presented token and returns its claims.
func (as *AuthService) ParseToken(tokenStr string) (*structs.AuthClaims, error) {
	return lib.ParseToken(tokenStr, as.cfg.Auth.AccessTokenSecret)
}

func (as *AuthService) GetAccessTokenSecret() string {
	return as.cfg.Auth.AccessTokenSecret
}
