package service

import (
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/danceinaction/booking-api/internal/pkg/jwthelper"
)

var ErrWrongPIN = errors.New("wrong admin pin")

// adminSessionTTL bounds how long an issued admin token stays valid.
const adminSessionTTL = 12 * time.Hour

// AdminService exchanges the organizer PIN for a short-lived session
// token. The PIN is never compared client-side; only its bcrypt hash
// lives in configuration and every admin mutation re-verifies the
// token server-side.
type AdminService struct {
	pinHash    string
	signingKey []byte
}

func NewAdminService(pinHash, signingKey string) *AdminService {
	return &AdminService{pinHash: pinHash, signingKey: []byte(signingKey)}
}

func (s *AdminService) Login(pin string) (string, error) {
	if err := bcrypt.CompareHashAndPassword([]byte(s.pinHash), []byte(pin)); err != nil {
		return "", ErrWrongPIN
	}

	token, err := jwthelper.GenerateToken(s.signingKey, "admin", "admin", adminSessionTTL)
	if err != nil {
		return "", fmt.Errorf("jwthelper.GenerateToken -> %w", err)
	}
	return token, nil
}
