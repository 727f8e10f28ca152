package services

import (
	"crypto/subtle"
	"errors"
	"log"

	mem "lifesync/pkg/memcache"
	"lifesync/pkg/utils"
)

// GateService verifies the shared site password and issues unlock tokens.
type GateService interface {
	// Unlock checks candidate against the configured site password.
	// clientKey identifies the caller for throttling (remote IP).
	Unlock(candidate string, clientKey string) (string, error)
}

type gateService struct {
	sitePassword string
	attempts     mem.AttemptLimiter
}

func NewGateService(sitePassword string, attempts mem.AttemptLimiter) GateService {
	if sitePassword == "" {
		log.Println("Warning: SITE_PASSWORD is empty, the gate will reject all attempts")
	}
	return &gateService{
		sitePassword: sitePassword,
		attempts:     attempts,
	}
}

func (g *gateService) Unlock(candidate string, clientKey string) (string, error) {
	if !g.attempts.Allow(clientKey) {
		return "", utils.ErrTooManyAttempts
	}

	// An unset password keeps the gate closed rather than open.
	if g.sitePassword == "" {
		g.attempts.Fail(clientKey)
		return "", utils.ErrInvalidPassword
	}

	if subtle.ConstantTimeCompare([]byte(candidate), []byte(g.sitePassword)) != 1 {
		g.attempts.Fail(clientKey)
		return "", utils.ErrInvalidPassword
	}

	token, err := utils.CreateGateToken()
	if err != nil {
		// Signing failure is an internal fault, not a wrong password; the
		// two must surface differently to the caller.
		return "", errors.Join(utils.ErrDatabaseError, err)
	}

	g.attempts.Reset(clientKey)
	return token, nil
}
