// Package recaptcha defines the spam-verification capability used by the
// contact workflow. The domain service only depends on the Verify
// contract: a token goes out, a confidence score in [0,1] comes back.
package recaptcha

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

const siteVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

// Verifier checks a reCAPTCHA token and returns its score.
type Verifier interface {
	Verify(ctx context.Context, token string) (float64, error)
}

// GoogleVerifier validates tokens against Google's siteverify endpoint.
type GoogleVerifier struct {
	secret string
	url    string
}

// NewGoogleVerifier creates a GoogleVerifier with the given secret key.
func NewGoogleVerifier(secret string) *GoogleVerifier {
	return &GoogleVerifier{secret: secret, url: siteVerifyURL}
}

type siteVerifyResponse struct {
	Success    bool     `json:"success"`
	Score      float64  `json:"score"`
	Action     string   `json:"action"`
	Hostname   string   `json:"hostname"`
	ErrorCodes []string `json:"error-codes"`
}

// Verify posts the token to siteverify and returns the reported score.
// A response with success=false counts as score zero rather than an
// error, so low-trust tokens flow through the normal spam gate.
func (v *GoogleVerifier) Verify(ctx context.Context, token string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	agent := fiber.AcquireAgent()
	defer fiber.ReleaseAgent(agent)

	req := agent.Request()
	req.Header.SetMethod(fiber.MethodPost)
	req.SetRequestURI(v.url)

	args := fiber.AcquireArgs()
	defer fiber.ReleaseArgs(args)
	args.Set("secret", v.secret)
	args.Set("response", token)
	agent.Form(args)

	if err := agent.Parse(); err != nil {
		return 0, fmt.Errorf("failed to build siteverify request: %w", err)
	}

	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return 0, fmt.Errorf("siteverify request failed: %w", errs[0])
	}
	if code != fiber.StatusOK {
		return 0, fmt.Errorf("siteverify returned status %d", code)
	}

	var result siteVerifyResponse
	if err := json.Unmarshal(body, &result); err != nil {
		return 0, fmt.Errorf("failed to decode siteverify response: %w", err)
	}
	if !result.Success {
		return 0, nil
	}
	return result.Score, nil
}

// StaticVerifier returns a fixed score. Default in development, where no
// reCAPTCHA secret is configured.
type StaticVerifier struct {
	Score float64
}

// Verify returns the configured score for any token.
func (v StaticVerifier) Verify(_ context.Context, _ string) (float64, error) {
	return v.Score, nil
}
