package config

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
)

var recaptchaVerifyURL = "https://www.google.com/recaptcha/api/siteverify"

type RecaptchaResponse struct {
	Success bool    `json:"success"`
	Score   float64 `json:"score"`
	Action  string  `json:"action"`
}

// VerifyRecaptcha checks a reCAPTCHA v3 token against Google.
func VerifyRecaptcha(ctx context.Context, secret, token string) (bool, float64, error) {
	data := url.Values{}
	data.Set("secret", secret)
	data.Set("response", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, recaptchaVerifyURL, strings.NewReader(data.Encode()))
	if err != nil {
		return false, 0, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return false, 0, err
	}
	defer resp.Body.Close()

	var result RecaptchaResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return false, 0, err
	}

	return result.Success, result.Score, nil
}
