package client

// http_client.go = talks to the MRP HTTP API on behalf of the CLI commands.

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"mrp/internal/microservices/http-api/dto"
)

// APIError is a non-success response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed: %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("request failed (%d): %s", e.StatusCode, e.Message)
}

// defines the HTTP client structure and methods
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// constructor for HTTP client
func NewHTTPClient(apiURL string) *HTTPClient {
	return &HTTPClient{
		baseURL: strings.TrimRight(apiURL, "/"),
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// set token for HTTP client
func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

// do sends the request and decodes a JSON body into out when the status is one of ok.
func (c *HTTPClient) do(method, path string, body, out any, ok ...int) (int, error) {
	var reader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return 0, err
		}
		reader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequest(method, c.baseURL+path, reader)
	if err != nil {
		return 0, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close() // Ensure the response body is closed

	for _, code := range ok {
		if resp.StatusCode != code {
			continue
		}
		if out != nil && resp.StatusCode != http.StatusNoContent {
			if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
				return resp.StatusCode, fmt.Errorf("decode response: %w", err)
			}
		}
		return resp.StatusCode, nil
	}

	var apiErr dto.ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&apiErr)
	return resp.StatusCode, &APIError{StatusCode: resp.StatusCode, Message: apiErr.Error}
}

// Auth
func (c *HTTPClient) Register(username, password string) (*dto.UserResponse, error) {
	var result dto.UserResponse
	_, err := c.do(http.MethodPost, "/api/users/register", dto.CredentialsRequest{Username: username, Password: password}, &result, http.StatusCreated)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) Login(username, password string) (string, error) {
	var result dto.TokenResponse
	_, err := c.do(http.MethodPost, "/api/users/login", dto.CredentialsRequest{Username: username, Password: password}, &result, http.StatusOK)
	if err != nil {
		return "", err
	}
	return result.Token, nil
}

func (c *HTTPClient) Me() (*dto.UserResponse, error) {
	var result dto.UserResponse
	if _, err := c.do(http.MethodGet, "/api/users/me", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// Media CRUD
func (c *HTTPClient) ListMedia() ([]dto.MediaResponse, error) {
	var result []dto.MediaResponse
	if _, err := c.do(http.MethodGet, "/api/media", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) GetMedia(id int64) (*dto.MediaResponse, error) {
	var result dto.MediaResponse
	if _, err := c.do(http.MethodGet, fmt.Sprintf("/api/media/%d", id), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) CreateMedia(request *dto.MediaRequest) (*dto.MediaResponse, error) {
	var result dto.MediaResponse
	if _, err := c.do(http.MethodPost, "/api/media", request, &result, http.StatusCreated); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *HTTPClient) UpdateMedia(id int64, request *dto.MediaRequest) error {
	_, err := c.do(http.MethodPut, fmt.Sprintf("/api/media/%d", id), request, nil, http.StatusOK)
	return err
}

func (c *HTTPClient) DeleteMedia(id int64) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/api/media/%d", id), nil, nil, http.StatusNoContent)
	return err
}

// Ratings
func (c *HTTPClient) Rate(mediaID int64, request *dto.RateRequest) (*dto.RatingResponse, bool, error) {
	var result dto.RatingResponse
	status, err := c.do(http.MethodPost, fmt.Sprintf("/api/media/%d/rate", mediaID), request, &result, http.StatusCreated, http.StatusOK)
	if err != nil {
		return nil, false, err
	}
	return &result, status == http.StatusCreated, nil
}

func (c *HTTPClient) ListRatings(mediaID int64) ([]dto.RatingResponse, error) {
	var result []dto.RatingResponse
	if _, err := c.do(http.MethodGet, fmt.Sprintf("/api/media/%d/ratings", mediaID), nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) MyRatings() ([]dto.RatingResponse, error) {
	var result []dto.RatingResponse
	if _, err := c.do(http.MethodGet, "/api/users/me/ratings", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}

func (c *HTTPClient) LikeRating(ratingID int64) (int, error) {
	var result dto.LikeResponse
	if _, err := c.do(http.MethodPost, fmt.Sprintf("/api/ratings/%d/like", ratingID), nil, &result, http.StatusOK); err != nil {
		return 0, err
	}
	return result.Likes, nil
}

func (c *HTTPClient) ConfirmRating(ratingID int64) error {
	_, err := c.do(http.MethodPost, fmt.Sprintf("/api/ratings/%d/confirm", ratingID), nil, nil, http.StatusOK)
	return err
}

func (c *HTTPClient) DeleteRating(ratingID int64) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/api/ratings/%d", ratingID), nil, nil, http.StatusNoContent)
	return err
}

// Favorites
func (c *HTTPClient) AddFavorite(mediaID int64) error {
	_, err := c.do(http.MethodPost, fmt.Sprintf("/api/media/%d/favorite", mediaID), nil, nil, http.StatusOK)
	return err
}

func (c *HTTPClient) RemoveFavorite(mediaID int64) error {
	_, err := c.do(http.MethodDelete, fmt.Sprintf("/api/media/%d/favorite", mediaID), nil, nil, http.StatusNoContent)
	return err
}

func (c *HTTPClient) ListFavorites() ([]dto.MediaResponse, error) {
	var result []dto.MediaResponse
	if _, err := c.do(http.MethodGet, "/api/users/me/favorites", nil, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return result, nil
}
