package wordnik

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultBaseURL = "https://api.wordnik.com/v4"
	DefaultTimeout = 10 * time.Second
)

type Config struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// StatusError is returned when Wordnik answers with anything but 200.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("status code: %d, body: %s", e.StatusCode, e.Body)
}

// IsNotFound reports whether err is a 404 from Wordnik, which is how it answers
// when no word is scheduled for a date.
func IsNotFound(err error) bool {
	var statusErr *StatusError
	return errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound
}

type Client struct {
	httpClient *resty.Client
	apiKey     string
}

func NewClient(config Config) *Client {
	if config.BaseURL == "" {
		config.BaseURL = DefaultBaseURL
	}
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}

	client := resty.New()
	client.SetBaseURL(config.BaseURL)
	client.SetTimeout(config.Timeout)
	client.SetQueryParam("api_key", config.APIKey)
	client.SetHeader("Accept", "application/json")

	return &Client{
		httpClient: client,
		apiKey:     config.APIKey,
	}
}

func (client *Client) HasAPIKey() bool {
	return client.apiKey != ""
}

func (client *Client) WordOfTheDay(ctx context.Context, date string) (*WordOfTheDay, error) {
	var result WordOfTheDay
	if err := client.get(ctx, "/words.json/wordOfTheDay", nil, map[string]string{
		"date": date,
	}, &result); err != nil {
		return nil, fmt.Errorf("client.get(wordOfTheDay) > %w", err)
	}
	return &result, nil
}

func (client *Client) Definitions(ctx context.Context, word string) ([]Definition, error) {
	var result []Definition
	if err := client.get(ctx, "/word.json/{word}/definitions", map[string]string{
		"word": word,
	}, map[string]string{
		"limit":          "5",
		"includeRelated": "false",
		"useCanonical":   "false",
		"includeTags":    "false",
	}, &result); err != nil {
		return nil, fmt.Errorf("client.get(definitions) > %w", err)
	}
	return result, nil
}

func (client *Client) Pronunciations(ctx context.Context, word string) ([]Pronunciation, error) {
	var result []Pronunciation
	if err := client.get(ctx, "/word.json/{word}/pronunciations", map[string]string{
		"word": word,
	}, map[string]string{
		"useCanonical": "false",
		"limit":        "50",
	}, &result); err != nil {
		return nil, fmt.Errorf("client.get(pronunciations) > %w", err)
	}
	return result, nil
}

func (client *Client) TopExample(ctx context.Context, word string) (*Example, error) {
	var result Example
	if err := client.get(ctx, "/word.json/{word}/topExample", map[string]string{
		"word": word,
	}, map[string]string{
		"useCanonical": "false",
	}, &result); err != nil {
		return nil, fmt.Errorf("client.get(topExample) > %w", err)
	}
	return &result, nil
}

func (client *Client) RandomWord(ctx context.Context) (*RandomWord, error) {
	var result RandomWord
	if err := client.get(ctx, "/words.json/randomWord", nil, nil, &result); err != nil {
		return nil, fmt.Errorf("client.get(randomWord) > %w", err)
	}
	return &result, nil
}

func (client *Client) get(ctx context.Context, path string, pathParams, queryParams map[string]string, result any) error {
	res, err := client.httpClient.R().
		SetContext(ctx).
		SetPathParams(pathParams).
		SetQueryParams(queryParams).
		Get(path)
	if err != nil {
		return fmt.Errorf("client.R.Get > %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return &StatusError{
			StatusCode: res.StatusCode(),
			Body:       string(res.Body()),
		}
	}
	if err := json.Unmarshal(res.Body(), result); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	return nil
}
