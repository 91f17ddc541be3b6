package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/fatih/color"
)

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func (c *client) send(method, path string, body interface{}) (int, *envelope, error) {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return 0, nil, err
		}
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, c.baseURL+path, bodyReader)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, &env, nil
}

func step(c *client, title, method, path string, body interface{}, wantStatus int) *envelope {
	color.Yellow("\n%s", title)
	status, env, err := c.send(method, path, body)
	if err != nil {
		color.Red("Failed: %v", err)
		os.Exit(1)
	}
	if status != wantStatus {
		color.Red("Status %d, expected %d: %s", status, wantStatus, env.Message)
		os.Exit(1)
	}
	color.Green("Status: %d %s", status, env.Message)
	return env
}

// Walks a Free admin from login through the note limit and the Pro upgrade.
func main() {
	baseURL := flag.String("base", "http://localhost:3000/api", "API base URL")
	email := flag.String("email", "admin@acme.test", "demo account to use (must be a Free admin)")
	flag.Parse()

	c := &client{baseURL: *baseURL, http: &http.Client{Timeout: 10 * time.Second}}
	color.Cyan("Starting SaaS Notes smoke test against %s", *baseURL)

	env := step(c, "1. Login", http.MethodPost, "/auth/v1/login",
		map[string]string{"email": *email, "password": "password"}, http.StatusOK)
	var login struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &login); err != nil {
		color.Red("Failed to decode login: %v", err)
		os.Exit(1)
	}
	c.token = login.AccessToken

	step(c, "2. Usage", http.MethodGet, "/plan/v1/usage", nil, http.StatusOK)

	for i := 1; ; i++ {
		status, env, err := c.send(http.MethodPost, "/note/v1", map[string]string{
			"title":   fmt.Sprintf("Smoke note %d", i),
			"content": "created by the smoke test",
		})
		if err != nil {
			color.Red("Failed: %v", err)
			os.Exit(1)
		}
		if status == http.StatusTooManyRequests {
			color.Green("\n3. Limit reached after %d notes: %s", i-1, env.Message)
			break
		}
		if status != http.StatusCreated || i > 100 {
			color.Red("Unexpected status %d creating note %d", status, i)
			os.Exit(1)
		}
	}

	step(c, "4. Upgrade", http.MethodPost, "/auth/v1/upgrade", nil, http.StatusOK)
	step(c, "5. Create after upgrade", http.MethodPost, "/note/v1",
		map[string]string{"title": "Unlimited", "content": "Pro plan"}, http.StatusCreated)
	step(c, "6. Logout", http.MethodPost, "/auth/v1/logout", nil, http.StatusOK)

	color.Cyan("\nSmoke test passed")
}
