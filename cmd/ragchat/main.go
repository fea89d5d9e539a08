package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
)

var errorColor = color.New(color.FgRed).SprintFunc()

type client struct {
	baseURL string
	token   string
	http    *http.Client
}

func main() {
	baseURL := envOrDefault("RAGSERVE_URL", "http://localhost:8080")
	username := envOrDefault("RAGSERVE_USER", "user")
	password := envOrDefault("RAGSERVE_PASSWORD", "userpassword")

	boldGreen := color.New(color.FgGreen, color.Bold).SprintFunc()
	boldCyan := color.New(color.FgCyan, color.Bold).SprintFunc()

	cl := &client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 5 * time.Minute},
	}

	if err := cl.login(username, password); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errorColor("login failed:"), err)
		os.Exit(1)
	}

	fmt.Println(boldGreen("Document Q&A"))
	fmt.Printf("Connected to %s as %s\n", boldCyan(cl.baseURL), boldCyan(username))
	fmt.Println("Commands: /upload <path> to ingest a file, 'exit' to quit.")
	fmt.Println("Anything else is asked against the uploaded document.")
	fmt.Println()

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			break
		}
		input := strings.TrimSpace(line)

		switch {
		case input == "":
			continue
		case input == "exit" || input == "quit":
			fmt.Println("Goodbye!")
			return
		case strings.HasPrefix(input, "/upload "):
			path := strings.TrimSpace(strings.TrimPrefix(input, "/upload "))
			if err := cl.upload(path); err != nil {
				fmt.Printf("%s %v\n", errorColor("upload failed:"), err)
			}
		default:
			answer, err := cl.generate(input)
			if err != nil {
				fmt.Printf("%s %v\n", errorColor("error:"), err)
				continue
			}
			fmt.Printf("%s %s\n\n", boldCyan("Answer:"), answer)
		}
	}
}

func envOrDefault(env, fallback string) string {
	if v := os.Getenv(env); v != "" {
		return v
	}
	return fallback
}

func (c *client) login(username, password string) error {
	form := url.Values{"username": {username}, "password": {password}}
	resp, err := c.http.PostForm(c.baseURL+"/token", form)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("status %s", resp.Status)
	}

	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	c.token = out.AccessToken
	return nil
}

func (c *client) upload(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	fw, err := mw.CreateFormFile("file", filepath.Base(path))
	if err != nil {
		return err
	}
	if _, err := fw.Write(data); err != nil {
		return err
	}
	if err := mw.Close(); err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/upload", &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%s", readDetail(resp.Body, resp.Status))
	}

	var out struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return err
	}
	fmt.Println(out.Message)
	return nil
}

func (c *client) generate(question string) (string, error) {
	payload, err := json.Marshal(map[string]any{"query": question})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+"/generate", bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%s", readDetail(resp.Body, resp.Status))
	}

	var out struct {
		Answer string `json:"answer"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Answer, nil
}

// readDetail pulls the service's {"detail": ...} message from an error
// response, falling back to the HTTP status line.
func readDetail(body io.Reader, status string) string {
	var out struct {
		Detail string `json:"detail"`
	}
	if err := json.NewDecoder(body).Decode(&out); err == nil && out.Detail != "" {
		return out.Detail
	}
	return status
}
