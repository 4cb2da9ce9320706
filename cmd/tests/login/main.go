package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Leugard/daytogether-auth/types"
	"github.com/joho/godotenv"
)

// Posts ID_TOKEN to a running server and prints the minted custom token.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	idToken := os.Getenv("ID_TOKEN")
	if idToken == "" {
		log.Fatal("ID_TOKEN is not set")
	}
	loginURL := os.Getenv("LOGIN_URL")
	if loginURL == "" {
		loginURL = "http://localhost:8080/google-login"
	}

	body, err := json.Marshal(types.TokenRequest{IDToken: idToken})
	if err != nil {
		log.Fatal(err)
	}

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Post(loginURL, "application/json", bytes.NewReader(body))
	if err != nil {
		log.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatalf("reading response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		log.Fatalf("login failed with %d: %s", resp.StatusCode, raw)
	}

	var out types.TokenResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		log.Fatalf("decoding response: %v", err)
	}

	fmt.Println("custom token:", out.CustomToken)
}
