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
)

var baseURL = "http://localhost:8080"

// Expects a running server with the demo user seeded (go run ./cmd/seed).
func main() {
	if v := os.Getenv("E2E_BASE_URL"); v != "" {
		baseURL = v
	}
	// Wait for server to start
	time.Sleep(2 * time.Second)

	userID := "demo-user"

	checkEndpoint("GET", "/health", nil, 200)
	checkEndpoint("GET", "/blog", nil, 200)
	checkEndpoint("GET", "/blog/1", nil, 200)

	// the market depends on a third party; 503 is an accepted answer
	checkEndpoint("GET", "/market?limit=5", nil, 200, 503)
	checkEndpoint("GET", "/search?q=bitcoin", nil, 200, 503)

	checkEndpoint("GET", "/portfolio/"+userID, nil, 200, 503)
	holdingID := createHolding(userID)
	fmt.Printf("Created holding ID: %s\n", holdingID)
	checkEndpoint("GET", "/portfolio/"+userID+"/export.csv", nil, 200, 503)
	checkEndpoint("DELETE", "/portfolio/"+userID+"/holdings/"+holdingID, nil, 200)

	checkEndpoint("GET", "/profile/"+userID, nil, 200)
	checkEndpoint("POST", "/profile/"+userID+"/notifications/newsletters/toggle", nil, 200)
	checkEndpoint("POST", "/profile/"+userID+"/notifications/newsletters/toggle", nil, 200)
	checkEndpoint("POST", "/profile/"+userID+"/notifications/fax/toggle", nil, 400)

	fmt.Println("ALL TESTS PASSED")
}

func checkEndpoint(method, path string, body interface{}, expected ...int) {
	fmt.Printf("Testing %s %s...\n", method, path)
	var bodyReader io.Reader
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		bodyReader = bytes.NewBuffer(jsonBody)
	}

	req, _ := http.NewRequest(method, baseURL+path, bodyReader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		log.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	for _, s := range expected {
		if resp.StatusCode == s {
			fmt.Printf("Response: %s\n", string(respBody))
			return
		}
	}
	log.Fatalf("Expected status %v, got %d. Body: %s", expected, resp.StatusCode, string(respBody))
}

func createHolding(userID string) string {
	fmt.Println("Creating holding...")
	reqBody := map[string]interface{}{
		"asset_id":       "dogecoin",
		"symbol":         "DOGE",
		"name":           "Dogecoin",
		"quantity":       "250",
		"purchase_price": "0.08",
		"purchase_date":  time.Now().UTC().Format(time.RFC3339),
	}
	jsonBody, _ := json.Marshal(reqBody)
	resp, err := http.Post(baseURL+"/portfolio/"+userID+"/holdings", "application/json", bytes.NewBuffer(jsonBody))
	if err != nil {
		log.Fatalf("Create holding failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != 201 {
		body, _ := io.ReadAll(resp.Body)
		log.Fatalf("Create holding failed with status %d: %s", resp.StatusCode, string(body))
	}

	var res map[string]string
	json.NewDecoder(resp.Body).Decode(&res)
	return res["id"]
}
