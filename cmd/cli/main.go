package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dexpay/treasuryd/internal/domain"
)

var (
	baseURL string
	timeout time.Duration
	token   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "treasury-cli",
		Short: "Treasury dashboard CLI tool",
		Long:  `A command line interface for interacting with the treasuryd API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the treasuryd API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "Session token from a previous login")

	loginCmd := &cobra.Command{
		Use:   "login <pin>",
		Short: "Verify a PIN and print a session token",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			login(args[0])
		},
	}

	accountsCmd := &cobra.Command{
		Use:   "accounts",
		Short: "Show the treasury registry with pool totals",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/accounts/")
		},
	}

	runwayCmd := &cobra.Command{
		Use:   "runway",
		Short: "Show the runway projection",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/reports/runway")
		},
	}

	var month, year string
	metricsCmd := &cobra.Command{
		Use:   "metrics",
		Short: "Show revenue, burn and runway for a period",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/reports/metrics?month=" + month + "&year=" + year)
		},
	}
	metricsCmd.Flags().StringVar(&month, "month", "", "Month name, e.g. Dec")
	metricsCmd.Flags().StringVar(&year, "year", "", "Four digit year")

	auditCmd := &cobra.Command{
		Use:   "audit",
		Short: "Show recent audit log entries",
		Run: func(cmd *cobra.Command, args []string) {
			get("/api/v1/audit")
		},
	}

	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Print the seeded treasury configuration",
		Run: func(cmd *cobra.Command, args []string) {
			printSeed()
		},
	}

	rootCmd.AddCommand(loginCmd, accountsCmd, runwayCmd, metricsCmd, auditCmd, seedCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func login(pin string) {
	client := &http.Client{Timeout: timeout}
	body, _ := json.Marshal(map[string]string{"pin": pin})

	resp, err := client.Post(baseURL+"/api/v1/auth/pin", "application/json", bytes.NewReader(body))
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Login FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(respBody))
		os.Exit(1)
	}

	var result map[string]any
	if err := json.Unmarshal(respBody, &result); err != nil {
		fmt.Printf("Failed to parse response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Logged in as %s\n", result["user"])
	fmt.Printf("Token: %s\n", result["token"])
}

func printSeed() {
	registry := domain.NewRegistry(domain.SeedWallets())

	for _, acct := range registry.Accounts() {
		fmt.Printf("%-30s %s\n", acct.ID(), acct.Label())
	}
	fmt.Printf("\nGlobal balance: %s\n", registry.GlobalBalance())
}

func get(path string) {
	client := &http.Client{Timeout: timeout}

	req, err := http.NewRequest(http.MethodGet, baseURL+path, nil)
	if err != nil {
		fmt.Printf("Error building request: %v\n", err)
		os.Exit(1)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := client.Do(req)
	if err != nil {
		fmt.Printf("Error making request: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		fmt.Printf("Request FAILED (Status: %d)\nResponse: %s\n", resp.StatusCode, string(body))
		os.Exit(1)
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, body, "", "  "); err != nil {
		fmt.Println(string(body))
		return
	}

	fmt.Println(pretty.String())
}
