package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iho/ledgerpost/internal/definition"
)

var (
	baseURL string
	timeout time.Duration
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "ledgerpost-cli",
		Short: "LedgerPost CLI tool",
		Long:  `A command line interface for interacting with the LedgerPost API.`,
	}

	rootCmd.PersistentFlags().StringVar(&baseURL, "url", "http://localhost:8080", "Base URL of the LedgerPost API")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")

	rootCmd.AddCommand(postCmd())

	ledgerCmd := &cobra.Command{
		Use:   "ledger",
		Short: "Ledger read operations",
	}
	ledgerCmd.AddCommand(entriesCmd(), linesCmd(), positionCmd())
	rootCmd.AddCommand(ledgerCmd)

	chartCmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart of accounts operations",
	}
	chartCmd.AddCommand(chartValidateCmd())
	rootCmd.AddCommand(chartCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// tripleFlags holds the (tenant, entry code, document) triple every read
// command addresses.
type tripleFlags struct {
	tenantType   string
	tenantID     string
	code         string
	documentType string
	documentID   string
}

func (f *tripleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tenantType, "tenant-type", "", "Tenant type (required)")
	cmd.Flags().StringVar(&f.tenantID, "tenant-id", "", "Tenant ID (required)")
	cmd.Flags().StringVar(&f.code, "code", "", "Entry code (required)")
	cmd.Flags().StringVar(&f.documentType, "document-type", "", "Document type (required)")
	cmd.Flags().StringVar(&f.documentID, "document-id", "", "Document ID (required)")

	for _, name := range []string{"tenant-type", "tenant-id", "code", "document-type", "document-id"} {
		cobra.CheckErr(cmd.MarkFlagRequired(name))
	}
}

func (f *tripleFlags) query() url.Values {
	q := url.Values{}
	q.Set("tenant_type", f.tenantType)
	q.Set("tenant_id", f.tenantID)
	q.Set("code", f.code)
	q.Set("document_type", f.documentType)
	q.Set("document_id", f.documentID)
	return q
}

func postCmd() *cobra.Command {
	var (
		file           string
		idempotencyKey string
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Submit a posting",
		Long:  `Submit a posting request read from a JSON file, or from stdin when the file is "-".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			body, err := readInput(file)
			if err != nil {
				return err
			}

			req, err := http.NewRequest(http.MethodPost, baseURL+"/api/v1/postings", strings.NewReader(string(body)))
			if err != nil {
				return err
			}
			req.Header.Set("Content-Type", "application/json")
			if idempotencyKey != "" {
				req.Header.Set("Idempotency-Key", idempotencyKey)
			}

			return doRequest(req)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "-", "Posting request JSON file (- for stdin)")
	cmd.Flags().StringVar(&idempotencyKey, "idempotency-key", "", "Idempotency key for safe retries")
	return cmd
}

func entriesCmd() *cobra.Command {
	var triple tripleFlags

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List posted entries of a triple",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/ledger/entries", triple.query())
		},
	}

	triple.register(cmd)
	return cmd
}

func linesCmd() *cobra.Command {
	var (
		triple tripleFlags
		limit  int
		offset int
	)

	cmd := &cobra.Command{
		Use:   "lines",
		Short: "List posted lines of a triple",
		RunE: func(cmd *cobra.Command, args []string) error {
			q := triple.query()
			q.Set("limit", strconv.Itoa(limit))
			q.Set("offset", strconv.Itoa(offset))
			return getJSON("/api/v1/ledger/lines", q)
		},
	}

	triple.register(cmd)
	cmd.Flags().IntVar(&limit, "limit", 20, "Maximum number of lines")
	cmd.Flags().IntVar(&offset, "offset", 0, "Number of lines to skip")
	return cmd
}

func positionCmd() *cobra.Command {
	var triple tripleFlags

	cmd := &cobra.Command{
		Use:   "position",
		Short: "Show the net posted position of a triple",
		RunE: func(cmd *cobra.Command, args []string) error {
			return getJSON("/api/v1/ledger/position", triple.query())
		},
	}

	triple.register(cmd)
	return cmd
}

func chartValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <chart.yaml>",
		Short: "Validate a chart of accounts file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := definition.LoadFile(args[0])
			if err != nil {
				return fmt.Errorf("chart is invalid: %w", err)
			}

			fmt.Printf("chart is valid: %d tenant(s)\n", registry.Tenants())
			for _, tenantType := range registry.TenantTypes() {
				tenant, _ := registry.FindTenant(tenantType)
				fmt.Printf("  %s (%s): %d account(s), %d entry schema(s)\n",
					tenantType, tenant.Currency, tenant.Accounts(), tenant.Entries())
			}
			return nil
		},
	}

	return cmd
}

func readInput(file string) ([]byte, error) {
	if file == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(file)
}

func getJSON(path string, query url.Values) error {
	req, err := http.NewRequest(http.MethodGet, baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return err
	}
	return doRequest(req)
}

func doRequest(req *http.Request) error {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode >= 400 {
		return fmt.Errorf("request failed (status %d): %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var parsed any
	if err := json.Unmarshal(body, &parsed); err != nil {
		fmt.Println(string(body))
		return nil
	}

	printJSON(parsed)
	return nil
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Println(v)
		return
	}
	fmt.Println(string(out))
}
