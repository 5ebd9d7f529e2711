package definition

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// chartFile is the YAML layout of a chart-of-accounts file.
type chartFile struct {
	Tenants []chartTenant `yaml:"tenants"`
}

type chartTenant struct {
	Tenant   string           `yaml:"tenant"`
	Currency string           `yaml:"currency"`
	Accounts map[string][]any `yaml:"accounts"`
	Entries  []chartEntry     `yaml:"entries"`
}

type chartAccount struct {
	Name     string `yaml:"name"`
	Currency string `yaml:"currency"`
	Contra   bool   `yaml:"contra"`
}

type chartEntry struct {
	Code     string          `yaml:"code"`
	Document string          `yaml:"document"`
	Debits   []chartMovement `yaml:"debits"`
	Credits  []chartMovement `yaml:"credits"`
}

type chartMovement struct {
	Account     string `yaml:"account"`
	Accountable string `yaml:"accountable"`
}

// Load parses a YAML chart-of-accounts document and builds a Registry.
// Accounts are grouped by account type; each item is either a bare name
// or a mapping with name/currency/contra keys.
func Load(r io.Reader) (*Registry, error) {
	var chart chartFile
	if err := yaml.NewDecoder(r).Decode(&chart); err != nil {
		return nil, fmt.Errorf("parse chart: %w", err)
	}

	b := NewBuilder()
	for _, t := range chart.Tenants {
		b.Tenant(t.Tenant)
		b.Accounts(t.Currency)

		for accountType, items := range t.Accounts {
			for _, item := range items {
				account, err := decodeAccount(item)
				if err != nil {
					return nil, fmt.Errorf("tenant %s: %w", t.Tenant, err)
				}

				addAccount(b, AccountType(accountType), account)
			}
		}

		b.EndAccounts()

		for _, e := range t.Entries {
			b.Entry(e.Code, e.Document)
			for _, m := range e.Debits {
				b.Debit(m.Account, m.Accountable)
			}
			for _, m := range e.Credits {
				b.Credit(m.Account, m.Accountable)
			}
		}

		b.EndTenant()
	}

	return b.Build()
}

// LoadFile loads a chart-of-accounts file from disk.
func LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chart: %w", err)
	}
	defer f.Close()

	return Load(f)
}

func decodeAccount(item any) (chartAccount, error) {
	switch v := item.(type) {
	case string:
		return chartAccount{Name: v}, nil
	case map[string]any:
		var account chartAccount
		raw, err := yaml.Marshal(v)
		if err != nil {
			return chartAccount{}, fmt.Errorf("account declaration: %w", err)
		}
		if err := yaml.Unmarshal(raw, &account); err != nil {
			return chartAccount{}, fmt.Errorf("account declaration: %w", err)
		}

		return account, nil
	default:
		return chartAccount{}, fmt.Errorf("account declaration must be a name or a mapping, got %T", item)
	}
}

func addAccount(b *Builder, accountType AccountType, account chartAccount) {
	var opts []AccountOption
	if account.Contra {
		opts = append(opts, Contra())
	}
	if account.Currency != "" {
		opts = append(opts, InCurrency(account.Currency))
	}

	switch accountType {
	case Asset:
		b.Asset(account.Name, opts...)
	case Liability:
		b.Liability(account.Name, opts...)
	case Income:
		b.Income(account.Name, opts...)
	case Expense:
		b.Expense(account.Name, opts...)
	case Equity:
		b.Equity(account.Name, opts...)
	default:
		b.fail("unknown account type %q", accountType)
	}
}
