package config

import (
	"os"
	"strconv"
	"strings"
)

// Settings holds the connector configuration resolved from the
// environment. CompanyName is validated at use time, not load time,
// so a missing value surfaces as a configuration failure on the
// operation that needed it.
type Settings struct {
	DynamicsBaseURL            string
	TokenURL                   string
	ClientID                   string
	ClientSecret               string
	TenantDomain               string
	CompanyName                string
	CurrencyCodeGroupName      string
	PaymentJournalDisplayName  string
	SyncAllVendors             bool
	SyncAllCodes               bool
	NumberOfDaysToSyncPayments int
	RetryCount                 int
}

func LoadSettings() Settings {
	return Settings{
		DynamicsBaseURL:            strings.TrimSpace(os.Getenv("DYNAMICS_BASE_URL")),
		TokenURL:                   strings.TrimSpace(os.Getenv("DYNAMICS_TOKEN_URL")),
		ClientID:                   strings.TrimSpace(os.Getenv("DYNAMICS_CLIENT_ID")),
		ClientSecret:               strings.TrimSpace(os.Getenv("DYNAMICS_CLIENT_SECRET")),
		TenantDomain:               strings.TrimSpace(os.Getenv("DYNAMICS_TENANT_DOMAIN")),
		CompanyName:                strings.TrimSpace(os.Getenv("DYNAMICS_COMPANY_NAME")),
		CurrencyCodeGroupName:      envStringDefault("CURRENCY_CODE_GROUP_NAME", "USD"),
		PaymentJournalDisplayName:  envStringDefault("PAYMENT_JOURNAL_DISPLAY_NAME", "AVIDX"),
		SyncAllVendors:             envBoolDefault("SYNC_ALL_VENDORS", false),
		SyncAllCodes:               envBoolDefault("SYNC_ALL_CODES", false),
		NumberOfDaysToSyncPayments: envIntDefault("PAYMENT_HISTORY_SYNC_DAYS", 7),
		RetryCount:                 envIntDefault("DYNAMICS_RETRY_COUNT", 3),
	}
}

func envStringDefault(key string, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envIntDefault(key string, def int) int {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func envBoolDefault(key string, def bool) bool {
	val := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	switch val {
	case "true", "1", "yes", "y", "on":
		return true
	case "false", "0", "no", "n", "off":
		return false
	default:
		return def
	}
}
