package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

// Config is resolved once in main and passed down explicitly.
type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	// DatabaseURL selects the production postgres store. When empty the
	// store falls back to a local sqlite file at SQLitePath.
	DatabaseURL string
	SQLitePath  string

	// KafkaBrokers empty disables event publishing, ESURL empty disables
	// product search.
	KafkaBrokers []string
	ESURL        string
	ESUser       string
	ESPassword   string

	WebDir string

	Rates        Rates
	Destinations Destinations
}

// Rates holds the static exchange table: USD value of one unit of each
// crypto currency and the MXN value of one USD. Display-only, never
// verified against a live source.
type Rates struct {
	BTCUSD    decimal.Decimal
	LTCUSD    decimal.Decimal
	ETHUSD    decimal.Decimal
	USDTUSD   decimal.Decimal
	MXNPerUSD decimal.Decimal
}

// Destinations are the fixed payment targets per method.
type Destinations struct {
	BTC          string
	LTC          string
	ETH          string
	USDT         string
	BankTransfer string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		ServiceName: EnvDefault("SERVICE_NAME", "storefront"),
		ServerPort:  EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		SQLitePath:  EnvDefault("SQLITE_PATH", "storefront.db"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),

		WebDir: EnvDefault("WEB_DIR", "web"),

		Rates:        DefaultRates(),
		Destinations: DefaultDestinations(),
	}

	return cfg, nil
}

// DefaultRates is the manually maintained exchange table.
func DefaultRates() Rates {
	return Rates{
		BTCUSD:    decimal.RequireFromString("110222.77"),
		LTCUSD:    decimal.RequireFromString("97.33"),
		ETHUSD:    decimal.RequireFromString("3866.14"),
		USDTUSD:   decimal.RequireFromString("1.00"),
		MXNPerUSD: decimal.RequireFromString("18.56"),
	}
}

func DefaultDestinations() Destinations {
	return Destinations{
		BTC:          "bc1qq79v88rlwmmj2rg789yyx885y9qdudgzeeu7fj",
		LTC:          "LTi9b1qPEFeAxN8prrtQyQ6QprH9QmUCuA",
		ETH:          "0x37dc3bBce25A9328B560E75c4C5CB020d647b64A",
		USDT:         "0x37dc3bBce25A9328B560E75c4C5CB020d647b64A",
		BankTransfer: "CLABE: 058597000077868264 HEYBANCO ROMAN",
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
