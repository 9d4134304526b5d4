package config

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"encomendas/internal/domain"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	Log     LogConfig
	CORS    CORSConfig
	Company CompanyConfig
	Order   OrderConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// CompanyConfig is the fixed legal identity and document constants printed
// on every order. It is injected into the document builder so tests can
// substitute fixtures.
type CompanyConfig struct {
	Name               string `mapstructure:"name"`
	NIF                string `mapstructure:"nif"`
	StorePrefix        string `mapstructure:"store_prefix"`
	VATRate            string `mapstructure:"vat_rate"`
	DefaultOrderNumber int    `mapstructure:"default_order_number"`
}

// Store is one selectable shop.
type Store struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// PaymentMethodOption pairs a payment tag with its display label.
type PaymentMethodOption struct {
	Tag   domain.PaymentMethod `json:"tag"`
	Label string               `json:"label"`
}

// OrderConfig enumerates the valid store codes and payment methods.
type OrderConfig struct {
	Stores         []Store
	PaymentMethods []PaymentMethodOption
}

// StoreCodes returns just the selectable store codes.
func (o *OrderConfig) StoreCodes() []string {
	codes := make([]string, 0, len(o.Stores))
	for _, s := range o.Stores {
		codes = append(codes, s.Code)
	}
	return codes
}

// MethodTags returns just the selectable payment tags.
func (o *OrderConfig) MethodTags() []domain.PaymentMethod {
	tags := make([]domain.PaymentMethod, 0, len(o.PaymentMethods))
	for _, m := range o.PaymentMethods {
		tags = append(tags, m.Tag)
	}
	return tags
}

// MethodLabels returns the tag→label table used on printed documents.
func (o *OrderConfig) MethodLabels() map[domain.PaymentMethod]string {
	labels := make(map[domain.PaymentMethod]string, len(o.PaymentMethods))
	for _, m := range o.PaymentMethods {
		labels[m.Tag] = m.Label
	}
	return labels
}

// Load reads configuration from environment variables with the ENCOMENDAS_
// prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("ENCOMENDAS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Company defaults
	v.SetDefault("company.name", "Octosólido2, LDA")
	v.SetDefault("company.nif", "513 579 559")
	v.SetDefault("company.store_prefix", "OCT")
	v.SetDefault("company.vat_rate", "23%")
	v.SetDefault("company.default_order_number", 6111)

	// Order defaults: "code:label" pairs, comma separated
	v.SetDefault("order.stores", "1:Clássica,3:Moderna,6:Iluminação")
	v.SetDefault("order.payment_methods", "mbway:MBWay,cash:Numerário,card:Multibanco,transfer:Transferência")

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":                  "ENCOMENDAS_SERVER_PORT",
		"server.read_timeout":          "ENCOMENDAS_SERVER_READ_TIMEOUT",
		"server.write_timeout":         "ENCOMENDAS_SERVER_WRITE_TIMEOUT",
		"server.environment":           "ENCOMENDAS_SERVER_ENVIRONMENT",
		"log.level":                    "ENCOMENDAS_LOG_LEVEL",
		"log.format":                   "ENCOMENDAS_LOG_FORMAT",
		"cors.allowed_origins":         "ENCOMENDAS_CORS_ALLOWED_ORIGINS",
		"company.name":                 "ENCOMENDAS_COMPANY_NAME",
		"company.nif":                  "ENCOMENDAS_COMPANY_NIF",
		"company.store_prefix":         "ENCOMENDAS_COMPANY_STORE_PREFIX",
		"company.vat_rate":             "ENCOMENDAS_COMPANY_VAT_RATE",
		"company.default_order_number": "ENCOMENDAS_COMPANY_DEFAULT_ORDER_NUMBER",
		"order.stores":                 "ENCOMENDAS_ORDER_STORES",
		"order.payment_methods":        "ENCOMENDAS_ORDER_PAYMENT_METHODS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if ENCOMENDAS_SERVER_PORT
	// is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("ENCOMENDAS_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}

	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{AllowedOrigins: corsOrigins}

	cfg.Company = CompanyConfig{
		Name:               v.GetString("company.name"),
		NIF:                v.GetString("company.nif"),
		StorePrefix:        v.GetString("company.store_prefix"),
		VATRate:            v.GetString("company.vat_rate"),
		DefaultOrderNumber: v.GetInt("company.default_order_number"),
	}

	for _, pair := range splitPairs(v.GetString("order.stores")) {
		cfg.Order.Stores = append(cfg.Order.Stores, Store{Code: pair[0], Name: pair[1]})
	}
	for _, pair := range splitPairs(v.GetString("order.payment_methods")) {
		cfg.Order.PaymentMethods = append(cfg.Order.PaymentMethods, PaymentMethodOption{
			Tag: domain.PaymentMethod(pair[0]), Label: pair[1],
		})
	}

	return cfg, nil
}

// splitPairs parses "a:A,b:B" into [[a A] [b B]]; entries without a colon
// use the value as its own label.
func splitPairs(s string) [][2]string {
	var out [][2]string
	for _, entry := range strings.Split(s, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, label, found := strings.Cut(entry, ":")
		if !found {
			label = code
		}
		out = append(out, [2]string{strings.TrimSpace(code), strings.TrimSpace(label)})
	}
	return out
}
