package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kayesami/roas-dashboard-api/internal/domain"
)

var ErrUnknownStore = errors.New("unknown store")

type Config struct {
	App          App                      `mapstructure:",squash"`
	Server       Server                   `mapstructure:",squash"`
	Shopify      Shopify                  `mapstructure:",squash"`
	Meta         Meta                     `mapstructure:",squash"`
	Upstream     Upstream                 `mapstructure:",squash"`
	Render       Render                   `mapstructure:",squash"`
	DailySummary DailySummary             `mapstructure:",squash"`
	StoreIDs     []string                 `mapstructure:"stores"`
	Stores       map[domain.StoreID]Store `mapstructure:"-"`
}

type App struct {
	LogLevel       string   `mapstructure:"log_level"`
	StaticDir      string   `mapstructure:"static_dir"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

// Shopify guarda os valores padrão usados quando a loja não define os seus
type Shopify struct {
	Version string `mapstructure:"shopify_version"`
}

type Meta struct {
	BaseURL string `mapstructure:"meta_base_url"`
	Version string `mapstructure:"meta_version"`
}

// Upstream limita a paginação e o tempo de cada busca nas APIs externas
type Upstream struct {
	Timeout  time.Duration `mapstructure:"upstream_timeout"`
	MaxPages int           `mapstructure:"pagination_max_pages"`
	PageSize int           `mapstructure:"shopify_page_size"`
}

type Render struct {
	APIKey    string `mapstructure:"render_api_key"`
	ServiceID string `mapstructure:"render_service_id"`
}

type DailySummary struct {
	CronSchedule string `mapstructure:"daily_summary_cron"`
	Enabled      bool   `mapstructure:"daily_summary_enabled"`
}

// Store é o pacote de credenciais e política de moeda de uma loja
type Store struct {
	ID           domain.StoreID
	Shopify      ShopifyStore
	Meta         MetaAccount
	CurrencyRate float64
	TaxRate      float64
}

type ShopifyStore struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	// BaseURL sobrescreve https://{StoreDomain}, usado em testes
	BaseURL string
}

func (s ShopifyStore) URL() string {
	if s.BaseURL != "" {
		return strings.TrimSuffix(s.BaseURL, "/")
	}

	return "https://" + s.StoreDomain
}

type MetaAccount struct {
	AccessToken string
	AccountID   string
	APIVersion  string
	BaseURL     string
}

func (m MetaAccount) URL() string {
	return fmt.Sprintf("%s/%s", strings.TrimSuffix(m.BaseURL, "/"), m.APIVersion)
}

// Store resolve o id da loja para o seu pacote de configuração
func (c *Config) Store(id domain.StoreID) (Store, error) {
	store, ok := c.Stores[id]
	if !ok {
		return Store{}, fmt.Errorf("%w: %q", ErrUnknownStore, id)
	}

	return store, nil
}

// StoreList retorna as lojas na ordem declarada em STORES
func (c *Config) StoreList() []domain.StoreID {
	ids := make([]domain.StoreID, 0, len(c.StoreIDs))
	for _, id := range c.StoreIDs {
		if _, ok := c.Stores[domain.StoreID(id)]; ok {
			ids = append(ids, domain.StoreID(id))
		}
	}

	return ids
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 3000)

	viper.SetDefault("LOG_LEVEL", "debug")
	viper.SetDefault("STATIC_DIR", "")
	viper.SetDefault("ALLOWED_ORIGINS", "*")

	viper.SetDefault("STORES", "kayesami,ostriB")

	viper.SetDefault("SHOPIFY_VERSION", "2024-04")
	viper.SetDefault("SHOPIFY_PAGE_SIZE", 250)

	viper.SetDefault("META_BASE_URL", "https://graph.facebook.com")
	viper.SetDefault("META_VERSION", "v19.0")

	viper.SetDefault("UPSTREAM_TIMEOUT", "60s")
	viper.SetDefault("PAGINATION_MAX_PAGES", 50)

	viper.SetDefault("RENDER_API_KEY", "")
	viper.SetDefault("RENDER_SERVICE_ID", "")

	// Domínios das lojas não são segredo, tokens e contas vêm do ambiente
	viper.SetDefault("KAYESAMI_SHOPIFY_STORE_DOMAIN", "z01h1u-b7.myshopify.com")
	viper.SetDefault("OSTRIB_SHOPIFY_STORE_DOMAIN", "p5askk-jg.myshopify.com")

	// Política de moeda: a conta de anúncios da ostriB reporta em USD, a loja vende em BDT
	viper.SetDefault("KAYESAMI_CURRENCY_RATE", 1)
	viper.SetDefault("KAYESAMI_TAX_RATE", 0.15)
	viper.SetDefault("OSTRIB_CURRENCY_RATE", 121)
	viper.SetDefault("OSTRIB_TAX_RATE", 0.15)

	viper.SetDefault("DAILY_SUMMARY_CRON", "0 7 * * *") // Todos os dias às 7h
	viper.SetDefault("DAILY_SUMMARY_ENABLED", false)
}

func NewConfig() (*Config, error) {
	loadEnvFile() // ONLY LOCAL

	SetDefaults()

	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis de ambiente (viper não conseguiu ler .env): ", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	return Load(viper.GetViper(), nil)
}

// Load monta a configuração a partir de uma instância do viper.
// Quando secrets não é nil, os tokens ausentes no ambiente são buscados nele.
func Load(v *viper.Viper, secrets SecretStorage) (*Config, error) {
	config := &Config{}

	err := v.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	secretsByName := map[string]string{}
	if secrets == nil && config.Render.ServiceID != "" {
		secrets = NewRenderClient(config)
	}
	if secrets != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		secretsByName, err = secrets.ListSecrets(ctx, config.Render.ServiceID)
		if err != nil {
			logrus.WithError(err).Error("Erro ao obter secrets do Render")
			return nil, err
		}
	}

	config.Stores = make(map[domain.StoreID]Store, len(config.StoreIDs))
	for _, raw := range config.StoreIDs {
		id := strings.TrimSpace(raw)
		if id == "" {
			continue
		}

		store := loadStore(v, config, domain.StoreID(id), secretsByName)
		config.Stores[store.ID] = store
	}

	if len(config.Stores) == 0 {
		return nil, errors.New("config: no stores configured")
	}

	return config, nil
}

// loadStore lê as chaves <LOJA>_* de uma loja, ex.: OSTRIB_SHOPIFY_TOKEN
func loadStore(v *viper.Viper, cfg *Config, id domain.StoreID, secrets map[string]string) Store {
	prefix := strings.ToLower(string(id)) + "_"

	get := func(key string) string {
		if value := v.GetString(prefix + key); value != "" {
			return value
		}
		return secrets[prefix+key]
	}

	store := Store{
		ID: id,
		Shopify: ShopifyStore{
			StoreDomain: get("shopify_store_domain"),
			AccessToken: get("shopify_token"),
			APIVersion:  get("shopify_version"),
			BaseURL:     get("shopify_base_url"),
		},
		Meta: MetaAccount{
			AccessToken: get("meta_token"),
			AccountID:   get("meta_account_id"),
			APIVersion:  get("meta_version"),
			BaseURL:     get("meta_base_url"),
		},
		CurrencyRate: v.GetFloat64(prefix + "currency_rate"),
		TaxRate:      v.GetFloat64(prefix + "tax_rate"),
	}

	if store.Shopify.APIVersion == "" {
		store.Shopify.APIVersion = cfg.Shopify.Version
	}
	if store.Meta.APIVersion == "" {
		store.Meta.APIVersion = cfg.Meta.Version
	}
	if store.Meta.BaseURL == "" {
		store.Meta.BaseURL = cfg.Meta.BaseURL
	}
	if !v.IsSet(prefix + "currency_rate") {
		store.CurrencyRate = 1
	}

	if store.Shopify.AccessToken == "" || store.Meta.AccessToken == "" || store.Meta.AccountID == "" {
		logrus.WithField("store", id).Warn("config: credenciais incompletas para a loja, as chamadas externas vão falhar")
	}

	return store
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		if err := godotenv.Load(location); err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
