package config

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	DatabaseURL string `env:"DATABASE_URL" envDefault:"storefront.db"`

	Khalti   Khalti   `envPrefix:"KHALTI_"`
	Catalog  Catalog  `envPrefix:"CATALOG_"`
	Identity Identity `envPrefix:"IDENTITY_"`
	Auth     Auth     `envPrefix:"AUTH_"`
}

type Khalti struct {
	CheckoutURL string `env:"CHECKOUT_URL" envDefault:"https://pay.khalti.com/"`
	PublicKey   string `env:"PUBLIC_KEY"`
	OrderName   string `env:"ORDER_NAME" envDefault:"E-Commerce Purchase"`
}

type Catalog struct {
	BaseURL string `env:"BASE_URL" envDefault:"https://fakestoreapi.com"`
}

type Identity struct {
	BaseURL string `env:"BASE_URL"`
	APIKey  string `env:"API_KEY"`
}

type Auth struct {
	JWTSecret   string `env:"JWT_SECRET"`
	TokenTTLMin int    `env:"TOKEN_TTL_MIN" envDefault:"1440"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}
