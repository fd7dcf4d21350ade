package config

import (
	"flag"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	RunAddress  string
	DataFile    string
	AccessLog   string
	PublicDir   string
	DatabaseURI string
	CORSOrigins []string
}

// New reads flags, then lets environment variables (optionally loaded from
// .env) override them.
func New() *Config {
	return Parse(flag.CommandLine, os.Args[1:])
}

func Parse(fs *flag.FlagSet, args []string) *Config {
	_ = godotenv.Load()

	cfg := &Config{}
	var origins string

	fs.StringVar(&cfg.RunAddress, "a", "localhost:8888", "server address and port")
	fs.StringVar(&cfg.DataFile, "f", "data/pizzaorders.json", "orders JSON file")
	fs.StringVar(&cfg.AccessLog, "l", "logs/access.log", "access log file")
	fs.StringVar(&cfg.PublicDir, "p", "", "public directory (embedded assets when empty)")
	fs.StringVar(&cfg.DatabaseURI, "d", "", "database URI (file storage when empty)")
	fs.StringVar(&origins, "o", "*", "comma separated CORS origins")
	_ = fs.Parse(args)

	cfg.RunAddress = getEnv("RUN_ADDRESS", cfg.RunAddress)
	cfg.DataFile = getEnv("DATA_FILE", cfg.DataFile)
	cfg.AccessLog = getEnv("ACCESS_LOG", cfg.AccessLog)
	cfg.PublicDir = getEnv("PUBLIC_DIR", cfg.PublicDir)
	cfg.DatabaseURI = getEnv("DATABASE_URI", cfg.DatabaseURI)
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", origins))

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
