package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBSource  string
	Port      string
	JWTSecret string
	JWTTTL    time.Duration

	// พิกัด demo ใช้เป็น fallback เวลา client ไม่ส่งตำแหน่งมา
	DemoLat float64
	DemoLng float64
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using environment / defaults")
	}

	return &Config{
		DBSource:  getEnv("DB_SOURCE", "cafe.db"),
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(24) * time.Hour,
		DemoLat:   getEnvFloat("DEMO_LAT", 21.0278), // ฮานอย
		DemoLng:   getEnvFloat("DEMO_LNG", 105.8342),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}
